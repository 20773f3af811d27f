// Package folia builds FoLiA XML documents from analyzed annotation graphs.
//
// The builder produces an ordered in-memory tree of Elements. Rendering the
// tree to bytes is done by the render package.
package folia

import (
	"encoding/xml"
)

// AttrID is the qualified name of the FoLiA identifier attribute.
const AttrID = "xml:id"

// Element is a node of the output tree. Attributes keep their insertion order
// so that rendering is byte-stable.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// NewElement returns an empty element.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// NewTextElement returns an element with character content.
func NewTextElement(name, text string) *Element {
	return &Element{Name: name, Text: text}
}

// SetAttr sets the attribute name. An existing attribute keeps its position.
func (el *Element) SetAttr(name, value string) *Element {
	for i := range el.Attrs {
		if el.Attrs[i].Name.Local == name {
			el.Attrs[i].Value = value
			return el
		}
	}

	el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return el
}

// Attr returns the value of the attribute name.
func (el *Element) Attr(name string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the xml:id of the element, or the empty string.
func (el *Element) ID() string {
	id, _ := el.Attr(AttrID)
	return id
}

// Append adds child as the last child of el and returns child.
func (el *Element) Append(child *Element) *Element {
	el.Children = append(el.Children, child)
	return child
}

// Walk visits el and its descendants depth-first, in document order. It
// stops descending into an element when fn returns false.
func (el *Element) Walk(fn func(*Element) bool) {
	if !fn(el) {
		return
	}
	for _, c := range el.Children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (or el itself) with the given name.
func (el *Element) Find(name string) *Element {
	var found *Element
	el.Walk(func(e *Element) bool {
		if found != nil {
			return false
		}
		if e.Name == name {
			found = e
			return false
		}
		return true
	})
	return found
}

// FindAll returns all descendants (and el itself) with the given name.
func (el *Element) FindAll(name string) []*Element {
	var found []*Element
	el.Walk(func(e *Element) bool {
		if e.Name == name {
			found = append(found, e)
		}
		return true
	})
	return found
}

// ChildrenNamed returns the direct children with the given name.
func (el *Element) ChildrenNamed(name string) []*Element {
	var found []*Element
	for _, c := range el.Children {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found
}

// MarshalXML writes the element with its qualified names verbatim (xml:id,
// xmlns:xlink), the same way the names were set.
func (el *Element) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: el.Name}
	start.Attr = el.Attrs

	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if el.Text != "" {
		if err := e.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}

	for _, c := range el.Children {
		if err := e.Encode(c); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// Document is a built FoLiA document.
type Document struct {
	Root *Element
}

// ByID returns the element with the given xml:id, or nil.
func (d *Document) ByID(id string) *Element {
	var found *Element
	d.Root.Walk(func(e *Element) bool {
		if found != nil {
			return false
		}
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// IDs returns all xml:id values of the document in document order.
func (d *Document) IDs() []string {
	var ids []string
	d.Root.Walk(func(e *Element) bool {
		if id := e.ID(); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}
