package folia

// DefaultLayers are the annotation layers declared as automatically produced,
// in output order.
var DefaultLayers = []string{
	"token",
	"phonological",
	"morphological",
	"pos",
	"lemma",
	"entity",
}

const (
	DefaultAnnotator     = "CoreNLP"
	DefaultAnnotatorType = "auto"
	DefaultLanguage      = "en"
)

// Metadata describes the static metadata block of every document.
type Metadata struct {
	Annotator     string
	AnnotatorType string
	Language      string

	// Layer names, rendered as <name-annotation .../>
	Layers []string
}

// DefaultMetadata returns the metadata of the CoreNLP pipeline.
func DefaultMetadata() Metadata {
	layers := make([]string, len(DefaultLayers))
	copy(layers, DefaultLayers)

	return Metadata{
		Annotator:     DefaultAnnotator,
		AnnotatorType: DefaultAnnotatorType,
		Language:      DefaultLanguage,
		Layers:        layers,
	}
}

// withDefaults fills the unset fields of m from DefaultMetadata.
func (m Metadata) withDefaults() Metadata {
	def := DefaultMetadata()
	if m.Annotator == "" {
		m.Annotator = def.Annotator
	}
	if m.AnnotatorType == "" {
		m.AnnotatorType = def.AnnotatorType
	}
	if m.Language == "" {
		m.Language = def.Language
	}
	if m.Layers == nil {
		m.Layers = def.Layers
	}
	return m
}

// Element returns the <metadata> element for m.
func (m Metadata) Element() *Element {
	metadata := NewElement("metadata")
	annotations := metadata.Append(NewElement("annotations"))

	for _, layer := range m.Layers {
		decl := NewElement(layer + "-annotation")
		decl.SetAttr("annotator", m.Annotator)
		decl.SetAttr("annotatortype", m.AnnotatorType)
		annotations.Append(decl)
	}

	metadata.Append(NewTextElement("meta", m.Language)).SetAttr("id", "language")
	return metadata
}
