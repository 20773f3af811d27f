package folia

import "errors"

// ErrMalformedGraph is returned when a structurally required part of the
// annotation graph is missing. No partial document is returned with it.
var ErrMalformedGraph = errors.New("malformed annotation graph")
