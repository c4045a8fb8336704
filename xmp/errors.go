package xmp

import (
	"errors"
	"fmt"
)

// ErrNoRDF is returned when a document does not contain an <rdf:RDF> block.
var ErrNoRDF = errors.New("No rdf:RDF block found")

// LookupError is returned when a required field is not present in a Graph
// or its prefix can not be resolved.
type LookupError struct {
	Field string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("Missing field %s", e.Field)
}

// ParseError is returned when a value is present but can not be parsed.
type ParseError struct {
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {

	if e.Err != nil {
		return fmt.Sprintf("Failed to parse '%s', %s, %v", e.Value, e.Reason, e.Err)
	}

	return fmt.Sprintf("Failed to parse '%s', %s", e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
