package xmp

import (
	"strings"
)

// Well-known namespace URIs.
const (
	NS_RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NS_RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NS_XSD  = "http://www.w3.org/2001/XMLSchema#"
	NS_XML  = "http://www.w3.org/XML/1998/namespace"
	NS_EXIF = "http://ns.adobe.com/exif/1.0/"
	NS_TIFF = "http://ns.adobe.com/tiff/1.0/"
)

// Graph is a read-only view of the (predicate, value) pairs describing the root subject of a single
// metadata document, along with the namespace table used to resolve "prefix:attribute" field names.
type Graph struct {
	namespaces map[string]string
	values     map[string]string
}

// NewGraph returns a new Graph for 'namespaces' (prefix to URI) and 'values' (full predicate URI to
// value). Both maps are copied.
func NewGraph(namespaces map[string]string, values map[string]string) *Graph {

	ns := map[string]string{
		"rdf":  NS_RDF,
		"rdfs": NS_RDFS,
		"xsd":  NS_XSD,
		"xml":  NS_XML,
	}

	for prefix, uri := range namespaces {
		ns[prefix] = uri
	}

	v := make(map[string]string, len(values))

	for k, str := range values {
		v[k] = str
	}

	g := &Graph{
		namespaces: ns,
		values:     v,
	}

	return g
}

// Predicate resolves a "prefix:attribute" field name to a full predicate URI.
func (g *Graph) Predicate(field string) (string, error) {

	prefix, attr, ok := strings.Cut(field, ":")

	if !ok {
		return "", &LookupError{Field: field}
	}

	ns, ok := g.namespaces[prefix]

	if !ok {
		return "", &LookupError{Field: field}
	}

	return ns + attr, nil
}

// Lookup returns the value for 'field' and a boolean flag signaling whether it is present.
func (g *Graph) Lookup(field string) (string, bool, error) {

	p, err := g.Predicate(field)

	if err != nil {
		return "", false, err
	}

	v, ok := g.values[p]
	return v, ok, nil
}

// Get returns the value for 'field', or a *LookupError if it is absent.
func (g *Graph) Get(field string) (string, error) {

	v, ok, err := g.Lookup(field)

	if err != nil {
		return "", err
	}

	if !ok {
		return "", &LookupError{Field: field}
	}

	return v, nil
}

// GetDefault returns the value for 'field', or 'dflt' if it is absent.
func (g *Graph) GetDefault(field string, dflt string) (string, error) {

	v, ok, err := g.Lookup(field)

	if err != nil {
		return "", err
	}

	if !ok {
		return dflt, nil
	}

	return v, nil
}

// GetDegMin returns the signed decimal degrees for the degree-minute value stored in 'field'. The boolean
// return value is false if the field is absent.
func (g *Graph) GetDegMin(field string, h Hemispheres) (float64, bool, error) {

	v, ok, err := g.Lookup(field)

	if err != nil {
		return 0, false, err
	}

	if !ok {
		return 0, false, nil
	}

	deg, err := ParseDegMin(v, h)

	if err != nil {
		return 0, false, err
	}

	return deg, true, nil
}

// Len returns the number of values in the graph.
func (g *Graph) Len() int {
	return len(g.values)
}

// merge returns a new Graph containing the values of 'g' and any values of 'other' not already in 'g'.
func (g *Graph) merge(other *Graph) *Graph {

	m := NewGraph(other.namespaces, other.values)

	for prefix, uri := range g.namespaces {
		m.namespaces[prefix] = uri
	}

	for k, v := range g.values {
		m.values[k] = v
	}

	return m
}
