package xmp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var re_rdf = regexp.MustCompile(`(?s)<rdf:RDF.*</rdf:RDF>`)

// ExtractRDF returns the <rdf:RDF>...</rdf:RDF> block in 'body' discarding any surrounding text (an
// x:xmpmeta wrapper, an image header, tool output). It returns ErrNoRDF if there is no such block.
func ExtractRDF(body []byte) ([]byte, error) {

	m := re_rdf.Find(body)

	if m == nil {
		return nil, ErrNoRDF
	}

	return m, nil
}

// ParseXMP returns a new Graph for the XMP document (or any document containing an XMP packet) in 'body'.
func ParseXMP(body []byte) (*Graph, error) {

	rdf, err := ExtractRDF(body)

	if err != nil {
		return nil, err
	}

	return parseRDF(rdf)
}

// ReadGraph returns a new Graph for the contents of 'r'. If 'filename' is an image the embedded XMP packet
// and the EXIF block are both read, with XMP values taking precedence. Anything else is parsed as XMP.
func ReadGraph(r io.Reader, filename string) (*Graph, error) {

	body, err := io.ReadAll(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".tif", ".tiff", ".png":
		return readImageGraph(body, filename)
	default:

		g, err := ParseXMP(body)

		if err != nil {
			return nil, fmt.Errorf("Failed to parse XMP for %s, %w", filename, err)
		}

		return g, nil
	}
}

func readImageGraph(body []byte, filename string) (*Graph, error) {

	var xmp_graph *Graph
	var exif_graph *Graph

	g, err := ParseXMP(body)

	switch {
	case err == nil:
		xmp_graph = g
	case errors.Is(err, ErrNoRDF):
		// pass
	default:
		return nil, fmt.Errorf("Failed to parse embedded XMP for %s, %w", filename, err)
	}

	x, err := DecodeExif(bytes.NewReader(body))

	if err == nil {

		g, err := NewGraphFromExif(x)

		if err != nil {
			return nil, fmt.Errorf("Failed to derive graph from EXIF for %s, %w", filename, err)
		}

		exif_graph = g
	}

	switch {
	case xmp_graph != nil && exif_graph != nil:
		return xmp_graph.merge(exif_graph), nil
	case xmp_graph != nil:
		return xmp_graph, nil
	case exif_graph != nil:
		return exif_graph, nil
	default:
		return nil, fmt.Errorf("No XMP or EXIF metadata found in %s, %w", filename, ErrNoRDF)
	}
}

func parseRDF(body []byte) (*Graph, error) {

	namespaces := make(map[string]string)
	values := make(map[string]string)

	dec := xml.NewDecoder(bytes.NewReader(body))

	depth := 0
	desc_depth := -1

	var prop *xml.Name
	var text strings.Builder
	nested := false

	for {

		tok, err := dec.Token()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &ParseError{Value: "rdf:RDF", Reason: "invalid RDF/XML", Err: err}
		}

		switch el := tok.(type) {

		case xml.StartElement:

			depth += 1

			for _, a := range el.Attr {
				if a.Name.Space == "xmlns" {
					namespaces[a.Name.Local] = a.Value
				}
			}

			switch {
			case desc_depth == -1:

				if el.Name.Space != NS_RDF || el.Name.Local != "Description" {
					continue
				}

				if !isRootSubject(el) {
					continue
				}

				desc_depth = depth

				for _, a := range el.Attr {

					if !isPropertyAttr(a.Name) {
						continue
					}

					k := a.Name.Space + a.Name.Local

					if _, exists := values[k]; !exists {
						values[k] = a.Value
					}
				}

			case depth == desc_depth+1:

				name := el.Name
				prop = &name
				nested = false
				text.Reset()

				for _, a := range el.Attr {

					if a.Name.Space == NS_RDF && a.Name.Local == "resource" {

						k := name.Space + name.Local

						if _, exists := values[k]; !exists {
							values[k] = a.Value
						}

						nested = true
					}
				}

			default:
				nested = true
			}

		case xml.CharData:

			if prop != nil && depth == desc_depth+1 {
				text.Write(el)
			}

		case xml.EndElement:

			if desc_depth != -1 && depth == desc_depth+1 && prop != nil {

				if !nested {

					k := prop.Space + prop.Local

					if _, exists := values[k]; !exists {
						values[k] = strings.TrimSpace(text.String())
					}
				}

				prop = nil
			}

			if depth == desc_depth {
				desc_depth = -1
			}

			depth -= 1
		}
	}

	return NewGraph(namespaces, values), nil
}

// isRootSubject reports whether an rdf:Description element describes the document itself.
func isRootSubject(el xml.StartElement) bool {

	for _, a := range el.Attr {

		if a.Name.Local != "about" {
			continue
		}

		if a.Name.Space == NS_RDF || a.Name.Space == "" {
			return a.Value == ""
		}
	}

	return true
}

func isPropertyAttr(n xml.Name) bool {

	switch n.Space {
	case "", "xmlns", NS_RDF, NS_XML:
		return false
	default:
		return true
	}
}
