// Package xmladapter turns RNG wire XML and XML instance documents into
// the internal/ast and internal/validator representations (§4.4). It is
// built on github.com/antchfx/xmlquery rather than encoding/xml's
// streaming decoder: the adapter needs to look ahead at siblings
// (whitespace-only text, a:documentation elements, a leading processing
// instruction) before committing to a node's shape, which a DOM-style
// tree supports directly and a token stream does not.
package xmladapter

import "github.com/antchfx/xmlquery"

// elementChildren returns n's element children, in document order,
// skipping whitespace-only text, comments, and a:documentation.
func elementChildren(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if isDocumentation(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// isDocumentation reports whether n is an a:documentation annotation
// element (§4.4: stripped before building the AST).
func isDocumentation(n *xmlquery.Node) bool {
	return n.Data == "documentation" && n.Prefix == "a"
}

// attr returns the value of the unprefixed attribute named name, and
// whether it was present.
func attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// firstElement finds the first element child of n, skipping the
// declaration/comment/processing-instruction siblings a document's
// preamble may carry (§4.4: "skip a leading processing instruction").
func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}
