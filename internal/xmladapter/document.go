package xmladapter

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/validator"
)

// ParseDocument reads an XML instance document into the validator's
// node representation (§4.4). Whitespace-only text between element
// children is dropped, matching Relax NG's default whitespace handling;
// text that carries anything else is kept verbatim.
func ParseDocument(r io.Reader) (*validator.XMLNode, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	root := firstElement(doc)
	if root == nil {
		return nil, rngerrors.UnsupportedConstruct("empty document")
	}
	return convertNode(root), nil
}

func convertNode(n *xmlquery.Node) *validator.XMLNode {
	switch n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode:
		return &validator.XMLNode{Kind: validator.NodeText, Value: n.Data}
	case xmlquery.ElementNode:
		out := &validator.XMLNode{
			Kind:  validator.NodeElement,
			Name:  n.Data,
			Attrs: convertAttrs(n),
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isInsignificantText(c) {
				continue
			}
			out.Children = append(out.Children, convertNode(c))
		}
		return out
	default:
		return &validator.XMLNode{Kind: validator.NodeOther}
	}
}

func isInsignificantText(n *xmlquery.Node) bool {
	if n.Type != xmlquery.TextNode && n.Type != xmlquery.CharDataNode {
		return false
	}
	return strings.TrimSpace(n.Data) == ""
}

func convertAttrs(n *xmlquery.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		out[a.Name.Local] = a.Value
	}
	return out
}
