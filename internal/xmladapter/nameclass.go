package xmladapter

import (
	"strings"

	"github.com/antchfx/xmlquery"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/ast"
)

func parseNameClass(n *xmlquery.Node) (*ast.NameClass, error) {
	switch n.Data {
	case "name":
		return ast.Name(strings.TrimSpace(n.InnerText())), nil
	case "anyName":
		return parseAnyName(n)
	case "nsName":
		return nil, rngerrors.UnsupportedConstruct("nsName")
	case "choice":
		return parseNameClassChoice(n)
	default:
		return nil, rngerrors.UnsupportedConstruct(n.Data)
	}
}

func parseAnyName(n *xmlquery.Node) (*ast.NameClass, error) {
	kids := elementChildren(n)
	if len(kids) == 0 {
		return ast.AnyName(nil), nil
	}
	except, err := parseExcept(kids[0])
	if err != nil {
		return nil, err
	}
	return ast.AnyName(except), nil
}

// parseExcept reads an <except> wrapping one or more name classes,
// folding them into a single excluded class via nameChoice.
func parseExcept(n *xmlquery.Node) (*ast.NameClass, error) {
	if n.Data != "except" {
		return nil, rngerrors.MalformedAttribute("anyName content must be except")
	}
	kids := elementChildren(n)
	if len(kids) == 0 {
		return nil, rngerrors.MalformedAttribute("except with no name class")
	}
	acc, err := parseNameClass(kids[0])
	if err != nil {
		return nil, err
	}
	for _, k := range kids[1:] {
		nc, err := parseNameClass(k)
		if err != nil {
			return nil, err
		}
		acc = ast.NameChoice(acc, nc)
	}
	return acc, nil
}

func parseNameClassChoice(n *xmlquery.Node) (*ast.NameClass, error) {
	kids := elementChildren(n)
	if len(kids) == 0 {
		return nil, rngerrors.MalformedAttribute("nameClass choice with no alternatives")
	}
	acc, err := parseNameClass(kids[0])
	if err != nil {
		return nil, err
	}
	for _, k := range kids[1:] {
		nc, err := parseNameClass(k)
		if err != nil {
			return nil, err
		}
		acc = ast.NameChoice(acc, nc)
	}
	return acc, nil
}
