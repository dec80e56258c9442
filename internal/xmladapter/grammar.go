package xmladapter

import (
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/ast"
	"github.com/go-relaxng/relaxng/internal/builder"
)

// unsupportedConstructs names the wire elements §1 Non-goals puts out of
// scope; the adapter rejects them by name rather than silently ignoring
// or mis-parsing them.
var unsupportedConstructs = map[string]bool{
	"list":        true,
	"externalRef": true,
	"include":     true,
	"div":         true,
	"param":       true,
	"nsName":      true,
}

// ParseGrammar reads an RNG document and builds its AST (§4.4). The
// top-level pattern need not be a <grammar>; any pattern element is
// accepted, matching §4.1 pass 5's handling of a non-grammar top node.
func ParseGrammar(r io.Reader) (*ast.Root, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	tops := elementChildren(doc)
	if len(tops) == 0 {
		return nil, rngerrors.UnsupportedConstruct("empty document")
	}
	if len(tops) > 1 {
		return nil, rngerrors.NotOneTopLevelElement()
	}
	p, err := parsePattern(tops[0])
	if err != nil {
		return nil, err
	}
	return builder.Root(p), nil
}

func parsePattern(n *xmlquery.Node) (*ast.Pattern, error) {
	if unsupportedConstructs[n.Data] {
		return nil, rngerrors.UnsupportedConstruct(n.Data)
	}
	switch n.Data {
	case "empty":
		return builder.Empty(), nil
	case "text":
		return builder.TextPattern(), nil
	case "notAllowed":
		return builder.NotAllowedPattern(), nil
	case "value":
		return builder.ValuePattern(strings.TrimSpace(n.InnerText())), nil
	case "data":
		dt, _ := attr(n, "type")
		return builder.DataPattern(dt), nil
	case "ref":
		name, _ := attr(n, "name")
		return builder.RefPattern(name), nil
	case "parentRef":
		name, _ := attr(n, "name")
		return builder.ParentRefPattern(name), nil
	case "element":
		return parseNamedOrClassed(n, builder.ElementNamed, builder.ElementPattern)
	case "attribute":
		return parseAttribute(n)
	case "group":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.Group(children...), nil
	case "interleave":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.Interleave(children...), nil
	case "choice":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.ChoicePattern(children...), nil
	case "optional":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.OptionalPattern(children...), nil
	case "zeroOrMore":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.ZeroOrMorePattern(children...), nil
	case "oneOrMore":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.OneOrMorePattern(children...), nil
	case "mixed":
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return builder.MixedPattern(children...), nil
	case "grammar":
		return parseGrammarElement(n)
	default:
		return nil, rngerrors.UnsupportedConstruct(n.Data)
	}
}

func parsePatternList(n *xmlquery.Node) ([]*ast.Pattern, error) {
	kids := elementChildren(n)
	out := make([]*ast.Pattern, 0, len(kids))
	for _, k := range kids {
		p, err := parsePattern(k)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// parseNamedOrClassed handles element: a literal "name" attribute takes
// the named constructor, a nested name-class element (name/anyName/
// choice) takes the name-class constructor; nsName is rejected.
func parseNamedOrClassed(n *xmlquery.Node, named func(string, ...*ast.Pattern) *ast.Pattern, classed func(*ast.NameClass, ...*ast.Pattern) *ast.Pattern) (*ast.Pattern, error) {
	if name, ok := attr(n, "name"); ok {
		children, err := parsePatternList(n)
		if err != nil {
			return nil, err
		}
		return named(name, children...), nil
	}
	kids := elementChildren(n)
	if len(kids) == 0 {
		return nil, rngerrors.MalformedAttribute("element/attribute with no name and no content")
	}
	nc, err := parseNameClass(kids[0])
	if err != nil {
		return nil, err
	}
	rest := make([]*ast.Pattern, 0, len(kids)-1)
	for _, k := range kids[1:] {
		p, err := parsePattern(k)
		if err != nil {
			return nil, err
		}
		rest = append(rest, p)
	}
	return classed(nc, rest...), nil
}

func parseAttribute(n *xmlquery.Node) (*ast.Pattern, error) {
	if name, ok := attr(n, "name"); ok {
		kids := elementChildren(n)
		var child *ast.Pattern
		if len(kids) > 0 {
			p, err := parsePattern(kids[0])
			if err != nil {
				return nil, err
			}
			child = p
		}
		return builder.AttributeNamed(name, child), nil
	}
	kids := elementChildren(n)
	if len(kids) == 0 {
		return nil, rngerrors.MalformedAttribute("attribute with no name and no content")
	}
	nc, err := parseNameClass(kids[0])
	if err != nil {
		return nil, err
	}
	var child *ast.Pattern
	if len(kids) > 1 {
		p, err := parsePattern(kids[1])
		if err != nil {
			return nil, err
		}
		child = p
	}
	return builder.AttributePattern(nc, child), nil
}

func parseGrammarElement(n *xmlquery.Node) (*ast.Pattern, error) {
	var content []*ast.GrammarContent
	for _, k := range elementChildren(n) {
		switch k.Data {
		case "start":
			kids := elementChildren(k)
			if len(kids) != 1 {
				return nil, rngerrors.MalformedAttribute("start must wrap exactly one pattern")
			}
			p, err := parsePattern(kids[0])
			if err != nil {
				return nil, err
			}
			content = append(content, builder.StartCombine(parseCombine(k), p))
		case "define":
			name, _ := attr(k, "name")
			children, err := parsePatternList(k)
			if err != nil {
				return nil, err
			}
			content = append(content, builder.DefineCombine(name, parseCombine(k), children...))
		case "div":
			return nil, rngerrors.UnsupportedConstruct("div")
		case "include":
			return nil, rngerrors.UnsupportedConstruct("include")
		default:
			return nil, rngerrors.UnsupportedConstruct(k.Data)
		}
	}
	return builder.GrammarPattern(content...), nil
}

func parseCombine(n *xmlquery.Node) ast.Combine {
	v, ok := attr(n, "combine")
	if !ok {
		return ast.CombineAbsent
	}
	switch v {
	case "interleave":
		return ast.CombineInterleave
	default:
		return ast.CombineChoice
	}
}
