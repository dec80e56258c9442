package validator

import "github.com/go-relaxng/relaxng/internal/ast"

// context is the matcher's state (§4.3 Core matching contract):
// remaining children and remaining attributes at the current position.
// node is the owning element (or the document root), used to anchor
// diagnostics that aren't about a specific child.
type context struct {
	node     *XMLNode
	children []*XMLNode
	attrs    map[string]string
}

// advance drops the head child, used once it has been consumed.
func (c context) advance() context {
	return context{node: c.node, children: c.children[1:], attrs: c.attrs}
}

// withoutAttr returns a copy of c.attrs with name removed. Copy-on-write
// keeps a failed branch's context untouched for backtracking.
func (c context) withoutAttr(name string) map[string]string {
	out := make(map[string]string, len(c.attrs))
	for k, v := range c.attrs {
		if k != name {
			out[k] = v
		}
	}
	return out
}

// advanced reports whether next made strictly more progress than c,
// consuming a child or an attribute. zeroOrMore/oneOrMore use this to
// stop iterating once a sub-step stops advancing, avoiding infinite
// recursion on non-advancing matches (e.g. zeroOrMore(optional(x))).
func advanced(c, next context) bool {
	return len(next.children) < len(c.children) || len(next.attrs) < len(c.attrs)
}

// prepend builds a pattern list with p ahead of rest.
func prepend(p *ast.Pattern, rest []*ast.Pattern) []*ast.Pattern {
	out := make([]*ast.Pattern, 0, len(rest)+1)
	out = append(out, p)
	return append(out, rest...)
}

// chain builds a pattern list with ps spliced ahead of rest, used by
// group and ref to splice a pattern list in place of the head pattern.
func chain(ps, rest []*ast.Pattern) []*ast.Pattern {
	out := make([]*ast.Pattern, 0, len(ps)+len(rest))
	out = append(out, ps...)
	return append(out, rest...)
}

// describe names what was found at a context's head child, for the
// exact-string diagnostic templates (§6).
func describe(n *XMLNode) string {
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case NodeElement:
		return n.Name
	case NodeText:
		return "text"
	default:
		return "non-element content"
	}
}

// describeNameClass renders a name class for diagnostics in place of a
// literal name, when matching against a simplified element/attribute.
func describeNameClass(nc *ast.NameClass) string {
	if nc == nil {
		return "?"
	}
	switch nc.Kind {
	case ast.NCName:
		return nc.Name
	case ast.NCAnyName:
		return "*"
	case ast.NCChoice:
		return describeNameClass(nc.Left) + "|" + describeNameClass(nc.Right)
	case ast.NCExcept:
		return "!" + describeNameClass(nc.Wrapped)
	default:
		return "?"
	}
}

// lookupByNameClass finds the one attribute (if any) whose name the
// class admits. Attribute name classes are expected to be unambiguous;
// the first match in map iteration order is used.
func lookupByNameClass(attrs map[string]string, nc *ast.NameClass) (name, value string, ok bool) {
	for k, v := range attrs {
		if nc.Matches(k) {
			return k, v, true
		}
	}
	return "", "", false
}
