package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// liftName implements §4.1 pass 1: replace each elementNamed(N, P*) with
// element(name(N), P*), and each attributeNamed(N, children) with
// attribute(name(N), children).
func liftName(root *ast.Root) *ast.Root {
	return transformRoot(root, func(p *ast.Pattern) *ast.Pattern {
		switch p.Kind {
		case ast.ElementNamed:
			p.Kind = ast.Element
			p.NameClass = ast.Name(p.Name)
			p.Name = ""
		case ast.AttributeNamed:
			p.Kind = ast.Attribute
			p.NameClass = ast.Name(p.Name)
			p.Name = ""
		}
		return p
	})
}
