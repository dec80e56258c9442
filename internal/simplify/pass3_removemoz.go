package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// removeMixedOptionalZeroOrMore implements §4.1 pass 3: post-arity, each
// of mixed/optional/zeroOrMore has exactly one child C; rewrite to the
// constructs built from the remaining vocabulary.
func removeMixedOptionalZeroOrMore(root *ast.Root) *ast.Root {
	return transformRoot(root, func(p *ast.Pattern) *ast.Pattern {
		switch p.Kind {
		case ast.Mixed:
			c := p.Children[0]
			return &ast.Pattern{Kind: ast.Interleave, Children: []*ast.Pattern{c, textPattern()}}
		case ast.Optional:
			c := p.Children[0]
			return &ast.Pattern{Kind: ast.Choice, Children: []*ast.Pattern{c, ast.NewPattern(ast.Empty)}}
		case ast.ZeroOrMore:
			c := p.Children[0]
			oneOrMore := &ast.Pattern{Kind: ast.OneOrMore, Children: []*ast.Pattern{c}}
			return &ast.Pattern{Kind: ast.Choice, Children: []*ast.Pattern{oneOrMore, ast.NewPattern(ast.Empty)}}
		}
		return p
	})
}
