package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// avoidEmpty implements §4.1 pass 8: a post-order walk removing empty
// from group/interleave entirely, collapsing oneOrMore(empty), and
// normalizing choice so empty, when present, is always the first child.
func avoidEmpty(root *ast.Root) *ast.Root {
	return transformRoot(root, func(p *ast.Pattern) *ast.Pattern {
		switch p.Kind {
		case ast.Group, ast.Interleave:
			if len(p.Children) == 2 {
				if p.Children[0].Kind == ast.Empty {
					return p.Children[1]
				}
				if p.Children[1].Kind == ast.Empty {
					return p.Children[0]
				}
			}
		case ast.Choice:
			if len(p.Children) == 2 && p.Children[1].Kind == ast.Empty && p.Children[0].Kind != ast.Empty {
				p.Children[0], p.Children[1] = p.Children[1], p.Children[0]
			}
		case ast.OneOrMore:
			if len(p.Children) == 1 && p.Children[0].Kind == ast.Empty {
				return ast.NewPattern(ast.Empty)
			}
		}
		return p
	})
}
