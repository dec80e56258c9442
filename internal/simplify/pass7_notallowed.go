package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// limitNotAllowed implements §4.1 pass 7: a post-order walk that
// propagates notAllowed up through the constructs that can never match
// once one branch is unmatchable, then reruns reachability since some
// refs may now be unreachable dead ends.
func limitNotAllowed(root *ast.Root) *ast.Root {
	out := transformRoot(root, func(p *ast.Pattern) *ast.Pattern {
		switch p.Kind {
		case ast.Attribute:
			if len(p.Children) == 1 && p.Children[0].Kind == ast.NotAllowed {
				return ast.NewPattern(ast.NotAllowed)
			}
		case ast.Group, ast.Interleave, ast.OneOrMore:
			if anyNotAllowed(p.Children) {
				return ast.NewPattern(ast.NotAllowed)
			}
		case ast.Choice:
			if len(p.Children) == 2 {
				if p.Children[0].Kind == ast.NotAllowed {
					return p.Children[1]
				}
				if p.Children[1].Kind == ast.NotAllowed {
					return p.Children[0]
				}
			}
		}
		return p
	})
	reachability(out.Pattern)
	return out
}

func anyNotAllowed(children []*ast.Pattern) bool {
	for _, c := range children {
		if c.Kind == ast.NotAllowed {
			return true
		}
	}
	return false
}
