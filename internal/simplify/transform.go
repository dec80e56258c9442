package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// transformRoot applies fn to every pattern in root, children before
// parents (post-order), and replaces each node with fn's result. Passes
// that only need a local, context-free rewrite (1, 2, 3, 7, 8) use this.
func transformRoot(root *ast.Root, fn func(*ast.Pattern) *ast.Pattern) *ast.Root {
	return &ast.Root{Pattern: transformPattern(root.Pattern, fn)}
}

func transformPattern(p *ast.Pattern, fn func(*ast.Pattern) *ast.Pattern) *ast.Pattern {
	if p == nil {
		return nil
	}
	for i, c := range p.Children {
		p.Children[i] = transformPattern(c, fn)
	}
	for _, gc := range p.Content {
		for i, sub := range gc.Patterns {
			gc.Patterns[i] = transformPattern(sub, fn)
		}
	}
	return fn(p)
}

// walkRoot visits every pattern in root, parent before children
// (pre-order), for passes that only inspect rather than rewrite.
func walkRoot(root *ast.Root, visit func(*ast.Pattern)) {
	walkPattern(root.Pattern, visit)
}

func walkPattern(p *ast.Pattern, visit func(*ast.Pattern)) {
	if p == nil {
		return
	}
	visit(p)
	for _, c := range p.Children {
		walkPattern(c, visit)
	}
	for _, gc := range p.Content {
		for _, sub := range gc.Patterns {
			walkPattern(sub, visit)
		}
	}
}
