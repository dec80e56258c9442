package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// arityNormalize implements §4.1 pass 2: normalize the arities the wire
// syntax allows down to what later passes assume.
func arityNormalize(root *ast.Root) *ast.Root {
	out := transformRoot(root, normalizeArityNode)
	fixDefineArity(out)
	return out
}

func normalizeArityNode(p *ast.Pattern) *ast.Pattern {
	switch p.Kind {
	case ast.OneOrMore, ast.ZeroOrMore, ast.Optional, ast.Mixed:
		if len(p.Children) > 1 {
			p.Children = []*ast.Pattern{group(p.Children...)}
		}
	case ast.Element:
		if len(p.Children) > 1 {
			p.Children = []*ast.Pattern{group(p.Children...)}
		}
	case ast.Attribute:
		switch {
		case len(p.Children) == 0:
			p.Children = []*ast.Pattern{textPattern()}
		case len(p.Children) > 1:
			p.Children = []*ast.Pattern{group(p.Children...)}
		}
	case ast.Choice, ast.Group, ast.Interleave:
		switch {
		case len(p.Children) == 1:
			return p.Children[0]
		case len(p.Children) > 2:
			folded := foldPattern(p.Kind, p.Children)
			p.Children = folded.Children
		}
	}
	return p
}

// foldPattern left-folds items pairwise under the same constructor:
// a,b,c,d -> kind(kind(kind(a,b),c),d). Used both for Pattern-arity
// folding (>2 choice/group/interleave children) and for collapsing a
// define/start that holds more than one pattern into a single group.
func foldPattern(kind ast.PatternKind, items []*ast.Pattern) *ast.Pattern {
	if len(items) == 0 {
		return &ast.Pattern{Kind: kind}
	}
	acc := items[0]
	for _, c := range items[1:] {
		acc = &ast.Pattern{Kind: kind, Children: []*ast.Pattern{acc, c}}
	}
	return acc
}

// fixDefineArity wraps a define (or start) holding more than one pattern
// into a single group, mirroring the Pattern-level rule for the
// grammar-content level. The spec names only "define" here; start
// declarations are defensively normalized the same way since a
// conformant adapter always hands start exactly one pattern.
func fixDefineArity(root *ast.Root) {
	walkGrammars(root.Pattern, func(g *ast.Pattern) {
		for _, gc := range g.Content {
			if len(gc.Patterns) > 1 {
				gc.Patterns = []*ast.Pattern{foldPattern(ast.Group, gc.Patterns)}
			}
		}
	})
}

// walkGrammars visits every grammar pattern reachable in the tree,
// including nested ones (pre-flattening, pass 5 has not run yet).
func walkGrammars(p *ast.Pattern, visit func(*ast.Pattern)) {
	if p == nil {
		return
	}
	if p.Kind == ast.GrammarPattern {
		visit(p)
	}
	for _, c := range p.Children {
		walkGrammars(c, visit)
	}
	for _, gc := range p.Content {
		for _, sub := range gc.Patterns {
			walkGrammars(sub, visit)
		}
	}
}

func group(children ...*ast.Pattern) *ast.Pattern {
	return foldPattern(ast.Group, children)
}

func textPattern() *ast.Pattern {
	return ast.NewPattern(ast.Text)
}
