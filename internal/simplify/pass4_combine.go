package simplify

import (
	"github.com/go-relaxng/relaxng/internal/ast"
	rngerrors "github.com/go-relaxng/relaxng/errors"
)

// eliminateCombine implements §4.1 pass 4: inside each grammar, fold
// same-named start/define groups into one via choice/interleave per
// their combine attribute.
func eliminateCombine(root *ast.Root) (*ast.Root, error) {
	var firstErr error
	walkGrammars(root.Pattern, func(g *ast.Pattern) {
		if firstErr != nil {
			return
		}
		folded, err := foldGrammarContent(g.Content)
		if err != nil {
			firstErr = err
			return
		}
		g.Content = folded
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return root, nil
}

func foldGrammarContent(content []*ast.GrammarContent) ([]*ast.GrammarContent, error) {
	var starts []*ast.GrammarContent
	var defineOrder []string
	defines := map[string][]*ast.GrammarContent{}

	for _, gc := range content {
		switch gc.Kind {
		case ast.StartContent:
			starts = append(starts, gc)
		case ast.DefineContent:
			if _, seen := defines[gc.Name]; !seen {
				defineOrder = append(defineOrder, gc.Name)
			}
			defines[gc.Name] = append(defines[gc.Name], gc)
		}
	}

	if len(starts) == 0 {
		return nil, rngerrors.NoStart()
	}
	foldedStart, err := foldGroup(starts, func() error { return rngerrors.MultipleStartsNoCombine() },
		func() error { return rngerrors.MultipleStartsDifferentCombine() })
	if err != nil {
		return nil, err
	}

	out := []*ast.GrammarContent{foldedStart}
	for _, name := range defineOrder {
		group := defines[name]
		folded, err := foldGroup(group,
			func() error { return rngerrors.MultipleDefinesNoCombine(name) },
			func() error { return rngerrors.MultipleDefinesDifferentCombine(name) })
		if err != nil {
			return nil, err
		}
		out = append(out, folded)
	}
	return out, nil
}

// foldGroup folds a same-name/kind group of start or define declarations
// into one, per §4.1 pass 4's combine-fold rule.
func foldGroup(group []*ast.GrammarContent, noCombine, conflict func() error) (*ast.GrammarContent, error) {
	if len(group) == 1 {
		return group[0], nil
	}

	combineValue := ast.CombineAbsent
	for _, gc := range group {
		if gc.Combine == ast.CombineAbsent {
			continue
		}
		if combineValue == ast.CombineAbsent {
			combineValue = gc.Combine
		} else if combineValue != gc.Combine {
			return nil, conflict()
		}
	}
	if combineValue == ast.CombineAbsent {
		return nil, noCombine()
	}

	kind := ast.Choice
	if combineValue == ast.CombineInterleave {
		kind = ast.Interleave
	}

	acc := group[0].Patterns[0]
	for _, gc := range group[1:] {
		acc = &ast.Pattern{Kind: kind, Children: []*ast.Pattern{acc, gc.Patterns[0]}}
	}

	return &ast.GrammarContent{
		Kind:     group[0].Kind,
		Name:     group[0].Name,
		Combine:  combineValue,
		Patterns: []*ast.Pattern{acc},
	}, nil
}
