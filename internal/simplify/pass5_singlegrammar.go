package simplify

import (
	"fmt"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/ast"
)

// singleGrammar implements §4.1 pass 5: ensure the root holds exactly one
// grammar, renaming conflicting define names, rewriting ref/parentRef to
// follow those renames, then hoisting every nested define up into the
// top grammar and collapsing nested grammar occurrences to their start
// payload.
func singleGrammar(root *ast.Root) (*ast.Root, error) {
	root = ensureSingleGrammar(root)
	top := root.Pattern

	substitutions := renameConflicts(top)
	if err := resolveRefs(top, nil, substitutions); err != nil {
		return nil, err
	}

	hoisted := hoistDefines(top)
	top.Content = append(top.Content[:1:1], hoisted...)

	return replaceNestedGrammars(root, top), nil
}

func ensureSingleGrammar(root *ast.Root) *ast.Root {
	if root.Pattern != nil && root.Pattern.Kind == ast.GrammarPattern {
		return root
	}
	wrapped := &ast.Pattern{
		Kind: ast.GrammarPattern,
		Content: []*ast.GrammarContent{
			{Kind: ast.StartContent, Patterns: []*ast.Pattern{root.Pattern}},
		},
	}
	return &ast.Root{Pattern: wrapped}
}

// renameConflicts assigns a fresh name to every define whose name is
// already claimed by an earlier-visited grammar (the outermost grammar
// is visited first and so never loses its own names), returning the
// per-grammar old->new substitution table.
func renameConflicts(top *ast.Pattern) map[*ast.Pattern]map[string]string {
	used := map[string]bool{}
	substitutions := map[*ast.Pattern]map[string]string{}

	walkGrammars(top, func(g *ast.Pattern) {
		for _, gc := range g.Content {
			if gc.Kind != ast.DefineContent {
				continue
			}
			if !used[gc.Name] {
				used[gc.Name] = true
				continue
			}
			newName := freshName(gc.Name, used)
			used[newName] = true
			if substitutions[g] == nil {
				substitutions[g] = map[string]string{}
			}
			substitutions[g][gc.Name] = newName
			gc.Name = newName
		}
	})
	return substitutions
}

// freshName implements the fresh-name rule (§4.1 helpers): try
// name__1, name__2, … until one is unused across all grammars.
func freshName(base string, used map[string]bool) string {
	for k := 1; ; k++ {
		candidate := fmt.Sprintf("%s__%d", base, k)
		if !used[candidate] {
			return candidate
		}
	}
}

// resolveRefs rewrites ref/parentRef names per the substitutions
// recorded for their resolution scope, and turns every parentRef into a
// ref. It carries the ancestor stack of enclosing grammars rather than
// storing parent pointers on nodes (§9).
func resolveRefs(p *ast.Pattern, stack []*ast.Pattern, subs map[*ast.Pattern]map[string]string) error {
	if p == nil {
		return nil
	}
	switch p.Kind {
	case ast.Ref:
		grammar := stack[len(stack)-1]
		applySubstitution(p, grammar, subs)
	case ast.ParentRef:
		if len(stack) < 2 {
			return rngerrors.ParentRefNoGrammar()
		}
		grammar := stack[len(stack)-2]
		applySubstitution(p, grammar, subs)
		p.Kind = ast.Ref
	case ast.GrammarPattern:
		stack = append(stack, p)
	}
	for _, c := range p.Children {
		if err := resolveRefs(c, stack, subs); err != nil {
			return err
		}
	}
	for _, gc := range p.Content {
		for _, sub := range gc.Patterns {
			if err := resolveRefs(sub, stack, subs); err != nil {
				return err
			}
		}
	}
	return nil
}

func applySubstitution(ref *ast.Pattern, grammar *ast.Pattern, subs map[*ast.Pattern]map[string]string) {
	if m, ok := subs[grammar]; ok {
		if newName, ok := m[ref.Name]; ok {
			ref.Name = newName
		}
	}
}

// hoistDefines collects every define reachable from top, in top's own
// declaration order followed by each nested grammar's defines in
// traversal order.
func hoistDefines(top *ast.Pattern) []*ast.GrammarContent {
	hoisted := append([]*ast.GrammarContent(nil), top.Content[1:]...)
	walkGrammars(top, func(g *ast.Pattern) {
		if g == top {
			return
		}
		for _, gc := range g.Content {
			if gc.Kind == ast.DefineContent {
				hoisted = append(hoisted, gc)
			}
		}
	})
	return hoisted
}

// replaceNestedGrammars collapses every grammar pattern node other than
// top to its start's payload pattern.
func replaceNestedGrammars(root *ast.Root, top *ast.Pattern) *ast.Root {
	return transformRoot(root, func(p *ast.Pattern) *ast.Pattern {
		if p.Kind == ast.GrammarPattern && p != top {
			return p.Content[0].Patterns[0]
		}
		return p
	})
}
