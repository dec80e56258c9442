package simplify

import (
	"fmt"

	"github.com/go-relaxng/relaxng/internal/ast"
)

// canonicalDefineElement implements §4.1 pass 6: reachability pruning,
// lifting every non-define-rooted element out to its own define, inlining
// refs to non-element defines, then dropping what's left over.
func canonicalDefineElement(root *ast.Root) *ast.Root {
	top := root.Pattern
	reachability(top)
	liftElements(top)
	inlineAndPrune(top)
	return root
}

// reachability walks ref targets transitively from start and reorders
// top's content so reached defines appear, in visit order, immediately
// after start; unreached defines are dropped.
func reachability(top *ast.Pattern) {
	start := top.Content[0]
	byName := map[string]*ast.GrammarContent{}
	for _, gc := range top.Content[1:] {
		byName[gc.Name] = gc
	}

	visited := map[string]bool{}
	var order []string
	var visit func(p *ast.Pattern)
	visit = func(p *ast.Pattern) {
		if p == nil {
			return
		}
		if p.Kind == ast.Ref {
			if visited[p.Name] {
				return
			}
			visited[p.Name] = true
			order = append(order, p.Name)
			if def, ok := byName[p.Name]; ok {
				for _, sub := range def.Patterns {
					visit(sub)
				}
			}
			return
		}
		for _, c := range p.Children {
			visit(c)
		}
	}
	for _, sub := range start.Patterns {
		visit(sub)
	}

	newContent := make([]*ast.GrammarContent, 1, len(order)+1)
	newContent[0] = start
	for _, name := range order {
		if def, ok := byName[name]; ok {
			newContent = append(newContent, def)
		}
	}
	top.Content = newContent
}

// liftElements replaces every element pattern whose parent is not a
// define with ref("elem__N") and appends a fresh define wrapping it. New
// defines are appended to top.Content and so are visited later in the
// same driving loop, letting nested elements lift in turn.
//
// A define already rooted directly at an element doesn't need rewrapping
// in a second define, but it is still renamed onto the same elem__N
// sequence so every reachable element ends up behind a canonical name,
// not just newly lifted ones; every ref pointing at its old name is
// rewritten to match once the whole pass is done. A define this pass
// lifted already carries its elem__N name and keeps it.
func liftElements(top *ast.Pattern) {
	counter := 0
	freshElemName := func() string {
		counter++
		return fmt.Sprintf("elem__%d", counter)
	}

	renames := map[string]string{}
	authored := len(top.Content)
	for i := 0; i < len(top.Content); i++ {
		gc := top.Content[i]
		isDefine := gc.Kind == ast.DefineContent
		for j, pat := range gc.Patterns {
			if isDefine && pat.Kind == ast.Element {
				if i < authored {
					newName := freshElemName()
					renames[gc.Name] = newName
					gc.Name = newName
				}
				for k, c := range pat.Children {
					pat.Children[k] = liftElementsIn(c, top, freshElemName)
				}
				continue
			}
			gc.Patterns[j] = liftElementsIn(pat, top, freshElemName)
		}
	}
	if len(renames) > 0 {
		renameRefs(top, renames)
	}
}

func liftElementsIn(pat *ast.Pattern, top *ast.Pattern, freshElemName func() string) *ast.Pattern {
	if pat == nil {
		return nil
	}
	if pat.Kind == ast.Element {
		name := freshElemName()
		top.Content = append(top.Content, &ast.GrammarContent{
			Kind:     ast.DefineContent,
			Name:     name,
			Patterns: []*ast.Pattern{pat},
		})
		return &ast.Pattern{Kind: ast.Ref, Name: name}
	}
	for i, c := range pat.Children {
		pat.Children[i] = liftElementsIn(c, top, freshElemName)
	}
	return pat
}

// renameRefs rewrites every ref whose name was reassigned by liftElements
// to the name it was renamed to.
func renameRefs(top *ast.Pattern, renames map[string]string) {
	var walk func(p *ast.Pattern)
	walk = func(p *ast.Pattern) {
		if p == nil {
			return
		}
		if p.Kind == ast.Ref {
			if newName, ok := renames[p.Name]; ok {
				p.Name = newName
			}
		}
		for _, c := range p.Children {
			walk(c)
		}
	}
	for _, gc := range top.Content {
		for _, p := range gc.Patterns {
			walk(p)
		}
	}
}

// inlineAndPrune substitutes each ref to a non-element-bodied define with
// a deep copy of that define's body (no cycle detection is performed,
// see DESIGN.md), then drops every define whose body is not an element.
func inlineAndPrune(top *ast.Pattern) {
	byName := map[string]*ast.GrammarContent{}
	for _, gc := range top.Content[1:] {
		byName[gc.Name] = gc
	}

	start := top.Content[0]
	for i, p := range start.Patterns {
		start.Patterns[i] = inlineRefs(p, byName)
	}
	for _, gc := range top.Content[1:] {
		for i, p := range gc.Patterns {
			gc.Patterns[i] = inlineRefs(p, byName)
		}
	}

	kept := make([]*ast.GrammarContent, 1, len(top.Content))
	kept[0] = start
	for _, gc := range top.Content[1:] {
		if len(gc.Patterns) == 1 && gc.Patterns[0].Kind == ast.Element {
			kept = append(kept, gc)
		}
	}
	top.Content = kept
}

func inlineRefs(pat *ast.Pattern, byName map[string]*ast.GrammarContent) *ast.Pattern {
	if pat == nil {
		return nil
	}
	if pat.Kind == ast.Ref {
		if def, ok := byName[pat.Name]; ok && def.Patterns[0].Kind != ast.Element {
			return inlineRefs(def.Patterns[0].Clone(), byName)
		}
		return pat
	}
	for i, c := range pat.Children {
		pat.Children[i] = inlineRefs(c, byName)
	}
	return pat
}
