// Package checker implements the pure predicate (§4.2) that certifies a
// grammar satisfies every simple-form invariant from §3. Each invariant
// is an independent check; Check short-circuits on the first violation,
// following the teacher's internal/validation convention of returning a
// descriptive error from a structural predicate rather than a bare bool.
package checker

import (
	"fmt"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/ast"
)

// Check returns nil if root satisfies every §3 simple-form invariant,
// or a *rngerrors.Structural naming the first one violated.
func Check(root *ast.Root) error {
	if root == nil || root.Pattern == nil || root.Pattern.Kind != ast.GrammarPattern {
		return fail("1", "root's sole child must be a grammar")
	}
	top := root.Pattern

	if err := checkStartThenDefines(top); err != nil {
		return err
	}
	if err := checkDefinesWrapElement(top); err != nil {
		return err
	}
	if err := checkElementShape(top); err != nil {
		return err
	}
	if err := checkAttributeShape(top); err != nil {
		return err
	}
	if err := checkArities(top); err != nil {
		return err
	}
	if err := checkNoEmptyInForbiddenSpots(top); err != nil {
		return err
	}
	if err := checkNotAllowedParent(top); err != nil {
		return err
	}
	if err := checkNoRemovedKinds(top); err != nil {
		return err
	}
	return nil
}

// IsSimpleForm is the bool-returning form of Check, matching the
// predicate spec.md §4.2 and §8 describe directly.
func IsSimpleForm(root *ast.Root) bool {
	return Check(root) == nil
}

func fail(invariant, reason string) error {
	return rngerrors.NotSimpleForm(fmt.Sprintf("invariant %s: %s", invariant, reason))
}

// checkStartThenDefines enforces invariant 2: grammar's first content is
// start, all the rest define.
func checkStartThenDefines(top *ast.Pattern) error {
	if len(top.Content) == 0 || top.Content[0].Kind != ast.StartContent {
		return fail("2", "grammar's first child must be start")
	}
	for _, gc := range top.Content[1:] {
		if gc.Kind != ast.DefineContent {
			return fail("2", "every content after start must be define")
		}
	}
	return nil
}

// checkDefinesWrapElement enforces invariant 3: every define has exactly
// one child, an element.
func checkDefinesWrapElement(top *ast.Pattern) error {
	for _, gc := range top.Content[1:] {
		if len(gc.Patterns) != 1 || gc.Patterns[0].Kind != ast.Element {
			return fail("3", fmt.Sprintf("define %q must wrap exactly one element", gc.Name))
		}
	}
	return nil
}

// checkElementShape enforces invariant 4: every element has a name-class
// and exactly one content pattern.
func checkElementShape(top *ast.Pattern) error {
	return walkAll(top, func(p *ast.Pattern) error {
		if p.Kind == ast.Element {
			if p.NameClass == nil || len(p.Children) != 1 {
				return fail("4", "element must carry a name-class and exactly one content pattern")
			}
		}
		return nil
	})
}

// checkAttributeShape enforces invariant 5: every attribute has a
// name-class and exactly one content pattern.
func checkAttributeShape(top *ast.Pattern) error {
	return walkAll(top, func(p *ast.Pattern) error {
		if p.Kind == ast.Attribute {
			if p.NameClass == nil || len(p.Children) != 1 {
				return fail("5", "attribute must carry a name-class and exactly one content pattern")
			}
		}
		return nil
	})
}

// checkArities enforces invariants 6, 7, 8: oneOrMore/choice/group/interleave arities.
func checkArities(top *ast.Pattern) error {
	return walkAll(top, func(p *ast.Pattern) error {
		switch p.Kind {
		case ast.OneOrMore:
			if len(p.Children) != 1 {
				return fail("6", "oneOrMore must have exactly one child")
			}
		case ast.Choice:
			if len(p.Children) != 2 {
				return fail("7", "choice must have exactly two children")
			}
		case ast.Group, ast.Interleave:
			if len(p.Children) != 2 {
				return fail("8", "group/interleave must have exactly two children")
			}
		}
		return nil
	})
}

// checkNoEmptyInForbiddenSpots enforces invariant 9.
func checkNoEmptyInForbiddenSpots(top *ast.Pattern) error {
	return walkAll(top, func(p *ast.Pattern) error {
		switch p.Kind {
		case ast.Group, ast.Interleave, ast.OneOrMore:
			for _, c := range p.Children {
				if c.Kind == ast.Empty {
					return fail("9", fmt.Sprintf("empty must not appear as a child of %s", p.Kind))
				}
			}
		case ast.Choice:
			if len(p.Children) == 2 && p.Children[1].Kind == ast.Empty {
				return fail("9", "empty must not appear as the second child of choice")
			}
		}
		return nil
	})
}

// checkNotAllowedParent enforces invariant 10: notAllowed appears only
// as child of start or element.
func checkNotAllowedParent(top *ast.Pattern) error {
	for _, p := range top.Content[0].Patterns {
		if err := walkNotAllowedParent(p, true); err != nil {
			return err
		}
	}
	for _, gc := range top.Content[1:] {
		for _, p := range gc.Patterns {
			if err := walkNotAllowedParent(p, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkNotAllowedParent(p *ast.Pattern, parentIsStartOrElement bool) error {
	if p == nil {
		return nil
	}
	if p.Kind == ast.NotAllowed && !parentIsStartOrElement {
		return fail("10", "notAllowed may only appear as a child of start or element")
	}
	childIsUnderAllowedParent := p.Kind == ast.Element
	for _, c := range p.Children {
		if err := walkNotAllowedParent(c, childIsUnderAllowedParent); err != nil {
			return err
		}
	}
	return nil
}

// checkNoRemovedKinds enforces invariant 11.
func checkNoRemovedKinds(top *ast.Pattern) error {
	return walkAll(top, func(p *ast.Pattern) error {
		switch p.Kind {
		case ast.Optional, ast.ZeroOrMore, ast.Mixed, ast.ParentRef, ast.ElementNamed, ast.AttributeNamed:
			return fail("11", fmt.Sprintf("%s must not remain after simplification", p.Kind))
		}
		return nil
	})
}

// walkAll visits every pattern reachable from top's content, returning
// the first error fn produces.
func walkAll(top *ast.Pattern, fn func(*ast.Pattern) error) error {
	for _, gc := range top.Content {
		for _, p := range gc.Patterns {
			if err := walkPattern(p, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkPattern(p *ast.Pattern, fn func(*ast.Pattern) error) error {
	if p == nil {
		return nil
	}
	if err := fn(p); err != nil {
		return err
	}
	for _, c := range p.Children {
		if err := walkPattern(c, fn); err != nil {
			return err
		}
	}
	return nil
}
