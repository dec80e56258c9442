package validator

import (
	"fmt"
	"sort"

	"github.com/go-relaxng/relaxng/internal/ast"

	rngerrors "github.com/go-relaxng/relaxng/errors"
)

// diagnostic pairs a message with the node it will be attached to, once
// committed. Matching never mutates a node directly: every dispatch rule
// below returns the diagnostics its branch produced, and a losing branch
// (optional's fallback, a choice alternative that failed, zeroOrMore's
// stopped iteration) simply discards its diagnostics slice along with
// its context, rather than undoing writes already made to a node.
type diagnostic struct {
	node    *XMLNode
	message string
}

// match is the recursive core (§4.3): dispatches on the head pattern,
// threads the rest of the pattern list through group/ref splicing, and
// returns whether the head plausibly matched, the context the tail
// sees, and the diagnostics produced along the way.
func (s *Session) match(ctx context, patterns []*ast.Pattern) (bool, context, []diagnostic) {
	if len(patterns) == 0 {
		return true, ctx, nil
	}
	head, rest := patterns[0], patterns[1:]

	switch head.Kind {
	case ast.Empty:
		return s.matchEmpty(ctx, rest)
	case ast.Text, ast.Value, ast.Data:
		return s.matchTextLike(ctx, rest)
	case ast.NotAllowed:
		return false, ctx, nil
	case ast.ElementNamed:
		return s.matchElementNamed(ctx, head, rest)
	case ast.Element:
		return s.matchElement(ctx, head, rest)
	case ast.AttributeNamed:
		return s.matchAttributeNamed(ctx, head, rest)
	case ast.Attribute:
		return s.matchAttribute(ctx, head, rest)
	case ast.Ref, ast.ParentRef:
		defPats, ok := s.byName[head.Name]
		if !ok {
			panic(unknownRefPanic{head.Name})
		}
		return s.match(ctx, chain(defPats, rest))
	case ast.Group:
		return s.match(ctx, chain(head.Children, rest))
	case ast.Optional:
		return s.matchOptional(ctx, head, rest)
	case ast.Choice:
		return s.matchChoice(ctx, head, rest)
	case ast.ZeroOrMore:
		return s.matchZeroOrMore(ctx, head, rest)
	case ast.OneOrMore:
		return s.matchOneOrMore(ctx, head, rest)
	case ast.Mixed, ast.Interleave:
		panic(interleaveUnsupportedPanic{})
	default:
		panic(fmt.Sprintf("unhandled pattern kind in match: %s", head.Kind))
	}
}

func (s *Session) matchEmpty(ctx context, rest []*ast.Pattern) (bool, context, []diagnostic) {
	if len(ctx.children) == 0 {
		return s.match(ctx, rest)
	}
	diags := []diagnostic{{ctx.node, rngerrors.NoChildren(len(ctx.children))}}
	if ctx.children[0].Kind == NodeText {
		diags = append(diags, diagnostic{ctx.node, rngerrors.NoText()})
	}
	return false, ctx, diags
}

// matchTextLike implements text, and treats value/data as shape-only
// text matches (§1 Non-goals excludes literal value and datatype
// checking, so a text-shaped child is all that's verified).
func (s *Session) matchTextLike(ctx context, rest []*ast.Pattern) (bool, context, []diagnostic) {
	if len(ctx.children) > 0 && ctx.children[0].Kind == NodeText {
		return s.match(ctx.advance(), rest)
	}
	found := describe(nil)
	if len(ctx.children) > 0 {
		found = describe(ctx.children[0])
	}
	ok, ctx2, diags := s.match(ctx, rest)
	return ok, ctx2, prependDiag(ctx.node, rngerrors.Text(found), diags)
}

// matchElementNamed implements elementNamed, the as-authored dispatch
// the reference test suite runs the validator against directly (§4.3).
func (s *Session) matchElementNamed(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	if len(ctx.children) == 0 {
		return false, ctx, []diagnostic{{ctx.node, rngerrors.Elem(head.Name, "nothing")}}
	}
	child := ctx.children[0]
	if child.Kind != NodeElement || child.Name != head.Name {
		return false, ctx.advance(), []diagnostic{{ctx.node, rngerrors.Elem(head.Name, describe(child))}}
	}
	return s.commitElement(ctx, child, head.Children, rest)
}

// matchElement implements element (NameClass + single content pattern),
// the simplified-form shape pass1 (liftName) produces from elementNamed.
func (s *Session) matchElement(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	if len(ctx.children) == 0 {
		return false, ctx, []diagnostic{{ctx.node, rngerrors.Elem(describeNameClass(head.NameClass), "nothing")}}
	}
	child := ctx.children[0]
	if child.Kind != NodeElement || !head.NameClass.Matches(child.Name) {
		return false, ctx.advance(), []diagnostic{{ctx.node, rngerrors.Elem(describeNameClass(head.NameClass), describe(child))}}
	}
	return s.commitElement(ctx, child, head.Children, rest)
}

// commitElement validates the matched element's contents and consumes
// it, win or lose — "on match" the element's interior diagnostics are
// written regardless of overall success, because the shape matched.
// Any attribute left unconsumed in the inner context once its content
// pattern has run is one the content model never declared, and is
// reported as unexpected.
func (s *Session) commitElement(ctx context, child *XMLNode, inner, rest []*ast.Pattern) (bool, context, []diagnostic) {
	innerCtx := context{node: child, children: child.Children, attrs: child.Attrs}
	_, innerFinal, innerDiags := s.match(innerCtx, inner)
	innerDiags = append(innerDiags, unexpectedAttrDiags(child, innerFinal.attrs)...)
	ok, ctx2, diags := s.match(ctx.advance(), rest)
	return ok, ctx2, append(innerDiags, diags...)
}

// unexpectedAttrDiags reports every attribute left in leftover, in
// deterministic name order.
func unexpectedAttrDiags(node *XMLNode, leftover map[string]string) []diagnostic {
	if len(leftover) == 0 {
		return nil
	}
	names := make([]string, 0, len(leftover))
	for name := range leftover {
		names = append(names, name)
	}
	sort.Strings(names)
	diags := make([]diagnostic, 0, len(names))
	for _, name := range names {
		diags = append(diags, diagnostic{node, rngerrors.UnexpectedAttr(name)})
	}
	return diags
}

// matchAttributeNamed implements attributeNamed, the as-authored form.
// Absence is reported and, like elementNamed, treated as a failed match
// rather than an auto-continue: a choice over alternative attributes
// needs presence to discriminate branches (§8 scenario 4), and a group
// that wraps this in an enclosing element still gets the diagnostic
// regardless, since commitElement keeps interior diagnostics on match
// of the outer name independent of the interior outcome.
func (s *Session) matchAttributeNamed(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	value, present := ctx.attrs[head.Name]
	if !present {
		return false, ctx, []diagnostic{{ctx.node, rngerrors.Attr(head.Name)}}
	}
	return s.commitAttribute(ctx, head.Name, value, head.Children, rest)
}

// matchAttribute implements attribute (NameClass + single content
// pattern), the simplified-form shape.
func (s *Session) matchAttribute(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	name, value, present := lookupByNameClass(ctx.attrs, head.NameClass)
	if !present {
		return false, ctx, []diagnostic{{ctx.node, rngerrors.Attr(describeNameClass(head.NameClass))}}
	}
	return s.commitAttribute(ctx, name, value, head.Children, rest)
}

func (s *Session) commitAttribute(ctx context, name, value string, inner, rest []*ast.Pattern) (bool, context, []diagnostic) {
	var innerPat *ast.Pattern
	if len(inner) > 0 {
		innerPat = inner[0]
	}
	attrDiags := s.validateAttrValue(ctx.node, name, value, innerPat)
	newCtx := context{node: ctx.node, children: ctx.children, attrs: ctx.withoutAttr(name)}
	ok, ctx2, diags := s.match(newCtx, rest)
	return ok, ctx2, append(attrDiags, diags...)
}

// validateAttrValue implements the attribute sub-matcher (§4.3): text
// accepts any string, ref dereferences a single-pattern define, and
// value/data/choice are accepted as shape-only.
func (s *Session) validateAttrValue(node *XMLNode, name, value string, pat *ast.Pattern) []diagnostic {
	_ = value
	if pat == nil {
		return nil
	}
	resolved := pat
	if resolved.Kind == ast.Ref || resolved.Kind == ast.ParentRef {
		defPats, ok := s.byName[resolved.Name]
		if !ok {
			panic(unknownRefPanic{resolved.Name})
		}
		if len(defPats) != 1 {
			return []diagnostic{{node, rngerrors.AttrText(name, "multiple patterns")}}
		}
		resolved = defPats[0]
	}
	switch resolved.Kind {
	case ast.Text, ast.Value, ast.Data, ast.Choice:
		return nil
	default:
		return []diagnostic{{node, rngerrors.AttrText(name, resolved.Kind.String())}}
	}
}

// matchOptional implements optional: try inner then rest; on failure,
// fall back to rest alone on the context unchanged by the failed try.
func (s *Session) matchOptional(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	inner := head.Children[0]
	if ok, ctx2, diags := s.match(ctx, prepend(inner, rest)); ok {
		return true, ctx2, diags
	}
	return s.match(ctx, rest)
}

// matchChoice implements choice: try every alternative in order, first
// success wins; if none succeeds, report on the context and invalidate.
func (s *Session) matchChoice(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	for _, alt := range head.Children {
		if ok, ctx2, diags := s.match(ctx, prepend(alt, rest)); ok {
			return true, ctx2, diags
		}
	}
	return false, ctx, []diagnostic{{ctx.node, rngerrors.NoMatch()}}
}

// matchZeroOrMore implements zeroOrMore: repeat inner while it keeps
// advancing the context, then fall back to rest. Stopping the recursion
// as soon as a sub-step fails to advance avoids looping forever on
// patterns like zeroOrMore(optional(x)) that can "succeed" without
// consuming anything.
func (s *Session) matchZeroOrMore(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	inner := head.Children[0]
	innerOk, innerCtx, innerDiags := s.match(ctx, []*ast.Pattern{inner})
	if innerOk && advanced(ctx, innerCtx) {
		ok, ctx2, diags := s.matchZeroOrMore(innerCtx, head, rest)
		return ok, ctx2, append(innerDiags, diags...)
	}
	return s.match(ctx, rest)
}

// matchOneOrMore implements oneOrMore: consume inner once, then greedily
// try another iteration before falling back to rest.
func (s *Session) matchOneOrMore(ctx context, head *ast.Pattern, rest []*ast.Pattern) (bool, context, []diagnostic) {
	inner := head.Children[0]
	ok, ctx2, diags := s.match(ctx, []*ast.Pattern{inner})
	if !ok {
		return false, ctx, diags
	}
	if advanced(ctx, ctx2) {
		if okSelf, ctx3, diagsSelf := s.match(ctx2, prepend(head, rest)); okSelf {
			return true, ctx3, append(diags, diagsSelf...)
		}
	}
	okRest, ctx3, diagsRest := s.match(ctx2, rest)
	return okRest, ctx3, append(diags, diagsRest...)
}

func prependDiag(node *XMLNode, message string, rest []diagnostic) []diagnostic {
	out := make([]diagnostic, 0, len(rest)+1)
	out = append(out, diagnostic{node, message})
	return append(out, rest...)
}
