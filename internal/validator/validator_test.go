package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rngerrors "github.com/go-relaxng/relaxng/errors"
	"github.com/go-relaxng/relaxng/internal/ast"
	"github.com/go-relaxng/relaxng/internal/builder"
)

func sessionFor(t *testing.T, start *ast.Pattern, defines ...*ast.GrammarContent) *Session {
	t.Helper()
	content := append([]*ast.GrammarContent{builder.Start(start)}, defines...)
	root := builder.Root(builder.GrammarPattern(content...))
	return NewSession(root)
}

func elem(name string, children ...*XMLNode) *XMLNode {
	return &XMLNode{Kind: NodeElement, Name: name, Children: children}
}

func attrElem(name string, attrs map[string]string, children ...*XMLNode) *XMLNode {
	return &XMLNode{Kind: NodeElement, Name: name, Attrs: attrs, Children: children}
}

func text(v string) *XMLNode {
	return &XMLNode{Kind: NodeText, Value: v}
}

// A top-level mismatch between the document's root and the grammar's
// start reports both the expected-vs-found mismatch and that the root
// itself was unexpected.
func TestValidateTopLevelNameMismatchReportsBoth(t *testing.T) {
	s := sessionFor(t, builder.ElementNamed("y"))
	doc := elem("x")

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{
		rngerrors.Elem("y", "x"),
		rngerrors.UnexpectedElem("x"),
	}, doc.Problems)
}

// An element with implicit empty content, when the document supplies
// text, reports both noChildren and noText.
func TestValidateEmptyWithTextReportsBothDiagnostics(t *testing.T) {
	s := sessionFor(t, builder.ElementNamed("p"))
	doc := elem("p", text("hi"))

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{
		rngerrors.NoChildren(1),
		rngerrors.NoText(),
	}, doc.Problems)
}

// Choice resolves by element name; the attribute problem from the
// winning branch survives.
func TestValidateChoiceResolvesByNameAndKeepsAttributeProblem(t *testing.T) {
	choice := builder.ChoicePattern(
		builder.ElementNamed("a", builder.AttributeNamed("id", nil)),
		builder.ElementNamed("b"),
	)
	s := sessionFor(t, choice)
	doc := attrElem("a", nil)

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{rngerrors.Attr("id")}, doc.Problems)
}

// oneOrMore greedily consumes two <p/> elements, then falls back to
// elementNamed("b") for the remaining pattern, with no diagnostics when
// the document matches exactly.
func TestValidateOneOrMoreGreedyThenFallsBackToRest(t *testing.T) {
	root := builder.ElementNamed("root", builder.Group(
		builder.OneOrMorePattern(builder.ElementNamed("p")),
		builder.ElementNamed("b"),
	))
	s := sessionFor(t, root)
	doc := elem("root", elem("p"), elem("p"), elem("b"))

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, doc.Problems)
}

// When oneOrMore's greedy continuation can't advance, it falls back to
// matching rest against the same unconsumed position — the diagnostic
// that surfaces is rest's own mismatch, not the discarded continuation
// attempt's, since a failed branch's diagnostics never survive (only
// the branch actually taken commits its diagnostics).
func TestValidateOneOrMoreFallbackReportsRestsOwnMismatch(t *testing.T) {
	root := builder.ElementNamed("root", builder.Group(
		builder.OneOrMorePattern(builder.ElementNamed("p")),
		builder.ElementNamed("c"),
	))
	s := sessionFor(t, root)
	doc := elem("root", elem("p"), elem("b"))

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	// The outer root element's own name still agreed, so the document
	// remains plausible overall: the interior mismatch surfaces only as
	// an annotated problem, not an outer validation failure.
	assert.True(t, ok)
	assert.Equal(t, []string{rngerrors.Elem("c", "b")}, doc.Problems)
}

// A choice over two attributes discriminates by presence: matching
// the branch whose attribute is actually present reports no problems.
func TestValidateChoiceOverAttributesDiscriminatesByPresence(t *testing.T) {
	p := builder.ElementNamed("p", builder.ChoicePattern(
		builder.AttributeNamed("foo", nil),
		builder.AttributeNamed("bar", nil),
	))
	s := sessionFor(t, p)
	doc := attrElem("p", map[string]string{"bar": "x"})

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, doc.Problems)
}

// A failed optional branch discards its diagnostics and falls back to
// rest cleanly.
func TestValidateOptionalAbsorbsFailedBranch(t *testing.T) {
	root := builder.ElementNamed("root", builder.Group(
		builder.OptionalPattern(builder.ElementNamed("a")),
		builder.ElementNamed("b"),
	))
	s := sessionFor(t, root)
	doc := elem("root", elem("b"))

	ok, err := s.Validate(doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, doc.Problems)
}

// Unknown ref/parentRef is a tier-1 structural error, recovered and
// converted rather than left to panic across the API boundary.
func TestValidateUnknownRefReturnsStructuralError(t *testing.T) {
	s := sessionFor(t, builder.RefPattern("missing"))
	doc := elem("root")

	ok, err := s.Validate(doc)
	assert.False(t, ok)
	require.Error(t, err)
}

// CollectProblems builds slash-separated element-name paths from the
// validated root down to each annotated descendant.
func TestCollectProblemsBuildsPaths(t *testing.T) {
	s := sessionFor(t, builder.ElementNamed("root", builder.ElementNamed("child", builder.AttributeNamed("id", nil))))
	doc := elem("root", elem("child"))

	_, err := s.Validate(doc)
	require.NoError(t, err)

	problems := s.CollectProblems(doc, true)
	require.Len(t, problems, 1)
	assert.Equal(t, "root/child", problems[0].Path)
	assert.Equal(t, rngerrors.Attr("id"), problems[0].Message)
}
