package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-relaxng/relaxng/internal/ast"
)

func TestElementNamedWithNoChildrenDefaultsToEmpty(t *testing.T) {
	p := ElementNamed("doc")
	require.Len(t, p.Children, 1)
	assert.Equal(t, ast.Empty, p.Children[0].Kind)
}

func TestElementNamedKeepsSuppliedChildren(t *testing.T) {
	p := ElementNamed("doc", TextPattern())
	require.Len(t, p.Children, 1)
	assert.Equal(t, ast.Text, p.Children[0].Kind)
}

func TestAttributeNamedWithNilChildDefaultsToText(t *testing.T) {
	p := AttributeNamed("id", nil)
	require.Len(t, p.Children, 1)
	assert.Equal(t, ast.Text, p.Children[0].Kind)
}

func TestAttributePatternWithNilChildDefaultsToText(t *testing.T) {
	p := AttributePattern(ast.Name("id"), nil)
	require.Len(t, p.Children, 1)
	assert.Equal(t, ast.Text, p.Children[0].Kind)
}

func TestVariadicConstructorsSetKindAndChildren(t *testing.T) {
	g := Group(TextPattern(), Empty())
	assert.Equal(t, ast.Group, g.Kind)
	assert.Len(t, g.Children, 2)

	c := ChoicePattern(TextPattern())
	assert.Equal(t, ast.Choice, c.Kind)
	assert.Len(t, c.Children, 1)
}

func TestStartDefaultsToCombineAbsent(t *testing.T) {
	sc := Start(Empty())
	assert.Equal(t, ast.CombineAbsent, sc.Combine)
	assert.Equal(t, ast.StartContent, sc.Kind)
}

func TestStartCombineSetsExplicitCombine(t *testing.T) {
	sc := StartCombine(ast.CombineChoice, Empty())
	assert.Equal(t, ast.CombineChoice, sc.Combine)
}

func TestDefineCarriesNameAndPatterns(t *testing.T) {
	dc := Define("item", TextPattern(), Empty())
	assert.Equal(t, ast.DefineContent, dc.Kind)
	assert.Equal(t, "item", dc.Name)
	assert.Len(t, dc.Patterns, 2)
}

func TestDataPatternCarriesDataType(t *testing.T) {
	p := DataPattern("string")
	assert.Equal(t, ast.Data, p.Kind)
	assert.Equal(t, "string", p.DataType)
}

func TestValuePatternCarriesLiteral(t *testing.T) {
	p := ValuePattern("yes")
	assert.Equal(t, ast.Value, p.Kind)
	assert.Equal(t, "yes", p.Value)
}

func TestRootWrapsPattern(t *testing.T) {
	p := Empty()
	r := Root(p)
	assert.Same(t, p, r.Pattern)
}
