package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-relaxng/relaxng/internal/ast"
	"github.com/go-relaxng/relaxng/internal/builder"
	"github.com/go-relaxng/relaxng/internal/checker"
)

// optional(ref(a)) with define a = elementNamed("p") yields a grammar
// whose start is choice(empty, ref(elem__1)) — empty first, after pass
// 8's swap — with the define itself renamed onto the canonical elem__N
// sequence, even though its body was already a lone element: pass 6
// renames every element-rooted define so every reachable element ends up
// behind a canonical name, not just the ones it newly lifts.
func TestRunOptionalRefLiftsElement(t *testing.T) {
	root := builder.Root(builder.GrammarPattern(
		builder.Start(builder.OptionalPattern(builder.RefPattern("a"))),
		builder.Define("a", builder.ElementNamed("p")),
	))

	out, err := Run(root)
	require.NoError(t, err)
	require.NoError(t, checker.Check(out))

	top := out.Pattern
	require.Len(t, top.Content, 2)
	start := top.Content[0].Patterns[0]
	require.Equal(t, ast.Choice, start.Kind)
	require.Len(t, start.Children, 2)
	assert.Equal(t, ast.Empty, start.Children[0].Kind)
	require.Equal(t, ast.Ref, start.Children[1].Kind)

	def := top.Content[1]
	assert.Equal(t, "elem__1", def.Name)
	assert.Equal(t, start.Children[1].Name, def.Name)
	require.Len(t, def.Patterns, 1)
	elem := def.Patterns[0]
	assert.Equal(t, ast.Element, elem.Kind)
	assert.Equal(t, "p", elem.NameClass.Name)
	require.Len(t, elem.Children, 1)
	assert.Equal(t, ast.Empty, elem.Children[0].Kind)
}

// scenario 6: two starts, one combine=choice, one absent, folds into one
// start(choice(...)) carrying combine=choice.
func TestRunFoldsStartsWhenOneCarriesCombine(t *testing.T) {
	root := builder.Root(builder.GrammarPattern(
		builder.StartCombine(ast.CombineChoice, builder.ElementNamed("a")),
		builder.Start(builder.ElementNamed("b")),
	))

	out, err := Run(root)
	require.NoError(t, err)
	require.NoError(t, checker.Check(out))
}

// scenario 7: two starts, both lacking combine, raises a structural error.
func TestRunTwoStartsNoCombineErrors(t *testing.T) {
	root := builder.Root(builder.GrammarPattern(
		builder.Start(builder.ElementNamed("a")),
		builder.Start(builder.ElementNamed("b")),
	))

	_, err := Run(root)
	require.Error(t, err)
}

// Idempotence: simplify(simplify(G)) = simplify(G).
func TestRunIsIdempotent(t *testing.T) {
	cases := map[string]*ast.Root{
		"simple element": builder.Root(builder.GrammarPattern(
			builder.Start(builder.ElementNamed("root", builder.AttributeNamed("id", nil))),
		)),
		"nested refs": builder.Root(builder.GrammarPattern(
			builder.Start(builder.RefPattern("a")),
			builder.Define("a", builder.ElementNamed("a", builder.OptionalPattern(builder.RefPattern("b")))),
			builder.Define("b", builder.ElementNamed("b")),
		)),
		"mixed and mandatory group": builder.Root(builder.GrammarPattern(
			builder.Start(builder.ElementNamed("doc",
				builder.MixedPattern(builder.ZeroOrMorePattern(builder.ElementNamed("em"))),
			)),
		)),
	}

	for name, root := range cases {
		t.Run(name, func(t *testing.T) {
			once, err := Run(root.Clone())
			require.NoError(t, err)
			twice, err := Run(once.Clone())
			require.NoError(t, err)
			assert.True(t, once.Equal(twice), "simplify(simplify(G)) should equal simplify(G)")
		})
	}
}

// Simplifier postcondition: checker accepts every simplified grammar.
func TestRunSatisfiesChecker(t *testing.T) {
	root := builder.Root(builder.GrammarPattern(
		builder.Start(builder.ElementNamed("doc",
			builder.ZeroOrMorePattern(builder.ElementNamed("item", builder.AttributeNamed("id", nil))),
			builder.OptionalPattern(builder.ElementNamed("footer")),
		)),
	))

	out, err := Run(root)
	require.NoError(t, err)
	assert.True(t, checker.IsSimpleForm(out))
}
