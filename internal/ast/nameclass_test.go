package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameMatchesOnlyLiteralName(t *testing.T) {
	nc := Name("doc")
	assert.True(t, nc.Matches("doc"))
	assert.False(t, nc.Matches("other"))
}

func TestAnyNameMatchesEverythingExceptExcluded(t *testing.T) {
	nc := AnyName(Name("secret"))
	assert.True(t, nc.Matches("public"))
	assert.False(t, nc.Matches("secret"))

	bare := AnyName(nil)
	assert.True(t, bare.Matches("anything"))
}

func TestNameChoiceMatchesEitherAlternative(t *testing.T) {
	nc := NameChoice(Name("a"), Name("b"))
	assert.True(t, nc.Matches("a"))
	assert.True(t, nc.Matches("b"))
	assert.False(t, nc.Matches("c"))
}

func TestExceptNameClassNegatesWrapped(t *testing.T) {
	nc := ExceptNameClass(Name("a"))
	assert.False(t, nc.Matches("a"))
	assert.True(t, nc.Matches("b"))
}

func TestNilNameClassMatchesNothing(t *testing.T) {
	var nc *NameClass
	assert.False(t, nc.Matches("anything"))
}

func TestNameClassCloneIsDeepCopy(t *testing.T) {
	orig := NameChoice(Name("a"), AnyName(Name("b")))
	clone := orig.Clone()

	assert.True(t, orig.Equal(clone))
	clone.Left.Name = "changed"
	assert.Equal(t, "a", orig.Left.Name)
}

func TestNameClassEqualComparesStructure(t *testing.T) {
	a := NameChoice(Name("a"), Name("b"))
	b := NameChoice(Name("a"), Name("b"))
	c := NameChoice(Name("a"), Name("c"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
