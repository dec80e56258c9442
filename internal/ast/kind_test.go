package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternKindStringCoversKnownValues(t *testing.T) {
	cases := map[PatternKind]string{
		Empty:          "empty",
		Ref:            "ref",
		ElementNamed:   "elementNamed",
		Element:        "element",
		GrammarPattern: "grammar",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
	assert.Equal(t, "unknown pattern kind", PatternKind(255).String())
}

func TestContentKindString(t *testing.T) {
	assert.Equal(t, "start", StartContent.String())
	assert.Equal(t, "define", DefineContent.String())
	assert.Equal(t, "unknown content kind", ContentKind(255).String())
}

func TestCombineString(t *testing.T) {
	assert.Equal(t, "absent", CombineAbsent.String())
	assert.Equal(t, "choice", CombineChoice.String())
	assert.Equal(t, "interleave", CombineInterleave.String())
}

func TestNameClassKindString(t *testing.T) {
	assert.Equal(t, "name", NCName.String())
	assert.Equal(t, "anyName", NCAnyName.String())
	assert.Equal(t, "nameChoice", NCChoice.String())
	assert.Equal(t, "exceptNameClass", NCExcept.String())
}
