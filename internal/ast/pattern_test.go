package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternCloneIsDeepCopy(t *testing.T) {
	orig := &Pattern{
		Kind:      Element,
		NameClass: Name("doc"),
		Children:  []*Pattern{NewPattern(Text)},
		Content: []*GrammarContent{
			{Kind: DefineContent, Name: "a", Patterns: []*Pattern{NewPattern(Empty)}},
		},
	}

	clone := orig.Clone()
	assert.True(t, orig.Equal(clone))

	clone.Children[0].Kind = Value
	clone.Content[0].Patterns[0].Kind = Text
	clone.NameClass.Name = "other"

	assert.Equal(t, PatternKind(Text), orig.Children[0].Kind)
	assert.Equal(t, PatternKind(Empty), orig.Content[0].Patterns[0].Kind)
	assert.Equal(t, "doc", orig.NameClass.Name)
}

func TestPatternCloneNilIsNil(t *testing.T) {
	var p *Pattern
	assert.Nil(t, p.Clone())
}

func TestPatternEqualComparesKindAndFields(t *testing.T) {
	a := &Pattern{Kind: Ref, Name: "x"}
	b := &Pattern{Kind: Ref, Name: "x"}
	c := &Pattern{Kind: Ref, Name: "y"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPatternEqualComparesChildrenOrderAndLength(t *testing.T) {
	a := &Pattern{Kind: Group, Children: []*Pattern{{Kind: Text}, {Kind: Empty}}}
	b := &Pattern{Kind: Group, Children: []*Pattern{{Kind: Empty}, {Kind: Text}}}
	c := &Pattern{Kind: Group, Children: []*Pattern{{Kind: Text}}}

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(a.Clone()))
}

func TestRootEqualDelegatesToPattern(t *testing.T) {
	r1 := &Root{Pattern: &Pattern{Kind: Empty}}
	r2 := &Root{Pattern: &Pattern{Kind: Empty}}
	r3 := &Root{Pattern: &Pattern{Kind: Text}}

	assert.True(t, r1.Equal(r2))
	assert.False(t, r1.Equal(r3))
}

func TestGrammarContentEqualComparesCombineAndPatterns(t *testing.T) {
	a := &GrammarContent{Kind: DefineContent, Name: "x", Combine: CombineChoice, Patterns: []*Pattern{{Kind: Empty}}}
	b := &GrammarContent{Kind: DefineContent, Name: "x", Combine: CombineChoice, Patterns: []*Pattern{{Kind: Empty}}}
	c := &GrammarContent{Kind: DefineContent, Name: "x", Combine: CombineInterleave, Patterns: []*Pattern{{Kind: Empty}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
