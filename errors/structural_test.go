package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Structural
		want string
		code Code
	}{
		{"unknown definition", UnknownDefinition("foo"), "Referencing unknown definition: foo", CodeUnknownDefinition},
		{"no start", NoStart(), "Grammar should begin with start", CodeNoStart},
		{"multiple starts no combine", MultipleStartsNoCombine(), "Cannot have multiple starts without specifying combine", CodeCombineMissing},
		{"multiple starts different combine", MultipleStartsDifferentCombine(), "Cannot have multiple starts with different combine values", CodeCombineConflict},
		{"parentref no grammar", ParentRefNoGrammar(), "Each ref or parentRef must be within a grammar", CodeParentRefNoGrammar},
		{"not one top level element", NotOneTopLevelElement(), "Must have exactly one top level element", CodeNotOneTopLevelElement},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
			assert.Equal(t, tc.code, tc.err.Code)
		})
	}
}

func TestDiagnosticCatalog(t *testing.T) {
	assert.Equal(t, "Expected text but found element", Text("element"))
	assert.Equal(t, "Unexpected text in element", NoText())
	assert.Equal(t, "Expected element p but found b", Elem("p", "b"))
	assert.Equal(t, "Expected attribute: foo", Attr("foo"))
	assert.Equal(t, "Expected attribute value for foo to be text but was choice", AttrText("foo", "choice"))
	assert.Equal(t, "Expected no contents but found 1 children", NoChildren(1))
	assert.Equal(t, "Unexpected element: p", UnexpectedElem("p"))
	assert.Equal(t, "Unexpected attribute: foo", UnexpectedAttr("foo"))
	assert.Equal(t, "Could not find matching choice", NoMatch())
}
