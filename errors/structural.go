// Package errors collects the structural error categories (§6, §7 tier
// 1) and the document-diagnostic message catalog (§6) for the Relax NG
// simplifier and validator, following the teacher's errors.ErrorCode /
// errors.Validation convention: a typed code plus a constructor per
// category instead of ad hoc fmt.Errorf call sites.
package errors

import "fmt"

// Code identifies a structural error category (§6, §7).
type Code string

const (
	// CodeUnknownDefinition: a ref/parentRef names a define the grammar does not declare.
	CodeUnknownDefinition Code = "unknown-definition"
	// CodeNoStart: a grammar's content has no start declaration.
	CodeNoStart Code = "no-start"
	// CodeCombineMissing: two or more start/define share a name with no combine specified.
	CodeCombineMissing Code = "combine-missing"
	// CodeCombineConflict: two or more start/define share a name with inconsistent combine values.
	CodeCombineConflict Code = "combine-conflict"
	// CodeParentRefNoGrammar: a parentRef appears with no enclosing parent grammar.
	CodeParentRefNoGrammar Code = "parentref-no-grammar"
	// CodeNotOneTopLevelElement: the grammar document has more than one top-level element.
	CodeNotOneTopLevelElement Code = "not-one-top-level-element"
	// CodeNotSimpleForm: the simple-form checker rejected a simplifier result.
	CodeNotSimpleForm Code = "not-simple-form"
	// CodeUnsupportedConstruct: the adapter encountered a wire construct outside scope (§1 Non-goals).
	CodeUnsupportedConstruct Code = "unsupported-construct"
	// CodeMalformedAttribute: the adapter met malformed wire syntax (an element or attribute
	// with neither name nor content, a start not wrapping exactly one pattern, a malformed name class).
	CodeMalformedAttribute Code = "malformed-attribute"
)

// Structural is a grammar-level error: the input is malformed, not the
// document being validated against it (§7 tier 1).
type Structural struct {
	Code    Code
	Message string
}

func (e *Structural) Error() string {
	return e.Message
}

func newStructural(code Code, format string, args ...any) *Structural {
	return &Structural{Code: code, Message: fmt.Sprintf(format, args...)}
}

// UnknownDefinition reports a ref/parentRef to an undeclared name.
func UnknownDefinition(name string) *Structural {
	return newStructural(CodeUnknownDefinition, "Referencing unknown definition: %s", name)
}

// NoStart reports a grammar whose content does not begin with start.
func NoStart() *Structural {
	return newStructural(CodeNoStart, "Grammar should begin with start")
}

// MultipleStartsNoCombine reports two or more starts with no combine specified.
func MultipleStartsNoCombine() *Structural {
	return newStructural(CodeCombineMissing, "Cannot have multiple starts without specifying combine")
}

// MultipleStartsDifferentCombine reports two or more starts with conflicting combine values.
func MultipleStartsDifferentCombine() *Structural {
	return newStructural(CodeCombineConflict, "Cannot have multiple starts with different combine values")
}

// MultipleDefinesNoCombine reports two or more defines sharing a name with no combine specified.
func MultipleDefinesNoCombine(name string) *Structural {
	return newStructural(CodeCombineMissing, "Cannot have multiple starts without specifying combine: %s", name)
}

// MultipleDefinesDifferentCombine reports two or more defines sharing a name with conflicting combine values.
func MultipleDefinesDifferentCombine(name string) *Structural {
	return newStructural(CodeCombineConflict, "Cannot have multiple starts with different combine values: %s", name)
}

// ParentRefNoGrammar reports a parentRef with no enclosing parent grammar.
func ParentRefNoGrammar() *Structural {
	return newStructural(CodeParentRefNoGrammar, "Each ref or parentRef must be within a grammar")
}

// NotOneTopLevelElement reports a grammar document with more than one top-level element.
func NotOneTopLevelElement() *Structural {
	return newStructural(CodeNotOneTopLevelElement, "Must have exactly one top level element")
}

// NotSimpleForm reports a simplifier result that fails the §3 simple-form invariants.
func NotSimpleForm(reason string) *Structural {
	return newStructural(CodeNotSimpleForm, "Not valid as simplified RelaxNG: %s", reason)
}

// UnsupportedConstruct reports a wire construct outside the system's scope (§1 Non-goals).
func UnsupportedConstruct(name string) *Structural {
	return newStructural(CodeUnsupportedConstruct, "unsupported construct: %s", name)
}

// MalformedAttribute reports malformed wire syntax found by the adapter, in
// attributes or elsewhere; the message always starts "malformed attribute:".
func MalformedAttribute(reason string) *Structural {
	return newStructural(CodeMalformedAttribute, "malformed attribute: %s", reason)
}
