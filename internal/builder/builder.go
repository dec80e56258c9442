// Package builder provides constructors for internal/ast nodes that
// enforce the syntactic defaults spec.md §4.4 assigns to undersupplied
// constructs, one small function per node kind, all in this file.
package builder

import "github.com/go-relaxng/relaxng/internal/ast"

// Root wraps a single pattern as the tree root.
func Root(p *ast.Pattern) *ast.Root {
	return &ast.Root{Pattern: p}
}

// Empty builds an empty pattern.
func Empty() *ast.Pattern {
	return ast.NewPattern(ast.Empty)
}

// TextPattern builds a text pattern.
func TextPattern() *ast.Pattern {
	return ast.NewPattern(ast.Text)
}

// ValuePattern builds a value pattern with literal content s.
func ValuePattern(s string) *ast.Pattern {
	p := ast.NewPattern(ast.Value)
	p.Value = s
	return p
}

// DataPattern builds a data pattern with the given datatype name.
func DataPattern(dataType string) *ast.Pattern {
	p := ast.NewPattern(ast.Data)
	p.DataType = dataType
	return p
}

// NotAllowedPattern builds a notAllowed pattern.
func NotAllowedPattern() *ast.Pattern {
	return ast.NewPattern(ast.NotAllowed)
}

// RefPattern builds a ref pattern to the given define name.
func RefPattern(name string) *ast.Pattern {
	p := ast.NewPattern(ast.Ref)
	p.Name = name
	return p
}

// ParentRefPattern builds a parentRef pattern to the given define name.
func ParentRefPattern(name string) *ast.Pattern {
	p := ast.NewPattern(ast.ParentRef)
	p.Name = name
	return p
}

// ElementNamed builds an elementNamed pattern; a no-pattern element
// defaults to empty content per §4.4.
func ElementNamed(name string, children ...*ast.Pattern) *ast.Pattern {
	p := ast.NewPattern(ast.ElementNamed)
	p.Name = name
	p.Children = defaultEmpty(children)
	return p
}

// ElementPattern builds a simple-form element pattern over a name class.
func ElementPattern(nc *ast.NameClass, children ...*ast.Pattern) *ast.Pattern {
	p := ast.NewPattern(ast.Element)
	p.NameClass = nc
	p.Children = defaultEmpty(children)
	return p
}

// AttributeNamed builds an attributeNamed pattern; a name-class-only
// attribute defaults to text content per §4.4.
func AttributeNamed(name string, child *ast.Pattern) *ast.Pattern {
	p := ast.NewPattern(ast.AttributeNamed)
	p.Name = name
	if child == nil {
		child = TextPattern()
	}
	p.Children = []*ast.Pattern{child}
	return p
}

// AttributePattern builds a simple-form attribute pattern over a name class.
func AttributePattern(nc *ast.NameClass, child *ast.Pattern) *ast.Pattern {
	p := ast.NewPattern(ast.Attribute)
	p.NameClass = nc
	if child == nil {
		child = TextPattern()
	}
	p.Children = []*ast.Pattern{child}
	return p
}

// Group builds a group pattern over children.
func Group(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.Group, children)
}

// Interleave builds an interleave pattern over children.
func Interleave(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.Interleave, children)
}

// ChoicePattern builds a choice pattern over children.
func ChoicePattern(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.Choice, children)
}

// OptionalPattern builds an optional pattern over children.
func OptionalPattern(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.Optional, children)
}

// ZeroOrMorePattern builds a zeroOrMore pattern over children.
func ZeroOrMorePattern(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.ZeroOrMore, children)
}

// OneOrMorePattern builds a oneOrMore pattern over children.
func OneOrMorePattern(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.OneOrMore, children)
}

// MixedPattern builds a mixed pattern over children.
func MixedPattern(children ...*ast.Pattern) *ast.Pattern {
	return variadic(ast.Mixed, children)
}

// GrammarPattern builds a grammar pattern from ordered content.
func GrammarPattern(content ...*ast.GrammarContent) *ast.Pattern {
	p := ast.NewPattern(ast.GrammarPattern)
	p.Content = content
	return p
}

// Start builds a start declaration, combine absent.
func Start(p *ast.Pattern) *ast.GrammarContent {
	return &ast.GrammarContent{Kind: ast.StartContent, Patterns: []*ast.Pattern{p}}
}

// StartCombine builds a start declaration with an explicit combine.
func StartCombine(combine ast.Combine, p *ast.Pattern) *ast.GrammarContent {
	return &ast.GrammarContent{Kind: ast.StartContent, Combine: combine, Patterns: []*ast.Pattern{p}}
}

// Define builds a define declaration, combine absent; arity defaults to
// the supplied patterns (arity normalization happens in the simplifier).
func Define(name string, children ...*ast.Pattern) *ast.GrammarContent {
	return &ast.GrammarContent{Kind: ast.DefineContent, Name: name, Patterns: children}
}

// DefineCombine builds a define declaration with an explicit combine.
func DefineCombine(name string, combine ast.Combine, children ...*ast.Pattern) *ast.GrammarContent {
	return &ast.GrammarContent{Kind: ast.DefineContent, Name: name, Combine: combine, Patterns: children}
}

func defaultEmpty(children []*ast.Pattern) []*ast.Pattern {
	if len(children) == 0 {
		return []*ast.Pattern{Empty()}
	}
	return children
}

func variadic(kind ast.PatternKind, children []*ast.Pattern) *ast.Pattern {
	p := ast.NewPattern(kind)
	p.Children = children
	return p
}
