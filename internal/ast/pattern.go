package ast

// Pattern is a term in the Relax NG pattern language (§3).
//
// Only the fields relevant to Kind are populated; see the per-Kind
// comments on each field for which Kind values read it.
type Pattern struct {
	Kind PatternKind

	// Name holds the referenced/declared name for Ref, ParentRef,
	// ElementNamed, AttributeNamed.
	Name string

	// Value holds the literal content for Value.
	Value string

	// DataType holds the type name for Data.
	DataType string

	// NameClass holds the name class for Element and Attribute (post
	// lift-name-to-child, pass 1).
	NameClass *NameClass

	// Children holds ordered sub-patterns for every composite kind:
	// ElementNamed/AttributeNamed's pattern list, Element/Attribute's
	// content patterns, Group/Interleave/Choice/Optional/ZeroOrMore/
	// OneOrMore/Mixed's operands.
	Children []*Pattern

	// Content holds the grammar body for GrammarPattern.
	Content []*GrammarContent
}

// GrammarContent is a start or define declaration inside a grammar (§3).
type GrammarContent struct {
	Kind    ContentKind
	Name    string // valid when Kind == DefineContent
	Combine Combine

	// Patterns holds the declaration's body: a single pattern, except
	// that a define may hold several until §4.1 pass 2 wraps them in one
	// group. Same-name start/define declarations are separate
	// GrammarContent values until pass 4 folds them into one.
	Patterns []*Pattern
}

// Root is the tree root: exactly one pattern child (§3).
type Root struct {
	Pattern *Pattern
}

// NewPattern builds a bare pattern of the given kind with no children.
func NewPattern(kind PatternKind) *Pattern {
	return &Pattern{Kind: kind}
}

// Clone returns a deep structural copy of p and all its descendants.
func (p *Pattern) Clone() *Pattern {
	if p == nil {
		return nil
	}
	out := &Pattern{
		Kind:      p.Kind,
		Name:      p.Name,
		Value:     p.Value,
		DataType:  p.DataType,
		NameClass: p.NameClass.Clone(),
	}
	if p.Children != nil {
		out.Children = make([]*Pattern, len(p.Children))
		for i, c := range p.Children {
			out.Children[i] = c.Clone()
		}
	}
	if p.Content != nil {
		out.Content = make([]*GrammarContent, len(p.Content))
		for i, c := range p.Content {
			out.Content[i] = c.Clone()
		}
	}
	return out
}

// Clone returns a deep structural copy of gc.
func (gc *GrammarContent) Clone() *GrammarContent {
	if gc == nil {
		return nil
	}
	out := &GrammarContent{Kind: gc.Kind, Name: gc.Name, Combine: gc.Combine}
	if gc.Patterns != nil {
		out.Patterns = make([]*Pattern, len(gc.Patterns))
		for i, p := range gc.Patterns {
			out.Patterns[i] = p.Clone()
		}
	}
	return out
}

// Clone returns a deep structural copy of the whole tree.
func (r *Root) Clone() *Root {
	if r == nil {
		return nil
	}
	return &Root{Pattern: r.Pattern.Clone()}
}

// Equal reports structural equality, used by the idempotence property (§8).
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Kind != o.Kind || p.Name != o.Name || p.Value != o.Value || p.DataType != o.DataType {
		return false
	}
	if !p.NameClass.Equal(o.NameClass) {
		return false
	}
	if len(p.Children) != len(o.Children) {
		return false
	}
	for i := range p.Children {
		if !p.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	if len(p.Content) != len(o.Content) {
		return false
	}
	for i := range p.Content {
		if !p.Content[i].Equal(o.Content[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (gc *GrammarContent) Equal(o *GrammarContent) bool {
	if gc == nil || o == nil {
		return gc == o
	}
	if gc.Kind != o.Kind || gc.Name != o.Name || gc.Combine != o.Combine {
		return false
	}
	if len(gc.Patterns) != len(o.Patterns) {
		return false
	}
	for i := range gc.Patterns {
		if !gc.Patterns[i].Equal(o.Patterns[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (nc *NameClass) Equal(o *NameClass) bool {
	if nc == nil || o == nil {
		return nc == o
	}
	if nc.Kind != o.Kind || nc.Name != o.Name {
		return false
	}
	return nc.Except.Equal(o.Except) && nc.Left.Equal(o.Left) && nc.Right.Equal(o.Right) && nc.Wrapped.Equal(o.Wrapped)
}

// Equal reports structural equality of the whole tree.
func (r *Root) Equal(o *Root) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Pattern.Equal(o.Pattern)
}
