// Package ast defines the Relax NG abstract syntax tree: patterns, name
// classes, and grammar content. Every node carries a Kind discriminant;
// exhaustive switches over Kind are the dispatch mechanism used by the
// simplifier, checker, and validator.
package ast

// PatternKind discriminates the Pattern node family (§3).
type PatternKind uint8

const (
	Empty PatternKind = iota
	Text
	Value
	Data
	NotAllowed
	Ref
	ParentRef
	ElementNamed
	Element
	AttributeNamed
	Attribute
	Group
	Interleave
	Choice
	Optional
	ZeroOrMore
	OneOrMore
	Mixed
	GrammarPattern
)

func (k PatternKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Value:
		return "value"
	case Data:
		return "data"
	case NotAllowed:
		return "notAllowed"
	case Ref:
		return "ref"
	case ParentRef:
		return "parentRef"
	case ElementNamed:
		return "elementNamed"
	case Element:
		return "element"
	case AttributeNamed:
		return "attributeNamed"
	case Attribute:
		return "attribute"
	case Group:
		return "group"
	case Interleave:
		return "interleave"
	case Choice:
		return "choice"
	case Optional:
		return "optional"
	case ZeroOrMore:
		return "zeroOrMore"
	case OneOrMore:
		return "oneOrMore"
	case Mixed:
		return "mixed"
	case GrammarPattern:
		return "grammar"
	default:
		return "unknown pattern kind"
	}
}

// ContentKind discriminates GrammarContent nodes (§3).
type ContentKind uint8

const (
	StartContent ContentKind = iota
	DefineContent
)

func (k ContentKind) String() string {
	switch k {
	case StartContent:
		return "start"
	case DefineContent:
		return "define"
	default:
		return "unknown content kind"
	}
}

// Combine discriminates the combine attribute carried by start/define (§3, §4.1 pass 4).
type Combine uint8

const (
	// CombineAbsent marks a start/define with no explicit combine attribute.
	CombineAbsent Combine = iota
	CombineChoice
	CombineInterleave
)

func (c Combine) String() string {
	switch c {
	case CombineAbsent:
		return "absent"
	case CombineChoice:
		return "choice"
	case CombineInterleave:
		return "interleave"
	default:
		return "unknown combine"
	}
}

// NameClassKind discriminates the NameClass node family (§3).
type NameClassKind uint8

const (
	NCName NameClassKind = iota
	NCAnyName
	NCChoice
	NCExcept
)

func (k NameClassKind) String() string {
	switch k {
	case NCName:
		return "name"
	case NCAnyName:
		return "anyName"
	case NCChoice:
		return "nameChoice"
	case NCExcept:
		return "exceptNameClass"
	default:
		return "unknown name-class kind"
	}
}
