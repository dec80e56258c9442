package ast

// NameClass matches element and attribute names (§3). Namespace URIs are
// not modeled: every comparison is against the local Name string.
type NameClass struct {
	Kind NameClassKind

	// Name is the literal local name, valid when Kind == NCName.
	Name string

	// Except is the negated member of an anyName, valid when Kind == NCAnyName.
	// May be nil (plain anyName with no exception).
	Except *NameClass

	// Left and Right are the alternatives of a nameChoice, valid when Kind == NCChoice.
	Left, Right *NameClass

	// Wrapped is the negated class of an exceptNameClass, valid when Kind == NCExcept.
	Wrapped *NameClass
}

// Name builds a literal name class.
func Name(local string) *NameClass {
	return &NameClass{Kind: NCName, Name: local}
}

// AnyName builds an anyName class, optionally excluding except.
func AnyName(except *NameClass) *NameClass {
	return &NameClass{Kind: NCAnyName, Except: except}
}

// NameChoice builds a choice between two name classes.
func NameChoice(left, right *NameClass) *NameClass {
	return &NameClass{Kind: NCChoice, Left: left, Right: right}
}

// ExceptNameClass builds the negation of a name class, used inside anyName/except.
func ExceptNameClass(wrapped *NameClass) *NameClass {
	return &NameClass{Kind: NCExcept, Wrapped: wrapped}
}

// Matches reports whether the name class admits the local name n.
func (nc *NameClass) Matches(n string) bool {
	if nc == nil {
		return false
	}
	switch nc.Kind {
	case NCName:
		return nc.Name == n
	case NCAnyName:
		if nc.Except != nil && nc.Except.Matches(n) {
			return false
		}
		return true
	case NCChoice:
		return nc.Left.Matches(n) || nc.Right.Matches(n)
	case NCExcept:
		return !nc.Wrapped.Matches(n)
	default:
		return false
	}
}

// Clone returns a deep structural copy.
func (nc *NameClass) Clone() *NameClass {
	if nc == nil {
		return nil
	}
	out := &NameClass{Kind: nc.Kind, Name: nc.Name}
	out.Except = nc.Except.Clone()
	out.Left = nc.Left.Clone()
	out.Right = nc.Right.Clone()
	out.Wrapped = nc.Wrapped.Clone()
	return out
}
