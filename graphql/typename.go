package graphql

import "strings"

// TypeNameKind distinguishes the three GraphQL type modifiers.
type TypeNameKind int

const (
	// KindNamed is a bare type name, e.g. "Int".
	KindNamed TypeNameKind = iota
	// KindNonNull wraps an inner reference with a trailing "!".
	KindNonNull
	// KindList wraps an inner reference in "[...]".
	KindList
)

// TypeName is a parsed GraphQL type reference: a cheap, string-backed parse
// of one level of modifier, with the inner reference left unparsed until
// needed.
type TypeName struct {
	Kind TypeNameKind
	// Name holds the bare name when Kind == KindNamed.
	Name string
	// Inner holds the unparsed inner reference string when Kind != KindNamed.
	Inner string
}

// ParseTypeName parses exactly one modifier level of a type reference
// string. Parsing is non-recursive: a NonNull or List's Inner field is left
// as a string for the caller to parse again if it needs to descend further.
func ParseTypeName(ref string) TypeName {
	if inner, ok := strings.CutSuffix(ref, "!"); ok {
		return TypeName{Kind: KindNonNull, Inner: inner}
	}
	if inner, ok := stripBrackets(ref); ok {
		return TypeName{Kind: KindList, Inner: inner}
	}
	return TypeName{Kind: KindNamed, Name: ref}
}

func stripBrackets(ref string) (string, bool) {
	if strings.HasPrefix(ref, "[") && strings.HasSuffix(ref, "]") {
		return ref[1 : len(ref)-1], true
	}
	return "", false
}

// String prints the reference exactly as ParseTypeName would have consumed
// it; Parse then String round-trips.
func (t TypeName) String() string {
	switch t.Kind {
	case KindNonNull:
		return t.Inner + "!"
	case KindList:
		return "[" + t.Inner + "]"
	default:
		return t.Name
	}
}

// ConcreteTypeName recurses through modifiers to the innermost Named name.
func ConcreteTypeName(ref string) string {
	t := ParseTypeName(ref)
	if t.Kind == KindNamed {
		return t.Name
	}
	return ConcreteTypeName(t.Inner)
}

// IsNonNull reports whether ref parses as a NonNull reference at its
// outermost level.
func IsNonNull(ref string) bool {
	return ParseTypeName(ref).Kind == KindNonNull
}

// UnwrapNonNull strips exactly one outer NonNull modifier, if present.
func UnwrapNonNull(ref string) string {
	t := ParseTypeName(ref)
	if t.Kind == KindNonNull {
		return t.Inner
	}
	return ref
}

// IsSubtype implements the structural subtype relation super ⊒ sub from
// 
//
//	Named(a) ⊒ Named(b)    iff a = b
//	NonNull(a) ⊒ NonNull(b) iff a ⊒ b
//	Named(a) ⊒ NonNull(b)  iff Named(a) ⊒ b
//	List(a) ⊒ List(b)      iff a ⊒ b
//
// No other pairing is a subtype relation; List and NonNull never compare
// across modifier kinds. The test is pure string algebra and never touches
// a Registry.
func IsSubtype(super, sub string) bool {
	superT, subT := ParseTypeName(super), ParseTypeName(sub)

	switch {
	case superT.Kind == KindNonNull && subT.Kind == KindNonNull:
		return IsSubtype(superT.Inner, subT.Inner)
	case superT.Kind == KindNamed && subT.Kind == KindNonNull:
		return IsSubtype(superT.Name, subT.Inner)
	case superT.Kind == KindNamed && subT.Kind == KindNamed:
		return superT.Name == subT.Name
	case superT.Kind == KindList && subT.Kind == KindList:
		return IsSubtype(superT.Inner, subT.Inner)
	default:
		return false
	}
}
