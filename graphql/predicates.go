package graphql

// IsComposite reports whether t is Object, Interface, or Union.
func IsComposite(t MetaType) bool {
	switch t.(type) {
	case *MetaObject, *MetaInterface, *MetaUnion:
		return true
	default:
		return false
	}
}

// IsAbstract reports whether t is Interface or Union.
func IsAbstract(t MetaType) bool {
	switch t.(type) {
	case *MetaInterface, *MetaUnion:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether t is Enum or Scalar.
func IsLeaf(t MetaType) bool {
	switch t.(type) {
	case *MetaEnum, *MetaScalar:
		return true
	default:
		return false
	}
}

// IsInputValid reports whether t may appear as an input value's type: Enum,
// Scalar, or InputObject.
func IsInputValid(t MetaType) bool {
	switch t.(type) {
	case *MetaEnum, *MetaScalar, *MetaInputObject:
		return true
	default:
		return false
	}
}

// PossibleTypes returns the possible-type set for Interface/Union, or nil
// for any other variant.
func PossibleTypes(t MetaType) map[string]struct{} {
	switch v := t.(type) {
	case *MetaInterface:
		return v.PossibleTypes
	case *MetaUnion:
		return v.PossibleTypes
	default:
		return nil
	}
}

// IsPossibleType reports whether name is a possible concrete type of t: for
// Interface/Union, membership in PossibleTypes; for Object, equality with
// its own name; otherwise false.
func IsPossibleType(t MetaType, name string) bool {
	switch v := t.(type) {
	case *MetaInterface:
		_, ok := v.PossibleTypes[name]
		return ok
	case *MetaUnion:
		_, ok := v.PossibleTypes[name]
		return ok
	case *MetaObject:
		return v.Name == name
	default:
		return false
	}
}

// TypeOverlap decides whether two types can ever apply to the same runtime
// value, as used for fragment applicability:
//
//   - identical descriptors: true
//   - abstract × abstract: any possible type of t is a possible type of u
//   - abstract × concrete: t.IsPossibleType(u.name)
//   - concrete × abstract: symmetric
//   - concrete × concrete: false
//
// TypeOverlap is symmetric: TypeOverlap(t, u) == TypeOverlap(u, t).
func TypeOverlap(t, u MetaType) bool {
	if t == u {
		return true
	}

	tAbstract, uAbstract := IsAbstract(t), IsAbstract(u)
	switch {
	case tAbstract && uAbstract:
		for name := range PossibleTypes(t) {
			if IsPossibleType(u, name) {
				return true
			}
		}
		return false
	case tAbstract && !uAbstract:
		return IsPossibleType(t, u.TypeName())
	case !tAbstract && uAbstract:
		return IsPossibleType(u, t.TypeName())
	default:
		return false
	}
}
