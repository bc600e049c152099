// Package ir defines the high-level Intermediate Representation type system.
// IR types are a closed, explicitly-qualified vocabulary that later lowering
// passes consume. Nodes are immutable once constructed; identity is structural
// for everything except NamedType, which is compared by symbol name.
package ir

// TypeKind identifies the category of an IR type.
type TypeKind int

const (
	KindVoid TypeKind = iota
	KindBool
	KindInteger
	KindFloating
	KindPointer
	KindConstantArray
	KindRecord
	KindNamed
	KindFunction
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindFloating:
		return "Floating"
	case KindPointer:
		return "Pointer"
	case KindConstantArray:
		return "ConstantArray"
	case KindRecord:
		return "Record"
	case KindNamed:
		return "Named"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Type is the base interface for all IR types.
type Type interface {
	// Kind returns the type kind for type switching.
	Kind() TypeKind

	// String returns the textual rendering used in dumps and diagnostics.
	String() string

	// Ensure only types in this package can implement Type.
	sealed()
}

type typeBase struct{}

func (typeBase) sealed() {}

// qualString renders the trailing qualifier list of a type, e.g. ", const, volatile".
// Returns the empty string when no qualifiers are set.
func qualString(quals ...string) string {
	out := ""
	for _, q := range quals {
		if q != "" {
			out += ", " + q
		}
	}
	return out
}

func qual(set bool, name string) string {
	if set {
		return name
	}
	return ""
}
