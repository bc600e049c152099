// Package csem models the C source type system consumed by type conversion.
// It mirrors the front-end view of a translation unit: builtin types with
// their exact source identity, pointers, named records and enums, constant
// arrays, function types, and the sugar wrappers (typedefs, elaborated tag
// references) that conversion strips before dispatch.
//
// Descriptors are observed, never mutated, by consumers. Qualifiers attach to
// a type occurrence through QualType, not to the underlying type.
package csem

// BuiltinKind is the exact source identity of a builtin type.
type BuiltinKind int

const (
	Void BuiltinKind = iota
	Bool

	// CharS and CharU are plain char on targets where it is signed or
	// unsigned respectively; SChar and UChar are the explicitly signed
	// and unsigned spellings. All four share one width class.
	CharS
	CharU
	SChar
	UChar

	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Int128
	UInt128

	// Half and Float16 are two spellings of the same 16-bit format.
	Half
	Float16
	BFloat16
	Float
	Double
	LongDouble
	Float128

	// Complex is carried so unsupported-builtin handling has a concrete
	// inhabitant; conversion rejects it.
	Complex
)

var builtinNames = map[BuiltinKind]string{
	Void:       "void",
	Bool:       "_Bool",
	CharS:      "char",
	CharU:      "char",
	SChar:      "signed char",
	UChar:      "unsigned char",
	Short:      "short",
	UShort:     "unsigned short",
	Int:        "int",
	UInt:       "unsigned int",
	Long:       "long",
	ULong:      "unsigned long",
	LongLong:   "long long",
	ULongLong:  "unsigned long long",
	Int128:     "__int128",
	UInt128:    "unsigned __int128",
	Half:       "__fp16",
	Float16:    "_Float16",
	BFloat16:   "__bf16",
	Float:      "float",
	Double:     "double",
	LongDouble: "long double",
	Float128:   "_Float128",
	Complex:    "_Complex",
}

// String returns the C spelling of the builtin kind.
func (k BuiltinKind) String() string {
	if s, ok := builtinNames[k]; ok {
		return s
	}
	return "<unknown builtin>"
}

// Quals is the qualifier set of a type occurrence.
type Quals struct {
	Const    bool
	Volatile bool
}

// QualType pairs a type with the qualifiers of one occurrence.
type QualType struct {
	Type  Type
	Quals Quals
}

// Unqual returns a QualType with no qualifiers.
func Unqual(t Type) QualType { return QualType{Type: t} }

// Type is the base interface for all source type descriptors.
type Type interface {
	// Ensure only types in this package can implement Type.
	sealed()
}

type typeBase struct{}

func (typeBase) sealed() {}

// Builtin is a builtin type with its exact source identity.
type Builtin struct {
	typeBase
	Kind BuiltinKind
}

// IsVoid reports whether the builtin is void.
func (b *Builtin) IsVoid() bool { return b.Kind == Void }

// IsBool reports whether the builtin is the boolean type.
func (b *Builtin) IsBool() bool { return b.Kind == Bool }

// IsInteger reports whether the builtin is an integer type.
// The boolean type is classified separately.
func (b *Builtin) IsInteger() bool { return b.Kind >= CharS && b.Kind <= UInt128 }

// IsFloating reports whether the builtin is a floating-point type.
func (b *Builtin) IsFloating() bool { return b.Kind >= Half && b.Kind <= Float128 }

// IsUnsigned reports whether the builtin is an unsigned integer type.
func (b *Builtin) IsUnsigned() bool {
	switch b.Kind {
	case CharU, UChar, UShort, UInt, ULong, ULongLong, UInt128:
		return true
	default:
		return false
	}
}

// FieldDecl is one record member in declaration order.
type FieldDecl struct {
	Name string
	Type QualType
}

// RecordDecl is a struct declaration. Name is empty for anonymous records.
type RecordDecl struct {
	Name   string
	Fields []FieldDecl
}

// Record is a reference to a record declaration.
type Record struct {
	typeBase
	Decl *RecordDecl
}

// EnumDecl is an enum declaration. Name is empty for anonymous enums.
type EnumDecl struct {
	Name string
}

// Enum is a reference to an enum declaration.
type Enum struct {
	typeBase
	Decl *EnumDecl
}

// Pointer is a pointer type.
type Pointer struct {
	typeBase
	Pointee QualType
}

// ConstantArray is an array with a compile-time-constant bound.
type ConstantArray struct {
	typeBase
	Elem QualType
	Len  uint64
}

// Function is a function type. Proto distinguishes a full prototype from an
// unprototyped declaration; Params is meaningful only when Proto is set.
type Function struct {
	typeBase
	Params []QualType
	Return QualType
	Proto  bool
}

// Vector is a GCC-style vector type. It is modeled so that unsupported
// top-level kinds have a concrete inhabitant; conversion rejects it.
type Vector struct {
	typeBase
	Elem  QualType
	Count uint64
}

// Typedef is name sugar over an underlying type.
type Typedef struct {
	typeBase
	Name       string
	Underlying QualType
}

// Elaborated wraps a tag type written with an explicit struct or enum
// keyword, e.g. "struct S". It is sugar over the named tag type.
type Elaborated struct {
	typeBase
	Named QualType
}

// Canonical strips typedef and elaboration sugar until it reaches the
// underlying canonical type. Qualifiers found along the sugar path are
// deliberately discarded: they belong to the occurrence, and the occurrence
// already carries its own qualifier set.
func Canonical(t Type) Type {
	for {
		switch s := t.(type) {
		case *Typedef:
			t = s.Underlying.Type
		case *Elaborated:
			t = s.Named.Type
		default:
			return t
		}
	}
}

// TagName returns the declaration name of a record or enum type.
// The second result is false for every other kind.
func TagName(t Type) (string, bool) {
	switch tag := t.(type) {
	case *Record:
		return tag.Decl.Name, true
	case *Enum:
		return tag.Decl.Name, true
	default:
		return "", false
	}
}
