package ir

import (
	"strconv"
	"strings"
)

// PointerType represents a pointer to another IR type.
type PointerType struct {
	typeBase

	// Pointee is the pointed-to type.
	Pointee Type

	Const    bool
	Volatile bool
}

// Kind returns KindPointer.
func (t *PointerType) Kind() TypeKind { return KindPointer }

func (t *PointerType) String() string {
	q := qualString(qual(t.Const, "const"), qual(t.Volatile, "volatile"))
	return "!hl.ptr<" + t.Pointee.String() + q + ">"
}

// Pointer returns a PointerType for the given pointee.
func Pointer(pointee Type, constQ, volatileQ bool) *PointerType {
	return &PointerType{Pointee: pointee, Const: constQ, Volatile: volatileQ}
}

// ConstantArrayType represents an array with a compile-time-constant bound.
// The qualifiers belong to the array occurrence itself; element qualifiers
// live on the element type.
type ConstantArrayType struct {
	typeBase

	// Element is the array element type.
	Element Type

	// Size is the constant element count.
	Size uint64

	Const    bool
	Volatile bool
}

// Kind returns KindConstantArray.
func (t *ConstantArrayType) Kind() TypeKind { return KindConstantArray }

func (t *ConstantArrayType) String() string {
	q := qualString(qual(t.Const, "const"), qual(t.Volatile, "volatile"))
	return "!hl.array<" + strconv.FormatUint(t.Size, 10) + " x " + t.Element.String() + q + ">"
}

// Array returns a ConstantArrayType with the given element type and bound.
func Array(element Type, size uint64, constQ, volatileQ bool) *ConstantArrayType {
	return &ConstantArrayType{Element: element, Size: size, Const: constQ, Volatile: volatileQ}
}

// Field is a single record member: a name paired with its converted type.
type Field struct {
	Name string
	Type Type
}

// RecordType represents a struct body as an ordered field list.
// RecordType never embeds itself transitively; self-reference is always
// expressed through NamedType.
type RecordType struct {
	typeBase

	// Fields are the members in declaration order.
	Fields []Field
}

// Kind returns KindRecord.
func (t *RecordType) Kind() TypeKind { return KindRecord }

func (t *RecordType) String() string {
	var b strings.Builder
	b.WriteString("!hl.record<{")
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(" : ")
		b.WriteString(f.Type.String())
	}
	b.WriteString("}>")
	return b.String()
}

// Record returns a RecordType with the given ordered fields.
func Record(fields []Field) *RecordType {
	return &RecordType{Fields: fields}
}

// NamedType references an aggregate or enum by symbol name instead of
// embedding its structure. It is the only IR mechanism for recursion
// breaking and deferred resolution; it carries no qualifier slots.
type NamedType struct {
	typeBase

	// Name is the referenced symbol name.
	Name string
}

// Kind returns KindNamed.
func (t *NamedType) Kind() TypeKind { return KindNamed }

func (t *NamedType) String() string { return "!hl.named<@" + t.Name + ">" }

// Named returns a NamedType referencing the given symbol.
func Named(name string) *NamedType { return &NamedType{Name: name} }

// FunctionType represents a function signature. Function types are never
// const or volatile qualified in this model.
type FunctionType struct {
	typeBase

	// Params are the parameter types in declaration order.
	// Empty for unprototyped functions.
	Params []Type

	// Result is the return type.
	Result Type
}

// Kind returns KindFunction.
func (t *FunctionType) Kind() TypeKind { return KindFunction }

func (t *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") -> ")
	b.WriteString(t.Result.String())
	return b.String()
}

// Function returns a FunctionType with the given parameters and result.
func Function(params []Type, result Type) *FunctionType {
	return &FunctionType{Params: params, Result: result}
}
