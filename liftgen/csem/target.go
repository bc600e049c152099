package csem

import "fmt"

// TargetInfo answers the data-layout queries a target makes of the source
// type system: byte sizes and alignments per width class, pointer width, and
// whether plain char is signed.
type TargetInfo struct {
	BoolSize     int
	CharSize     int
	ShortSize    int
	IntSize      int
	LongSize     int
	LongLongSize int
	Int128Size   int

	HalfSize       int
	BFloat16Size   int
	FloatSize      int
	DoubleSize     int
	LongDoubleSize int
	Float128Size   int

	PointerSize int

	CharSigned bool
}

// LP64 returns the layout of the common 64-bit Unix data model.
func LP64() *TargetInfo {
	return &TargetInfo{
		BoolSize:       1,
		CharSize:       1,
		ShortSize:      2,
		IntSize:        4,
		LongSize:       8,
		LongLongSize:   8,
		Int128Size:     16,
		HalfSize:       2,
		BFloat16Size:   2,
		FloatSize:      4,
		DoubleSize:     8,
		LongDoubleSize: 16,
		Float128Size:   16,
		PointerSize:    8,
		CharSigned:     true,
	}
}

// SizeOf returns the byte size of a source type on this target.
func (ti *TargetInfo) SizeOf(t Type) (int, error) {
	switch ty := Canonical(t).(type) {
	case *Builtin:
		return ti.builtinSize(ty.Kind)
	case *Pointer:
		return ti.PointerSize, nil
	case *Enum:
		return ti.IntSize, nil
	case *Record:
		size, _, err := ti.recordLayout(ty.Decl)
		return size, err
	case *ConstantArray:
		elem, err := ti.SizeOf(ty.Elem.Type)
		if err != nil {
			return 0, err
		}
		return elem * int(ty.Len), nil
	default:
		return 0, fmt.Errorf("no size for type: %s", Dump(t))
	}
}

// AlignOf returns the byte alignment of a source type on this target.
func (ti *TargetInfo) AlignOf(t Type) (int, error) {
	switch ty := Canonical(t).(type) {
	case *Builtin:
		return ti.builtinSize(ty.Kind)
	case *Pointer:
		return ti.PointerSize, nil
	case *Enum:
		return ti.IntSize, nil
	case *Record:
		_, align, err := ti.recordLayout(ty.Decl)
		return align, err
	case *ConstantArray:
		return ti.AlignOf(ty.Elem.Type)
	default:
		return 0, fmt.Errorf("no alignment for type: %s", Dump(t))
	}
}

// FieldOffsets returns the byte offset of every field of a record in
// declaration order.
func (ti *TargetInfo) FieldOffsets(decl *RecordDecl) ([]int, error) {
	offsets := make([]int, 0, len(decl.Fields))
	offset := 0
	for _, f := range decl.Fields {
		align, err := ti.AlignOf(f.Type.Type)
		if err != nil {
			return nil, err
		}
		size, err := ti.SizeOf(f.Type.Type)
		if err != nil {
			return nil, err
		}
		offset = alignTo(offset, align)
		offsets = append(offsets, offset)
		offset += size
	}
	return offsets, nil
}

// builtinSize returns the byte size of a builtin kind. The same value serves
// as its alignment; every supported scalar is naturally aligned.
func (ti *TargetInfo) builtinSize(k BuiltinKind) (int, error) {
	switch k {
	case Void:
		// sizeof(void) is 1 under the GNU extension the front-end allows.
		return 1, nil
	case Bool:
		return ti.BoolSize, nil
	case CharS, CharU, SChar, UChar:
		return ti.CharSize, nil
	case Short, UShort:
		return ti.ShortSize, nil
	case Int, UInt:
		return ti.IntSize, nil
	case Long, ULong:
		return ti.LongSize, nil
	case LongLong, ULongLong:
		return ti.LongLongSize, nil
	case Int128, UInt128:
		return ti.Int128Size, nil
	case Half, Float16:
		return ti.HalfSize, nil
	case BFloat16:
		return ti.BFloat16Size, nil
	case Float:
		return ti.FloatSize, nil
	case Double:
		return ti.DoubleSize, nil
	case LongDouble:
		return ti.LongDoubleSize, nil
	case Float128:
		return ti.Float128Size, nil
	default:
		return 0, fmt.Errorf("no size for builtin: %s", k)
	}
}

// recordLayout computes the size and alignment of a record: each field is
// placed at the next offset aligned for its type, the record alignment is the
// maximum field alignment, and the size is padded to a multiple of it.
func (ti *TargetInfo) recordLayout(decl *RecordDecl) (size, align int, err error) {
	align = 1
	offset := 0
	for _, f := range decl.Fields {
		fa, err := ti.AlignOf(f.Type.Type)
		if err != nil {
			return 0, 0, err
		}
		fs, err := ti.SizeOf(f.Type.Type)
		if err != nil {
			return 0, 0, err
		}
		offset = alignTo(offset, fa) + fs
		if fa > align {
			align = fa
		}
	}
	return alignTo(offset, align), align, nil
}

func alignTo(n, align int) int {
	return (n + align - 1) / align * align
}
