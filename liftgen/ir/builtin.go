package ir

// IntegerKind classifies an integer type by its canonical width class.
// Signedness is tracked separately on IntegerType; it is never folded
// into the kind.
type IntegerKind int

const (
	Char IntegerKind = iota
	Short
	Int
	Long
	LongLong
	Int128
)

// String returns the string representation of the integer kind.
func (k IntegerKind) String() string {
	switch k {
	case Char:
		return "Char"
	case Short:
		return "Short"
	case Int:
		return "Int"
	case Long:
		return "Long"
	case LongLong:
		return "LongLong"
	case Int128:
		return "Int128"
	default:
		return "Unknown"
	}
}

func (k IntegerKind) spelling() string {
	switch k {
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case LongLong:
		return "longlong"
	case Int128:
		return "int128"
	default:
		return "unknown"
	}
}

// FloatingKind classifies a floating-point type by its canonical format class.
// Platform synonyms of the same format (e.g. half and _Float16) share a kind.
type FloatingKind int

const (
	Half FloatingKind = iota
	BFloat16
	Float
	Double
	LongDouble
	Float128
)

// String returns the string representation of the floating kind.
func (k FloatingKind) String() string {
	switch k {
	case Half:
		return "Half"
	case BFloat16:
		return "BFloat16"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case LongDouble:
		return "LongDouble"
	case Float128:
		return "Float128"
	default:
		return "Unknown"
	}
}

func (k FloatingKind) spelling() string {
	switch k {
	case Half:
		return "half"
	case BFloat16:
		return "bfloat16"
	case Float:
		return "float"
	case Double:
		return "double"
	case LongDouble:
		return "longdouble"
	case Float128:
		return "float128"
	default:
		return "unknown"
	}
}

// VoidType represents the void type. Qualifiers do not apply.
type VoidType struct {
	typeBase
}

// Kind returns KindVoid.
func (t *VoidType) Kind() TypeKind { return KindVoid }

func (t *VoidType) String() string { return "!hl.void" }

// Void returns the void type.
func Void() *VoidType { return &VoidType{} }

// BoolType represents the boolean type.
type BoolType struct {
	typeBase
	Const    bool
	Volatile bool
}

// Kind returns KindBool.
func (t *BoolType) Kind() TypeKind { return KindBool }

func (t *BoolType) String() string {
	q := qualString(qual(t.Const, "const"), qual(t.Volatile, "volatile"))
	if q == "" {
		return "!hl.bool"
	}
	return "!hl.bool<" + q[2:] + ">"
}

// Bool returns a BoolType with the given qualifiers.
func Bool(constQ, volatileQ bool) *BoolType {
	return &BoolType{Const: constQ, Volatile: volatileQ}
}

// IntegerType represents one of the six fixed-width-class integer types.
type IntegerType struct {
	typeBase
	IntKind  IntegerKind
	Unsigned bool
	Const    bool
	Volatile bool
}

// Kind returns KindInteger.
func (t *IntegerType) Kind() TypeKind { return KindInteger }

func (t *IntegerType) String() string {
	q := qualString(qual(t.Unsigned, "unsigned"), qual(t.Const, "const"), qual(t.Volatile, "volatile"))
	if q == "" {
		return "!hl." + t.IntKind.spelling()
	}
	return "!hl." + t.IntKind.spelling() + "<" + q[2:] + ">"
}

// Integer returns an IntegerType of the given width class.
func Integer(kind IntegerKind, unsigned, constQ, volatileQ bool) *IntegerType {
	return &IntegerType{IntKind: kind, Unsigned: unsigned, Const: constQ, Volatile: volatileQ}
}

// FloatingType represents one of the six floating-point format classes.
type FloatingType struct {
	typeBase
	FloatKind FloatingKind
	Const     bool
	Volatile  bool
}

// Kind returns KindFloating.
func (t *FloatingType) Kind() TypeKind { return KindFloating }

func (t *FloatingType) String() string {
	q := qualString(qual(t.Const, "const"), qual(t.Volatile, "volatile"))
	if q == "" {
		return "!hl." + t.FloatKind.spelling()
	}
	return "!hl." + t.FloatKind.spelling() + "<" + q[2:] + ">"
}

// Floating returns a FloatingType of the given format class.
func Floating(kind FloatingKind, constQ, volatileQ bool) *FloatingType {
	return &FloatingType{FloatKind: kind, Const: constQ, Volatile: volatileQ}
}
