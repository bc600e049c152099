package csem

import (
	"strconv"
	"strings"
)

// Dump renders a source type in C-like syntax for diagnostics. The rendering
// is informational; it is not meant to round-trip through any parser.
func Dump(t Type) string {
	switch ty := t.(type) {
	case *Builtin:
		return ty.Kind.String()
	case *Pointer:
		return DumpQual(ty.Pointee) + " *"
	case *Record:
		if ty.Decl.Name == "" {
			return "struct <anonymous>"
		}
		return "struct " + ty.Decl.Name
	case *Enum:
		if ty.Decl.Name == "" {
			return "enum <anonymous>"
		}
		return "enum " + ty.Decl.Name
	case *ConstantArray:
		return DumpQual(ty.Elem) + " [" + strconv.FormatUint(ty.Len, 10) + "]"
	case *Function:
		var b strings.Builder
		b.WriteString(DumpQual(ty.Return))
		b.WriteString(" (")
		if ty.Proto {
			for i, p := range ty.Params {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(DumpQual(p))
			}
		}
		b.WriteString(")")
		return b.String()
	case *Vector:
		return DumpQual(ty.Elem) + " __vector(" + strconv.FormatUint(ty.Count, 10) + ")"
	case *Typedef:
		return ty.Name
	case *Elaborated:
		return Dump(ty.Named.Type)
	default:
		return "<unknown type>"
	}
}

// DumpQual renders a qualified type occurrence.
func DumpQual(qt QualType) string {
	out := Dump(qt.Type)
	if qt.Quals.Const {
		out = "const " + out
	}
	if qt.Quals.Volatile {
		out = "volatile " + out
	}
	return out
}
