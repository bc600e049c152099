// Package convert maps source type descriptors onto IR types.
//
// Conversion is a pure recursive function over the source type graph:
// qualifier-aware, memoization-free, and terminated on self-referential
// aggregates by name lookup in the pass context's declared/defined
// registries rather than by structural cycle detection.
package convert

import (
	"github.com/typelift/typelift/liftgen/csem"
	"github.com/typelift/typelift/liftgen/ir"
)

// Converter translates source types into IR types against one pass context.
type Converter struct {
	ctx *Context
}

// New returns a Converter bound to the given pass context.
func New(ctx *Context) *Converter {
	return &Converter{ctx: ctx}
}

// Context returns the pass context the converter reads.
func (tc *Converter) Context() *Context { return tc.ctx }

// Convert converts a qualified type occurrence.
func (tc *Converter) Convert(qt csem.QualType) (ir.Type, error) {
	return tc.ConvertType(qt.Type, qt.Quals)
}

// ConvertType converts a source type under the qualifiers of its occurrence.
// Every produced non-function type is additionally recorded in the pass
// context's layout table before it is returned.
func (tc *Converter) ConvertType(t csem.Type, quals csem.Quals) (ir.Type, error) {
	out, err := tc.doConvert(t, quals)
	if err != nil {
		return nil, err
	}
	if _, isFunc := csem.Canonical(t).(*csem.Function); !isFunc {
		if err := tc.ctx.Layout.TryEmplace(out, t, tc.ctx.Target); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// doConvert reduces the type to its canonical desugared form and dispatches
// on its kind. The caller's qualifiers are threaded through unchanged; the
// sugar path contributes none.
func (tc *Converter) doConvert(t csem.Type, quals csem.Quals) (ir.Type, error) {
	switch ty := csem.Canonical(t).(type) {
	case *csem.Builtin:
		return tc.convertBuiltin(ty, quals)
	case *csem.Pointer:
		return tc.convertPointer(ty, quals)
	case *csem.Record:
		return tc.convertRecord(ty, quals)
	case *csem.Enum:
		return tc.convertEnum(ty, quals)
	case *csem.ConstantArray:
		return tc.convertArray(ty, quals)
	case *csem.Function:
		return tc.ConvertFunction(ty)
	default:
		return nil, newError(CodeUnknownType, "unknown source type", ty)
	}
}

// integerKind classifies a builtin by its integer width class. Signedness is
// not part of the classification; it is read separately.
func integerKind(ty *csem.Builtin) (ir.IntegerKind, error) {
	switch ty.Kind {
	case csem.CharS, csem.CharU, csem.SChar, csem.UChar:
		return ir.Char, nil
	case csem.Short, csem.UShort:
		return ir.Short, nil
	case csem.Int, csem.UInt:
		return ir.Int, nil
	case csem.Long, csem.ULong:
		return ir.Long, nil
	case csem.LongLong, csem.ULongLong:
		return ir.LongLong, nil
	case csem.Int128, csem.UInt128:
		return ir.Int128, nil
	default:
		return 0, newError(CodeUnknownIntegerKind, "unknown integer kind", ty)
	}
}

// floatingKind classifies a builtin by its floating format class.
func floatingKind(ty *csem.Builtin) (ir.FloatingKind, error) {
	switch ty.Kind {
	case csem.Half, csem.Float16:
		return ir.Half, nil
	case csem.BFloat16:
		return ir.BFloat16, nil
	case csem.Float:
		return ir.Float, nil
	case csem.Double:
		return ir.Double, nil
	case csem.LongDouble:
		return ir.LongDouble, nil
	case csem.Float128:
		return ir.Float128, nil
	default:
		return 0, newError(CodeUnknownFloatingKind, "unknown floating kind", ty)
	}
}

func (tc *Converter) convertBuiltin(ty *csem.Builtin, quals csem.Quals) (ir.Type, error) {
	c, v := quals.Const, quals.Volatile

	switch {
	case ty.IsVoid():
		return ir.Void(), nil

	case ty.IsBool():
		return ir.Bool(c, v), nil

	case ty.IsInteger():
		kind, err := integerKind(ty)
		if err != nil {
			return nil, err
		}
		return ir.Integer(kind, ty.IsUnsigned(), c, v), nil

	case ty.IsFloating():
		kind, err := floatingKind(ty)
		if err != nil {
			return nil, err
		}
		return ir.Floating(kind, c, v), nil
	}

	return nil, newError(CodeUnknownBuiltin, "unknown builtin type", ty)
}

func (tc *Converter) convertPointer(ty *csem.Pointer, quals csem.Quals) (ir.Type, error) {
	pointee := ty.Pointee
	if elab, ok := pointee.Type.(*csem.Elaborated); ok {
		pointee = elab.Named
	}

	// Stop recursive type generation via name alias: a pointee whose tag
	// name is already declared becomes a NamedType reference instead of
	// being converted structurally.
	var converted ir.Type
	if name, ok := csem.TagName(pointee.Type); ok && tc.ctx.IsDeclared(name) {
		converted = ir.Named(name)
	} else {
		var err error
		converted, err = tc.Convert(pointee)
		if err != nil {
			return nil, err
		}
	}

	return ir.Pointer(converted, quals.Const, quals.Volatile), nil
}

func (tc *Converter) convertRecord(ty *csem.Record, quals csem.Quals) (ir.Type, error) {
	decl := ty.Decl
	if decl.Name == "" {
		return nil, newError(CodeAnonymousAggregate, "anonymous records not supported", ty)
	}

	if !tc.ctx.IsDefined(decl.Name) {
		if !tc.ctx.IsDeclared(decl.Name) {
			return nil, newError(CodeDeclarationOrder, "record must be declared before it is defined", ty)
		}

		fields := make([]ir.Field, 0, len(decl.Fields))
		for _, field := range decl.Fields {
			fieldType, err := tc.Convert(field.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ir.Field{Name: field.Name, Type: fieldType})
		}
		return ir.Record(fields), nil
	}

	// Already defined: repeat references resolve by name, never by
	// re-expanding the body.
	return ir.Named(decl.Name), nil
}

func (tc *Converter) convertEnum(ty *csem.Enum, quals csem.Quals) (ir.Type, error) {
	if ty.Decl.Name == "" {
		return nil, newError(CodeAnonymousAggregate, "anonymous enums not supported", ty)
	}
	// Enums are never expanded inline; their underlying representation is
	// resolved at the definition site, not here.
	return ir.Named(ty.Decl.Name), nil
}

func (tc *Converter) convertArray(ty *csem.ConstantArray, quals csem.Quals) (ir.Type, error) {
	element, err := tc.Convert(ty.Elem)
	if err != nil {
		return nil, err
	}
	return ir.Array(element, ty.Len, quals.Const, quals.Volatile), nil
}

// ConvertFunction converts a function type. Function types carry no
// qualifiers and no layout entry.
func (tc *Converter) ConvertFunction(ty *csem.Function) (*ir.FunctionType, error) {
	var params []ir.Type
	if ty.Proto {
		params = make([]ir.Type, 0, len(ty.Params))
		for _, param := range ty.Params {
			converted, err := tc.Convert(param)
			if err != nil {
				return nil, err
			}
			params = append(params, converted)
		}
	}

	result, err := tc.Convert(ty.Return)
	if err != nil {
		return nil, err
	}
	return ir.Function(params, result), nil
}
