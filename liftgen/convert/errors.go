package convert

import (
	"fmt"

	"github.com/typelift/typelift/liftgen/csem"
)

// ErrorCode is a machine-readable conversion failure code. Every conversion
// failure is fatal to the current pass; there is no recovery or placeholder
// substitution.
type ErrorCode string

const (
	// CodeUnknownType means the source type's top-level kind matches none
	// of the supported dispatch categories.
	CodeUnknownType ErrorCode = "unknown_type"

	// CodeUnknownBuiltin means a builtin passed kind dispatch but is not
	// void, bool, integer, or floating.
	CodeUnknownBuiltin ErrorCode = "unknown_builtin"

	// CodeUnknownIntegerKind and CodeUnknownFloatingKind are
	// exhaustiveness failures in builtin sub-classification.
	CodeUnknownIntegerKind  ErrorCode = "unknown_integer_kind"
	CodeUnknownFloatingKind ErrorCode = "unknown_floating_kind"

	// CodeAnonymousAggregate means an anonymous record or enum reached
	// conversion.
	CodeAnonymousAggregate ErrorCode = "anonymous_aggregate"

	// CodeDeclarationOrder means a record was converted for definition
	// before the caller marked its name declared.
	CodeDeclarationOrder ErrorCode = "declaration_order"
)

// Error is a conversion failure. TypeDump carries the rendering of the
// offending source type.
type Error struct {
	Code     ErrorCode
	Message  string
	TypeDump string
}

func (e *Error) Error() string {
	if e.TypeDump == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.TypeDump)
}

func newError(code ErrorCode, message string, ty csem.Type) *Error {
	return &Error{Code: code, Message: message, TypeDump: csem.Dump(ty)}
}
