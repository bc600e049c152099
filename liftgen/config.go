// Package liftgen orchestrates the conversion of a module model into a
// high-level IR module dump: it drives declaration order, runs the type
// converter, collects layout facts, and writes the emitted artifact through
// an output sink.
package liftgen

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/typelift/typelift/liftgen/csem"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(false)
}

// TargetSpec describes the data layout of the conversion target. The schema
// tags name the keys accepted by Config override maps; the validate tags are
// enforced before a pass runs.
type TargetSpec struct {
	// PointerSize is the pointer width in bytes.
	PointerSize int `schema:"pointer-size" validate:"required,oneof=4 8"`

	// IntSize is fixed at 4; every supported data model (ILP32, LP64,
	// LLP64) shares it. LongSize is what distinguishes them.
	IntSize  int `schema:"int-size" validate:"required,eq=4"`
	LongSize int `schema:"long-size" validate:"required,oneof=4 8"`

	// LongDoubleSize is the storage size of long double.
	LongDoubleSize int `schema:"long-double-size" validate:"required,oneof=8 16"`

	// CharSigned selects whether plain char behaves as signed char.
	CharSigned bool `schema:"char-signed"`
}

// DefaultTarget returns the LP64 target spec.
func DefaultTarget() TargetSpec {
	return TargetSpec{
		PointerSize:    8,
		IntSize:        4,
		LongSize:       8,
		LongDoubleSize: 16,
		CharSigned:     true,
	}
}

// Info expands the spec into the full per-kind layout table the source
// semantic model answers queries from.
func (s TargetSpec) Info() *csem.TargetInfo {
	info := csem.LP64()
	info.PointerSize = s.PointerSize
	info.IntSize = s.IntSize
	info.LongSize = s.LongSize
	info.LongLongSize = 8
	info.LongDoubleSize = s.LongDoubleSize
	info.CharSigned = s.CharSigned
	return info
}

// ApplyOverrides decodes key=value target overrides (keys per the schema
// tags, e.g. "pointer-size") into the spec.
func (s *TargetSpec) ApplyOverrides(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := schemaDecoder.Decode(s, overrides); err != nil {
		return fmt.Errorf("invalid target override: %w", err)
	}
	return nil
}

// Config holds the configuration for one conversion pass.
type Config struct {
	// OutDir is the directory the module dump is written to.
	// Ignored when Generate is given an explicit sink.
	OutDir string

	// Target is the data layout of the conversion target.
	Target TargetSpec

	// EmitLayout includes the data layout table in the module dump.
	EmitLayout bool
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Target == (TargetSpec{}) {
		result.Target = DefaultTarget()
	}
	if result.OutDir == "" {
		result.OutDir = "."
	}
	return &result
}

// validateConfig checks the target spec against its validate tags.
func validateConfig(cfg *Config) error {
	if err := validate.Struct(cfg.Target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid target spec: field %s failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid target spec: %w", err)
	}
	return nil
}
