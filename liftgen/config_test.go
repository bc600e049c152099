package liftgen

import (
	"strings"
	"testing"

	"github.com/typelift/typelift/liftgen/csem"
)

func TestApplyConfigDefaults(t *testing.T) {
	cfg := applyConfigDefaults(&Config{})
	if cfg.Target != DefaultTarget() {
		t.Errorf("default target = %+v, want %+v", cfg.Target, DefaultTarget())
	}
	if cfg.OutDir != "." {
		t.Errorf("default OutDir = %q, want %q", cfg.OutDir, ".")
	}

	// An explicit target is left alone.
	custom := &Config{Target: TargetSpec{PointerSize: 4, IntSize: 4, LongSize: 4, LongDoubleSize: 8}}
	if got := applyConfigDefaults(custom); got.Target != custom.Target {
		t.Errorf("explicit target was replaced: %+v", got.Target)
	}
	if custom.OutDir != "" {
		t.Error("applyConfigDefaults mutated its argument")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := applyConfigDefaults(&Config{})
	if err := validateConfig(valid); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	ilp32 := &Config{Target: TargetSpec{PointerSize: 4, IntSize: 4, LongSize: 4, LongDoubleSize: 8}}
	if err := validateConfig(ilp32); err != nil {
		t.Errorf("ILP32 config should validate: %v", err)
	}

	tests := []struct {
		name   string
		target TargetSpec
		field  string
	}{
		{"bad pointer size", TargetSpec{PointerSize: 3, IntSize: 4, LongSize: 8, LongDoubleSize: 16}, "PointerSize"},
		{"bad int size", TargetSpec{PointerSize: 8, IntSize: 3, LongSize: 8, LongDoubleSize: 16}, "IntSize"},
		{"16-bit int", TargetSpec{PointerSize: 8, IntSize: 2, LongSize: 8, LongDoubleSize: 16}, "IntSize"},
		{"bad long size", TargetSpec{PointerSize: 8, IntSize: 4, LongSize: 6, LongDoubleSize: 16}, "LongSize"},
		{"missing long double size", TargetSpec{PointerSize: 8, IntSize: 4, LongSize: 8}, "LongDoubleSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&Config{Target: tt.target})
			if err == nil {
				t.Fatal("validateConfig should fail")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %s", err, tt.field)
			}
		})
	}
}

func TestTargetSpec_ApplyOverrides(t *testing.T) {
	spec := DefaultTarget()
	err := spec.ApplyOverrides(map[string][]string{
		"pointer-size":     {"4"},
		"long-size":        {"4"},
		"long-double-size": {"8"},
		"char-signed":      {"false"},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides failed: %v", err)
	}
	if spec.PointerSize != 4 || spec.LongSize != 4 || spec.LongDoubleSize != 8 {
		t.Errorf("overrides not applied: %+v", spec)
	}
	if spec.CharSigned {
		t.Error("char-signed=false not applied")
	}
	// Untouched keys keep their defaults.
	if spec.IntSize != 4 {
		t.Errorf("IntSize = %d, want untouched default 4", spec.IntSize)
	}

	if err := spec.ApplyOverrides(nil); err != nil {
		t.Errorf("empty overrides should be a no-op: %v", err)
	}

	if err := spec.ApplyOverrides(map[string][]string{"no-such-key": {"1"}}); err == nil {
		t.Error("unknown override key should fail")
	}
	if err := spec.ApplyOverrides(map[string][]string{"pointer-size": {"wat"}}); err == nil {
		t.Error("non-numeric override value should fail")
	}
}

func TestTargetSpec_Info(t *testing.T) {
	spec := TargetSpec{PointerSize: 4, IntSize: 4, LongSize: 4, LongDoubleSize: 8, CharSigned: false}
	info := spec.Info()

	ptr := &csem.Pointer{Pointee: csem.Unqual(&csem.Builtin{Kind: csem.Void})}
	if got, _ := info.SizeOf(ptr); got != 4 {
		t.Errorf("SizeOf(pointer) = %d, want 4", got)
	}
	if got, _ := info.SizeOf(&csem.Builtin{Kind: csem.Long}); got != 4 {
		t.Errorf("SizeOf(long) = %d, want 4", got)
	}
	if got, _ := info.SizeOf(&csem.Builtin{Kind: csem.LongDouble}); got != 8 {
		t.Errorf("SizeOf(long double) = %d, want 8", got)
	}
	if info.CharSigned {
		t.Error("CharSigned not carried into target info")
	}
}
