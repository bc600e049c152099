package liftgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/typelift/typelift/liftgen/convert"
	"github.com/typelift/typelift/liftgen/csem"
	"github.com/typelift/typelift/liftgen/ir"
	"github.com/typelift/typelift/liftgen/model"
	"github.com/typelift/typelift/liftgen/sink"
)

// NamedDef is a materialized record definition: the symbol name bound to its
// converted body.
type NamedDef struct {
	Name string  `json:"name"`
	Type ir.Type `json:"type"`
}

// VarDef is a converted variable declaration.
type VarDef struct {
	Name string  `json:"name"`
	Type ir.Type `json:"type"`
}

// FuncDef is a converted function declaration.
type FuncDef struct {
	Name string           `json:"name"`
	Type *ir.FunctionType `json:"type"`
}

// LayoutFact is one data-layout table row in the module dump.
type LayoutFact struct {
	Type  string `json:"type"`
	Size  int    `json:"size"`
	Align int    `json:"align"`
}

// IRModule is the artifact of one conversion pass.
type IRModule struct {
	Name string `json:"name"`

	// Types holds record definitions in declaration order.
	Types []NamedDef `json:"types"`

	// Enums lists the enum symbol names declared by the module.
	Enums []string `json:"enums,omitempty"`

	Vars  []VarDef  `json:"vars,omitempty"`
	Funcs []FuncDef `json:"functions,omitempty"`

	// Layout is present when Config.EmitLayout is set.
	Layout []LayoutFact `json:"layout,omitempty"`
}

// Result reports what one pass produced.
type Result struct {
	Module *IRModule

	// Path is the sink-relative path the dump was written to.
	Path string
}

// Generate runs a conversion pass over a module model and writes the IR
// module dump through the given sink. The pass declares every tag name up
// front, defines records in declaration order (marking each defined
// immediately after its field list converts), then converts variable and
// function declarations. This ordering is what upholds the converter's
// declare-before-define contract.
func Generate(ctx context.Context, m *model.Module, cfg *Config, out sink.OutputSink) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	start := time.Now()
	logger := slog.Default()

	cctx := convert.NewContext(cfg.Target.Info())
	tc := convert.New(cctx)

	irMod := &IRModule{Name: m.Name, Types: []NamedDef{}}

	// Declare phase: every tag name becomes visible before any type
	// expression that may point at it is converted.
	for _, rec := range m.Records {
		cctx.DeclareType(rec.Name)
	}
	for _, enum := range m.Enums {
		cctx.DeclareType(enum.Name)
		irMod.Enums = append(irMod.Enums, enum.Name)
	}
	logger.Debug("declared tag names",
		slog.String("module", m.Name),
		slog.Int("records", len(m.Records)),
		slog.Int("enums", len(m.Enums)),
	)

	// Define phase: records in declaration order.
	for _, rec := range m.Records {
		body, err := tc.ConvertType(&csem.Record{Decl: rec}, csem.Quals{})
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.Name, err)
		}
		cctx.DefineType(rec.Name)
		irMod.Types = append(irMod.Types, NamedDef{Name: rec.Name, Type: body})
	}

	for _, v := range m.Vars {
		converted, err := tc.Convert(v.Type)
		if err != nil {
			return nil, fmt.Errorf("var %s: %w", v.Name, err)
		}
		irMod.Vars = append(irMod.Vars, VarDef{Name: v.Name, Type: converted})
	}

	for _, fn := range m.Funcs {
		converted, err := tc.ConvertFunction(fn.Type)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Name, err)
		}
		irMod.Funcs = append(irMod.Funcs, FuncDef{Name: fn.Name, Type: converted})
	}

	if cfg.EmitLayout {
		for _, entry := range cctx.Layout.Entries() {
			irMod.Layout = append(irMod.Layout, LayoutFact{
				Type:  entry.Type.String(),
				Size:  entry.Size,
				Align: entry.Align,
			})
		}
	}

	content, err := json.MarshalIndent(irMod, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode module dump: %w", err)
	}
	content = append(content, '\n')

	path := m.Name + ".hl.json"
	if err := out.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write module dump: %w", err)
	}

	logger.Info("module converted",
		slog.String("module", m.Name),
		slog.Int("types", len(irMod.Types)),
		slog.Int("vars", len(irMod.Vars)),
		slog.Int("functions", len(irMod.Funcs)),
		slog.Duration("duration", time.Since(start)),
	)

	return &Result{Module: irMod, Path: path}, nil
}

// GenerateFile runs a conversion pass over a module model file and writes the
// dump into Config.OutDir.
func GenerateFile(ctx context.Context, path string, cfg *Config) (*Result, error) {
	m, err := model.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg = applyConfigDefaults(cfg)
	return Generate(ctx, m, cfg, sink.NewFilesystemSink(cfg.OutDir))
}
