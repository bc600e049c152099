// Package model loads module model files: JSON descriptions of a translation
// unit's records, enums, typedefs, variables, and functions, with type
// expressions written in a compact C-like form ("const unsigned long",
// "struct S*", "double[4]", "int(int, const char*)").
//
// The loader replaces the front-end AST walk as the source of declarations;
// it preserves declaration order so the conversion pass can uphold the
// declare-before-define contract.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/typelift/typelift/liftgen/csem"
)

// VarDecl is a variable declaration: a name with a qualified type occurrence.
type VarDecl struct {
	Name string
	Type csem.QualType
}

// FuncDecl is a function declaration.
type FuncDecl struct {
	Name string
	Type *csem.Function
}

// Module is the in-memory form of a module model, with all type expressions
// resolved against the module's own declarations.
type Module struct {
	Name string

	// Records and Enums are in declaration order.
	Records []*csem.RecordDecl
	Enums   []*csem.EnumDecl

	Vars  []VarDecl
	Funcs []FuncDecl

	records  map[string]*csem.RecordDecl
	enums    map[string]*csem.EnumDecl
	typedefs map[string]csem.QualType
}

type fileJSON struct {
	Name     string        `json:"name"`
	Records  []recordJSON  `json:"records"`
	Enums    []enumJSON    `json:"enums"`
	Typedefs []typedefJSON `json:"typedefs"`
	Vars     []declJSON    `json:"vars"`
	Funcs    []declJSON    `json:"functions"`
}

type recordJSON struct {
	Name   string     `json:"name"`
	Fields []declJSON `json:"fields"`
}

type enumJSON struct {
	Name string `json:"name"`
}

type typedefJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type declJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// LoadFile reads and parses a module model file.
func LoadFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses module model JSON.
func Parse(data []byte) (*Module, error) {
	var file fileJSON
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode model JSON: %w", err)
	}

	m := &Module{
		Name:     file.Name,
		records:  make(map[string]*csem.RecordDecl),
		enums:    make(map[string]*csem.EnumDecl),
		typedefs: make(map[string]csem.QualType),
	}
	if m.Name == "" {
		m.Name = "module"
	}

	// Tag names are registered before any type expression is parsed so
	// fields and typedefs may forward-reference any record or enum.
	for _, r := range file.Records {
		if r.Name == "" {
			return nil, fmt.Errorf("record with empty name")
		}
		if _, dup := m.records[r.Name]; dup {
			return nil, fmt.Errorf("duplicate record name: %s", r.Name)
		}
		decl := &csem.RecordDecl{Name: r.Name}
		m.records[r.Name] = decl
		m.Records = append(m.Records, decl)
	}
	for _, e := range file.Enums {
		if e.Name == "" {
			return nil, fmt.Errorf("enum with empty name")
		}
		if _, dup := m.enums[e.Name]; dup {
			return nil, fmt.Errorf("duplicate enum name: %s", e.Name)
		}
		// Records and enums share one tag namespace.
		if _, dup := m.records[e.Name]; dup {
			return nil, fmt.Errorf("tag name %s declared as both record and enum", e.Name)
		}
		decl := &csem.EnumDecl{Name: e.Name}
		m.enums[e.Name] = decl
		m.Enums = append(m.Enums, decl)
	}

	for _, td := range file.Typedefs {
		if td.Name == "" {
			return nil, fmt.Errorf("typedef with empty name")
		}
		if _, dup := m.typedefs[td.Name]; dup {
			return nil, fmt.Errorf("duplicate typedef name: %s", td.Name)
		}
		qt, err := m.ParseType(td.Type)
		if err != nil {
			return nil, fmt.Errorf("typedef %s: %w", td.Name, err)
		}
		m.typedefs[td.Name] = qt
	}

	for i, r := range file.Records {
		decl := m.Records[i]
		for _, f := range r.Fields {
			if f.Name == "" {
				return nil, fmt.Errorf("record %s: field with empty name", r.Name)
			}
			qt, err := m.ParseType(f.Type)
			if err != nil {
				return nil, fmt.Errorf("record %s, field %s: %w", r.Name, f.Name, err)
			}
			decl.Fields = append(decl.Fields, csem.FieldDecl{Name: f.Name, Type: qt})
		}
	}

	for _, v := range file.Vars {
		if v.Name == "" {
			return nil, fmt.Errorf("var with empty name")
		}
		qt, err := m.ParseType(v.Type)
		if err != nil {
			return nil, fmt.Errorf("var %s: %w", v.Name, err)
		}
		m.Vars = append(m.Vars, VarDecl{Name: v.Name, Type: qt})
	}

	for _, f := range file.Funcs {
		if f.Name == "" {
			return nil, fmt.Errorf("function with empty name")
		}
		qt, err := m.ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", f.Name, err)
		}
		fn, ok := csem.Canonical(qt.Type).(*csem.Function)
		if !ok {
			return nil, fmt.Errorf("function %s: type %q is not a function type", f.Name, f.Type)
		}
		m.Funcs = append(m.Funcs, FuncDecl{Name: f.Name, Type: fn})
	}

	return m, nil
}

// Record looks up a record declaration by name.
func (m *Module) Record(name string) (*csem.RecordDecl, bool) {
	d, ok := m.records[name]
	return d, ok
}

// Enum looks up an enum declaration by name.
func (m *Module) Enum(name string) (*csem.EnumDecl, bool) {
	d, ok := m.enums[name]
	return d, ok
}

// Typedef looks up a typedef's underlying type by name.
func (m *Module) Typedef(name string) (csem.QualType, bool) {
	qt, ok := m.typedefs[name]
	return qt, ok
}
