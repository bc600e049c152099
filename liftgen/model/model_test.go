package model

import (
	"strings"
	"testing"

	"github.com/typelift/typelift/liftgen/csem"
)

func TestParse_Module(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "list",
		"records": [
			{"name": "node", "fields": [
				{"name": "next", "type": "struct node *"},
				{"name": "value", "type": "int"}
			]},
			{"name": "list", "fields": [
				{"name": "head", "type": "struct node *"},
				{"name": "len", "type": "size_t"}
			]}
		],
		"enums": [{"name": "color"}],
		"typedefs": [{"name": "size_t", "type": "unsigned long"}],
		"vars": [{"name": "origin", "type": "const struct list"}],
		"functions": [{"name": "push", "type": "void(struct list *, int)"}]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "list" {
		t.Errorf("Name = %q, want %q", m.Name, "list")
	}
	if len(m.Records) != 2 || len(m.Enums) != 1 {
		t.Fatalf("got %d records, %d enums", len(m.Records), len(m.Enums))
	}

	node, ok := m.Record("node")
	if !ok {
		t.Fatal("record node not registered")
	}
	if len(node.Fields) != 2 {
		t.Fatalf("node has %d fields, want 2", len(node.Fields))
	}

	// The self-referential field resolves to the same declaration object.
	ptr := node.Fields[0].Type.Type.(*csem.Pointer)
	elab := ptr.Pointee.Type.(*csem.Elaborated)
	if rec := elab.Named.Type.(*csem.Record); rec.Decl != node {
		t.Error("struct node * does not point back at the node declaration")
	}

	if len(m.Vars) != 1 || !m.Vars[0].Type.Quals.Const {
		t.Errorf("vars = %+v, want one const var", m.Vars)
	}
	if len(m.Funcs) != 1 || len(m.Funcs[0].Type.Params) != 2 {
		t.Errorf("funcs = %+v, want push with 2 params", m.Funcs)
	}
}

func TestParse_ForwardReference(t *testing.T) {
	// A field may reference a record declared later in the file.
	m, err := Parse([]byte(`{
		"records": [
			{"name": "a", "fields": [{"name": "b", "type": "struct b *"}]},
			{"name": "b", "fields": [{"name": "a", "type": "struct a *"}]}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := m.Record("b"); !ok {
		t.Error("record b not registered")
	}
}

func TestParse_DefaultName(t *testing.T) {
	m, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "module" {
		t.Errorf("Name = %q, want default %q", m.Name, "module")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad json", `{`, "decode"},
		{"empty record name", `{"records":[{"name":""}]}`, "empty name"},
		{"duplicate record", `{"records":[{"name":"S"},{"name":"S"}]}`, "duplicate record"},
		{"duplicate enum", `{"enums":[{"name":"E"},{"name":"E"}]}`, "duplicate enum"},
		{"record and enum share a tag", `{"records":[{"name":"T"}],"enums":[{"name":"T"}]}`, "both record and enum"},
		{"duplicate typedef", `{"typedefs":[{"name":"t","type":"int"},{"name":"t","type":"long"}]}`, "duplicate typedef"},
		{"bad field type", `{"records":[{"name":"S","fields":[{"name":"x","type":"wat"}]}]}`, "field x"},
		{"empty field name", `{"records":[{"name":"S","fields":[{"name":"","type":"int"}]}]}`, "empty name"},
		{"bad var type", `{"vars":[{"name":"v","type":"struct nope"}]}`, "var v"},
		{"non-function function", `{"functions":[{"name":"f","type":"int"}]}`, "not a function type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_FunctionThroughTypedef(t *testing.T) {
	// A function declaration may use a typedef that canonicalizes to a
	// function type.
	m, err := Parse([]byte(`{
		"typedefs": [{"name": "handler_t", "type": "void(int)"}],
		"functions": [{"name": "on_signal", "type": "handler_t"}]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fn := m.Funcs[0]
	if !fn.Type.Proto || len(fn.Type.Params) != 1 {
		t.Errorf("on_signal = %+v, want prototyped unary function", fn.Type)
	}
}
