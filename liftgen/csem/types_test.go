package csem

import "testing"

func TestBuiltin_Predicates(t *testing.T) {
	tests := []struct {
		kind                                       BuiltinKind
		isVoid, isBool, isInt, isFloat, isUnsigned bool
	}{
		{Void, true, false, false, false, false},
		{Bool, false, true, false, false, false},
		{CharS, false, false, true, false, false},
		{CharU, false, false, true, false, true},
		{SChar, false, false, true, false, false},
		{UChar, false, false, true, false, true},
		{Int, false, false, true, false, false},
		{UInt, false, false, true, false, true},
		{ULongLong, false, false, true, false, true},
		{Int128, false, false, true, false, false},
		{UInt128, false, false, true, false, true},
		{Half, false, false, false, true, false},
		{Float16, false, false, false, true, false},
		{BFloat16, false, false, false, true, false},
		{Double, false, false, false, true, false},
		{Float128, false, false, false, true, false},
		{Complex, false, false, false, false, false},
	}
	for _, tt := range tests {
		b := &Builtin{Kind: tt.kind}
		if got := b.IsVoid(); got != tt.isVoid {
			t.Errorf("%s: IsVoid() = %v, want %v", tt.kind, got, tt.isVoid)
		}
		if got := b.IsBool(); got != tt.isBool {
			t.Errorf("%s: IsBool() = %v, want %v", tt.kind, got, tt.isBool)
		}
		if got := b.IsInteger(); got != tt.isInt {
			t.Errorf("%s: IsInteger() = %v, want %v", tt.kind, got, tt.isInt)
		}
		if got := b.IsFloating(); got != tt.isFloat {
			t.Errorf("%s: IsFloating() = %v, want %v", tt.kind, got, tt.isFloat)
		}
		if got := b.IsUnsigned(); got != tt.isUnsigned {
			t.Errorf("%s: IsUnsigned() = %v, want %v", tt.kind, got, tt.isUnsigned)
		}
	}
}

func TestCanonical_StripsSugar(t *testing.T) {
	underlying := &Builtin{Kind: ULong}
	td := &Typedef{Name: "size_t", Underlying: Unqual(underlying)}

	if got := Canonical(td); got != Type(underlying) {
		t.Errorf("Canonical(typedef) = %v, want underlying builtin", got)
	}

	// Nested sugar: typedef of typedef of elaborated record.
	decl := &RecordDecl{Name: "S"}
	rec := &Record{Decl: decl}
	elab := &Elaborated{Named: Unqual(rec)}
	inner := &Typedef{Name: "s_t", Underlying: Unqual(elab)}
	outer := &Typedef{Name: "s2_t", Underlying: Unqual(inner)}

	if got := Canonical(outer); got != Type(rec) {
		t.Errorf("Canonical(nested sugar) = %v, want record", got)
	}

	// Already canonical types are returned unchanged.
	if got := Canonical(rec); got != Type(rec) {
		t.Errorf("Canonical(record) = %v, want same record", got)
	}
}

func TestCanonical_DiscardsSugarPathQuals(t *testing.T) {
	// A typedef whose underlying occurrence is const-qualified: desugaring
	// reaches the bare type, and the const on the path is not propagated.
	underlying := QualType{Type: &Builtin{Kind: Int}, Quals: Quals{Const: true}}
	td := &Typedef{Name: "c_int", Underlying: underlying}

	got := Canonical(td)
	if b, ok := got.(*Builtin); !ok || b.Kind != Int {
		t.Fatalf("Canonical(typedef) = %v, want int builtin", got)
	}
}

func TestTagName(t *testing.T) {
	rec := &Record{Decl: &RecordDecl{Name: "S"}}
	if name, ok := TagName(rec); !ok || name != "S" {
		t.Errorf("TagName(record) = %q, %v", name, ok)
	}

	enum := &Enum{Decl: &EnumDecl{Name: "E"}}
	if name, ok := TagName(enum); !ok || name != "E" {
		t.Errorf("TagName(enum) = %q, %v", name, ok)
	}

	if _, ok := TagName(&Builtin{Kind: Int}); ok {
		t.Error("TagName(builtin) should not be a tag")
	}
}

func TestDump(t *testing.T) {
	decl := &RecordDecl{Name: "S"}
	tests := []struct {
		ty   Type
		want string
	}{
		{&Builtin{Kind: Int}, "int"},
		{&Builtin{Kind: ULong}, "unsigned long"},
		{&Record{Decl: decl}, "struct S"},
		{&Record{Decl: &RecordDecl{}}, "struct <anonymous>"},
		{&Enum{Decl: &EnumDecl{Name: "E"}}, "enum E"},
		{&Pointer{Pointee: Unqual(&Builtin{Kind: CharS})}, "char *"},
		{&ConstantArray{Elem: Unqual(&Builtin{Kind: Double}), Len: 4}, "double [4]"},
		{&Typedef{Name: "size_t", Underlying: Unqual(&Builtin{Kind: ULong})}, "size_t"},
		{&Elaborated{Named: Unqual(&Record{Decl: decl})}, "struct S"},
		{&Vector{Elem: Unqual(&Builtin{Kind: Float}), Count: 4}, "float __vector(4)"},
	}
	for _, tt := range tests {
		if got := Dump(tt.ty); got != tt.want {
			t.Errorf("Dump() = %q, want %q", got, tt.want)
		}
	}
}

func TestDumpQual(t *testing.T) {
	qt := QualType{Type: &Builtin{Kind: Int}, Quals: Quals{Const: true}}
	if got, want := DumpQual(qt), "const int"; got != want {
		t.Errorf("DumpQual() = %q, want %q", got, want)
	}

	fn := &Function{
		Params: []QualType{Unqual(&Builtin{Kind: Int})},
		Return: Unqual(&Builtin{Kind: Void}),
		Proto:  true,
	}
	if got, want := Dump(fn), "void (int)"; got != want {
		t.Errorf("Dump(function) = %q, want %q", got, want)
	}

	noProto := &Function{Return: Unqual(&Builtin{Kind: Int})}
	if got, want := Dump(noProto), "int ()"; got != want {
		t.Errorf("Dump(unprototyped) = %q, want %q", got, want)
	}
}
