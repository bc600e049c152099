package ir

import "testing"

func TestPointerType(t *testing.T) {
	p := Pointer(Integer(Int, false, false, false), true, false)
	if p.Kind() != KindPointer {
		t.Errorf("Pointer.Kind() = %v, want KindPointer", p.Kind())
	}
	if got, want := p.String(), "!hl.ptr<!hl.int, const>"; got != want {
		t.Errorf("Pointer.String() = %q, want %q", got, want)
	}

	plain := Pointer(Void(), false, false)
	if got, want := plain.String(), "!hl.ptr<!hl.void>"; got != want {
		t.Errorf("Pointer.String() = %q, want %q", got, want)
	}
}

func TestConstantArrayType(t *testing.T) {
	a := Array(Floating(Double, false, false), 4, false, false)
	if a.Kind() != KindConstantArray {
		t.Errorf("Array.Kind() = %v, want KindConstantArray", a.Kind())
	}
	if got, want := a.String(), "!hl.array<4 x !hl.double>"; got != want {
		t.Errorf("Array.String() = %q, want %q", got, want)
	}

	q := Array(Integer(Char, false, false, false), 16, true, true)
	if got, want := q.String(), "!hl.array<16 x !hl.char, const, volatile>"; got != want {
		t.Errorf("Array.String() = %q, want %q", got, want)
	}
}

func TestRecordType(t *testing.T) {
	r := Record([]Field{
		{Name: "next", Type: Pointer(Named("S"), false, false)},
		{Name: "value", Type: Integer(Int, false, false, false)},
	})
	if r.Kind() != KindRecord {
		t.Errorf("Record.Kind() = %v, want KindRecord", r.Kind())
	}
	want := "!hl.record<{next : !hl.ptr<!hl.named<@S>>, value : !hl.int}>"
	if got := r.String(); got != want {
		t.Errorf("Record.String() = %q, want %q", got, want)
	}

	empty := Record(nil)
	if got, want := empty.String(), "!hl.record<{}>"; got != want {
		t.Errorf("Record.String() = %q, want %q", got, want)
	}
}

func TestNamedType(t *testing.T) {
	n := Named("Color")
	if n.Kind() != KindNamed {
		t.Errorf("Named.Kind() = %v, want KindNamed", n.Kind())
	}
	if got, want := n.String(), "!hl.named<@Color>"; got != want {
		t.Errorf("Named.String() = %q, want %q", got, want)
	}
}

func TestFunctionType(t *testing.T) {
	fn := Function(
		[]Type{Integer(Int, false, false, false), Pointer(Integer(Char, false, true, false), false, false)},
		Integer(Int, false, false, false),
	)
	if fn.Kind() != KindFunction {
		t.Errorf("Function.Kind() = %v, want KindFunction", fn.Kind())
	}
	want := "(!hl.int, !hl.ptr<!hl.char<const>>) -> !hl.int"
	if got := fn.String(); got != want {
		t.Errorf("Function.String() = %q, want %q", got, want)
	}

	noParams := Function(nil, Void())
	if got, want := noParams.String(), "() -> !hl.void"; got != want {
		t.Errorf("Function.String() = %q, want %q", got, want)
	}
}
