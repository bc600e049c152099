package ir

import (
	"encoding/json"
	"testing"
)

func marshal(t *testing.T, ty Type) string {
	t.Helper()
	data, err := json.Marshal(ty)
	if err != nil {
		t.Fatalf("Marshal(%s) failed: %v", ty, err)
	}
	return string(data)
}

func TestMarshalJSON_Builtins(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{Void(), `{"kind":"void"}`},
		{Bool(true, false), `{"kind":"bool","const":true}`},
		{Integer(Long, true, true, false), `{"kind":"integer","integerKind":"Long","unsigned":true,"const":true}`},
		{Integer(Int, false, false, false), `{"kind":"integer","integerKind":"Int"}`},
		{Floating(Double, false, false), `{"kind":"floating","floatingKind":"Double"}`},
	}
	for _, tt := range tests {
		if got := marshal(t, tt.ty); got != tt.want {
			t.Errorf("Marshal(%s) = %s, want %s", tt.ty, got, tt.want)
		}
	}
}

func TestMarshalJSON_Composite(t *testing.T) {
	ptr := Pointer(Named("S"), false, false)
	if got, want := marshal(t, ptr), `{"kind":"pointer","pointee":{"kind":"named","name":"S"}}`; got != want {
		t.Errorf("Marshal(pointer) = %s, want %s", got, want)
	}

	arr := Array(Floating(Double, false, false), 4, false, false)
	if got, want := marshal(t, arr), `{"kind":"array","element":{"kind":"floating","floatingKind":"Double"},"size":4}`; got != want {
		t.Errorf("Marshal(array) = %s, want %s", got, want)
	}

	rec := Record([]Field{{Name: "x", Type: Integer(Int, false, false, false)}})
	if got, want := marshal(t, rec), `{"kind":"record","fields":[{"name":"x","type":{"kind":"integer","integerKind":"Int"}}]}`; got != want {
		t.Errorf("Marshal(record) = %s, want %s", got, want)
	}

	fn := Function([]Type{Void()}, Void())
	if got, want := marshal(t, fn), `{"kind":"function","params":[{"kind":"void"}],"result":{"kind":"void"}}`; got != want {
		t.Errorf("Marshal(function) = %s, want %s", got, want)
	}
}
