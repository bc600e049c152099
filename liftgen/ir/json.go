package ir

import "encoding/json"

// JSON serialization support for IR types.
// All types include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for VoidType.
func (t *VoidType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{
		Kind: "void",
	})
}

// MarshalJSON implements json.Marshaler for BoolType.
func (t *BoolType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string `json:"kind"`
		Const    bool   `json:"const,omitempty"`
		Volatile bool   `json:"volatile,omitempty"`
	}{
		Kind:     "bool",
		Const:    t.Const,
		Volatile: t.Volatile,
	})
}

// MarshalJSON implements json.Marshaler for IntegerType.
func (t *IntegerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind        string `json:"kind"`
		IntegerKind string `json:"integerKind"`
		Unsigned    bool   `json:"unsigned,omitempty"`
		Const       bool   `json:"const,omitempty"`
		Volatile    bool   `json:"volatile,omitempty"`
	}{
		Kind:        "integer",
		IntegerKind: t.IntKind.String(),
		Unsigned:    t.Unsigned,
		Const:       t.Const,
		Volatile:    t.Volatile,
	})
}

// MarshalJSON implements json.Marshaler for FloatingType.
func (t *FloatingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind         string `json:"kind"`
		FloatingKind string `json:"floatingKind"`
		Const        bool   `json:"const,omitempty"`
		Volatile     bool   `json:"volatile,omitempty"`
	}{
		Kind:         "floating",
		FloatingKind: t.FloatKind.String(),
		Const:        t.Const,
		Volatile:     t.Volatile,
	})
}

// MarshalJSON implements json.Marshaler for PointerType.
func (t *PointerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string `json:"kind"`
		Pointee  Type   `json:"pointee"`
		Const    bool   `json:"const,omitempty"`
		Volatile bool   `json:"volatile,omitempty"`
	}{
		Kind:     "pointer",
		Pointee:  t.Pointee,
		Const:    t.Const,
		Volatile: t.Volatile,
	})
}

// MarshalJSON implements json.Marshaler for ConstantArrayType.
func (t *ConstantArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string `json:"kind"`
		Element  Type   `json:"element"`
		Size     uint64 `json:"size"`
		Const    bool   `json:"const,omitempty"`
		Volatile bool   `json:"volatile,omitempty"`
	}{
		Kind:     "array",
		Element:  t.Element,
		Size:     t.Size,
		Const:    t.Const,
		Volatile: t.Volatile,
	})
}

// MarshalJSON implements json.Marshaler for Field.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name string `json:"name"`
		Type Type   `json:"type"`
	}{
		Name: f.Name,
		Type: f.Type,
	})
}

// MarshalJSON implements json.Marshaler for RecordType.
func (t *RecordType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string  `json:"kind"`
		Fields []Field `json:"fields"`
	}{
		Kind:   "record",
		Fields: t.Fields,
	})
}

// MarshalJSON implements json.Marshaler for NamedType.
func (t *NamedType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: "named",
		Name: t.Name,
	})
}

// MarshalJSON implements json.Marshaler for FunctionType.
func (t *FunctionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string `json:"kind"`
		Params []Type `json:"params"`
		Result Type   `json:"result"`
	}{
		Kind:   "function",
		Params: t.Params,
		Result: t.Result,
	})
}
