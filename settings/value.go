package settings

import "github.com/soundcore-go/soundcore-core/errorkinds"

// ValueKind tags which field of a Value is populated.
type ValueKind uint8

// The Value variants: Bool, I32, String, EnumVariant(name),
// OptionalString, StringVec, I16Vec, U16Vec, OptionalU16.
const (
	KindBool ValueKind = iota
	KindI32
	KindString
	KindEnumVariant
	KindOptionalString
	KindStringVec
	KindI16Vec
	KindU16Vec
	KindOptionalU16
)

// Value is the wire between the UI and a SettingHandler: a tagged union
// over the carrier types a Setting can accept.
type Value struct {
	Kind ValueKind

	Bool           bool
	I32            int32
	Str            string
	OptionalString *string
	StringVec      []string
	I16Vec         []int16
	U16Vec         []uint16
	OptionalU16    *uint16
}

// BoolValue constructs a Value holding a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// I32Value constructs a Value holding an int32.
func I32Value(v int32) Value { return Value{Kind: KindI32, I32: v} }

// StringValue constructs a Value holding a plain string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// EnumValue constructs a Value holding an enum variant name.
func EnumValue(name string) Value { return Value{Kind: KindEnumVariant, Str: name} }

// OptionalStringValue constructs a Value holding an optional string.
func OptionalStringValue(s *string) Value { return Value{Kind: KindOptionalString, OptionalString: s} }

// StringVecValue constructs a Value holding a list of strings.
func StringVecValue(v []string) Value { return Value{Kind: KindStringVec, StringVec: v} }

// I16VecValue constructs a Value holding a list of int16s.
func I16VecValue(v []int16) Value { return Value{Kind: KindI16Vec, I16Vec: v} }

// U16VecValue constructs a Value holding a list of uint16s.
func U16VecValue(v []uint16) Value { return Value{Kind: KindU16Vec, U16Vec: v} }

// OptionalU16Value constructs a Value holding an optional uint16.
func OptionalU16Value(v *uint16) Value { return Value{Kind: KindOptionalU16, OptionalU16: v} }

// AsBool extracts a bool, or a ValueError if the Value isn't a Bool.
func (v Value) AsBool() (bool, error) {
	if v.Kind != KindBool {
		return false, valueErr("expected Bool")
	}
	return v.Bool, nil
}

// AsI32 extracts an int32, or a ValueError if the Value isn't an I32.
func (v Value) AsI32() (int32, error) {
	if v.Kind != KindI32 {
		return 0, valueErr("expected I32")
	}
	return v.I32, nil
}

// AsEnumVariant extracts an enum variant name, or a ValueError if the
// Value isn't an EnumVariant.
func (v Value) AsEnumVariant() (string, error) {
	if v.Kind != KindEnumVariant {
		return "", valueErr("expected EnumVariant")
	}
	return v.Str, nil
}

// AsI16Vec extracts a list of int16s, or a ValueError otherwise.
func (v Value) AsI16Vec() ([]int16, error) {
	if v.Kind != KindI16Vec {
		return nil, valueErr("expected I16Vec")
	}
	return v.I16Vec, nil
}

func valueErr(msg string) error {
	return &errorkinds.ValueError{Message: msg}
}
