package cookiestore

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindStructured
)

// Value is a closed variant over everything the store can hold: an absent
// value, a boolean, a number, a plain string, or a JSON-serializable
// structure kept in its serialized text form.
//
// Values are immutable and comparable; two Values are equal when they hold
// the same variant with the same content.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string // string text, or serialized JSON for KindStructured
}

// Null returns the absent value. It encodes to an empty segment: an entry
// written with a Null value carries the bare key only.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// Number wraps a number.
func Number(v float64) Value { return Value{kind: KindNumber, numVal: v} }

// Int wraps an integer as a Number.
func Int(v int) Value { return Number(float64(v)) }

// String wraps literal text. Text that is not valid JSON survives a write and
// read-back unchanged.
func String(v string) Value { return Value{kind: KindString, strVal: v} }

// Structured serializes v to compact JSON and wraps the result. Primitive
// inputs collapse to their primitive variant. A value that cannot be
// serialized (a channel, a function, a cyclic structure) degrades to Null
// rather than failing; the entry is then written with no value segment.
func Structured(v any) Value {
	raw, err := json.Marshal(v)
	if err != nil {
		return Null()
	}
	return decodeValue(string(raw))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean content, or false for any other variant.
func (v Value) Bool() bool { return v.kind == KindBool && v.boolVal }

// Number returns the numeric content, or 0 for any other variant.
func (v Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.numVal
}

// Text returns the string content, or "" for any other variant.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.strVal
}

// Decode unmarshals the value into dest. It is mainly useful for the
// Structured variant; primitive variants decode into matching Go types.
func (v Value) Decode(dest any) error {
	switch v.kind {
	case KindString:
		raw, err := json.Marshal(v.strVal)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	case KindNull:
		return json.Unmarshal([]byte("null"), dest)
	default:
		return json.Unmarshal([]byte(v.Encode()), dest)
	}
}

// Encode returns the cookie-safe text representation written to the jar.
// Null encodes to "", which the formatter turns into a value-less entry.
func (v Value) Encode() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'f', -1, 64)
	case KindString, KindStructured:
		return v.strVal
	default:
		return ""
	}
}

// isTruthy implements the truthiness test Has is defined in terms of.
func (v Value) isTruthy() bool {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal != 0
	case KindString:
		return v.strVal != ""
	case KindStructured:
		return true
	default:
		return false
	}
}

// native returns the decoded Go representation, used for logging.
func (v Value) native() any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal
	case KindString:
		return v.strVal
	case KindStructured:
		var out any
		if err := json.Unmarshal([]byte(v.strVal), &out); err != nil {
			return v.strVal
		}
		return out
	default:
		return nil
	}
}

// decodeValue reverses Encode. It attempts a JSON parse first, which recovers
// the booleans, numbers, and structures Encode produced; anything that does
// not parse is literal text and is returned as a String unchanged. Every
// read-oriented operation shares this single implementation.
func decodeValue(raw string) Value {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return String(raw)
	}
	switch p := parsed.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(p)
	case float64:
		return Number(p)
	case string:
		return String(p)
	default:
		return Value{kind: KindStructured, strVal: raw}
	}
}
