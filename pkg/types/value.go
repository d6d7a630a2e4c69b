package types

import (
	"strconv"
)

// Kind is the scalar type tag of a cell value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a single table cell. The zero Value is the missing marker.
// Values are comparable, so they can be used directly as map keys.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func Missing() Value {
	return Value{}
}

func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

func NewInt(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func NewBool(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// String renders the value for messages and CLI output.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return "<missing>"
	}
}
