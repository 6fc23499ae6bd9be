package datamodel

import "strconv"

// Kind discriminates a binding value's type
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// Value is a typed binding value
// Kept small and comparable so dirty-diffing is a couple of field compares
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func String(s string) Value { return Value{kind: KindString, s: s} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind       { return v.kind }
func (v Value) AsString() string { return v.s }
func (v Value) AsInt() int64     { return v.i }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsBool() bool     { return v.b }

// Equal reports whether two values are the same type and payload
func (v Value) Equal(o Value) bool {
	return v == o
}

// Format renders the value for a text-template consumer
func (v Value) Format() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	}
	return ""
}
