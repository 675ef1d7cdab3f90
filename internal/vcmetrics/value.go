// Package vcmetrics parses DRAGEN variant-calling QC metrics files.
package vcmetrics

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the variant held by a Value. KindText is the zero
// kind, so the zero Value is empty text and never numeric; a lookup of
// an absent metric therefore fails numeric checks instead of reading
// as integer zero.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindNA
)

// NASentinel is the literal DRAGEN emits for metrics it could not compute.
const NASentinel = "NA"

// Value is one metric value: an integer, a float, free text, or the
// not-applicable sentinel. The original text of non-numeric values is
// preserved verbatim.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// NewInt returns an integer Value.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewFloat returns a floating-point Value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewText returns a free-text Value.
func NewText(s string) Value { return Value{kind: KindText, s: s} }

// NewNA returns a not-applicable Value preserving the original text.
func NewNA(s string) Value { return Value{kind: KindNA, s: s} }

// ParseValue coerces a raw field into a Value. Integer parse is
// attempted before float so that a bare integer keeps exact display
// formatting downstream; anything non-numeric survives as text, with
// the NA sentinel tagged separately.
func ParseValue(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NewFloat(f)
	}
	if s == NASentinel {
		return NewNA(s)
	}
	return NewText(s)
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the integer payload. Only meaningful for KindInt.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the numeric payload as a float for either numeric kind.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// IsNumeric reports whether the value is an integer or a float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// IsZero reports whether the value is numeric and exactly zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindInt:
		return v.i == 0
	case KindFloat:
		return v.f == 0
	}
	return false
}

// String renders the value for display: integers without a decimal
// point, floats with minimal digits, text and NA verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// MarshalJSON encodes numeric values as JSON numbers and everything
// else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.s)
	}
}

// Add returns a + b. The second result is false when either operand is
// non-numeric. Integer operands yield an integer sum.
func Add(a, b Value) (Value, bool) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, false
	}
	if a.kind == KindInt && b.kind == KindInt {
		return NewInt(a.i + b.i), true
	}
	return NewFloat(a.Float64() + b.Float64()), true
}

// Sub returns a - b under the same rules as Add.
func Sub(a, b Value) (Value, bool) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, false
	}
	if a.kind == KindInt && b.kind == KindInt {
		return NewInt(a.i - b.i), true
	}
	return NewFloat(a.Float64() - b.Float64()), true
}

// Ratio returns a / b as a float. The second result is false when
// either operand is non-numeric or the denominator is zero.
func Ratio(a, b Value) (Value, bool) {
	if !a.IsNumeric() || !b.IsNumeric() || b.IsZero() {
		return Value{}, false
	}
	return NewFloat(a.Float64() / b.Float64()), true
}
