package vcmetrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		str   string
	}{
		{"integer", "138978", KindInt, "138978"},
		{"negative integer", "-42", KindInt, "-42"},
		{"zero", "0", KindInt, "0"},
		{"float", "81.75", KindFloat, "81.75"},
		{"exponent float", "1e3", KindFloat, "1000"},
		{"na sentinel", "NA", KindNA, "NA"},
		{"free text", "Child Sample", KindText, "Child Sample"},
		{"empty", "", KindText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseValue(tt.input)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.str, v.String())
		})
	}
}

// A bare integer must be stored as an integer, not a float, so that it
// displays without a decimal point.
func TestParseValue_IntegerBeforeFloat(t *testing.T) {
	v := ParseValue("170013")
	require.Equal(t, KindInt, v.Kind())
	assert.Equal(t, int64(170013), v.Int64())
}

func TestZeroValueIsNotNumeric(t *testing.T) {
	var v Value
	assert.False(t, v.IsNumeric())
	assert.Equal(t, KindText, v.Kind())
}

func TestAdd(t *testing.T) {
	sum, ok := Add(NewInt(3), NewInt(4))
	require.True(t, ok)
	assert.Equal(t, KindInt, sum.Kind())
	assert.Equal(t, int64(7), sum.Int64())

	sum, ok = Add(NewInt(3), NewFloat(0.5))
	require.True(t, ok)
	assert.Equal(t, KindFloat, sum.Kind())
	assert.InDelta(t, 3.5, sum.Float64(), 1e-9)

	_, ok = Add(NewInt(3), NewNA("NA"))
	assert.False(t, ok)

	_, ok = Add(NewText("x"), NewInt(1))
	assert.False(t, ok)
}

func TestSub(t *testing.T) {
	diff, ok := Sub(NewInt(170013), NewInt(123219))
	require.True(t, ok)
	assert.Equal(t, int64(46794), diff.Int64())

	_, ok = Sub(NewNA("NA"), NewInt(1))
	assert.False(t, ok)
}

func TestRatio(t *testing.T) {
	r, ok := Ratio(NewInt(46794), NewInt(170013))
	require.True(t, ok)
	assert.InDelta(t, 0.27524, r.Float64(), 1e-4)

	_, ok = Ratio(NewInt(1), NewInt(0))
	assert.False(t, ok, "zero denominator")

	_, ok = Ratio(NewInt(1), NewFloat(0))
	assert.False(t, ok, "zero float denominator")

	_, ok = Ratio(NewInt(1), NewNA("NA"))
	assert.False(t, ok, "non-numeric denominator")
}

func TestValueMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Value{
		"int":   NewInt(5),
		"float": NewFloat(0.25),
		"na":    NewNA("NA"),
		"text":  NewText("hello"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"int":5,"float":0.25,"na":"NA","text":"hello"}`, string(data))
}
