package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

func testData() map[string]vcmetrics.Record {
	return map[string]vcmetrics.Record{
		"S1": {
			"Total":             vcmetrics.NewInt(123219),
			"SNPs":              vcmetrics.NewInt(104900),
			"SNPs pct":          vcmetrics.NewFloat(85.13),
			"Indels":            vcmetrics.NewInt(18319),
			"Indels pct":        vcmetrics.NewFloat(0.14867),
			"Ti/Tv ratio":       vcmetrics.NewFloat(1.45),
			"Filtered vars":     vcmetrics.NewInt(46794),
			"Filtered vars pct": vcmetrics.NewFloat(0.27524),
		},
		"S2": {
			"Total":               vcmetrics.NewInt(98000),
			"Percent Callability": vcmetrics.NewNA("NA"),
		},
	}
}

func TestNew_SchemasFollowObservations(t *testing.T) {
	r := New(testData())

	// Observed "SNPs pct" synthesizes a visible detail column.
	col, ok := r.Detail.ByID("SNPs pct")
	require.True(t, ok)
	assert.False(t, col.Hidden)

	// "Multiallelic pct" was never observed, so no column exists.
	_, ok = r.Detail.ByID("Multiallelic pct")
	assert.False(t, ok)
}

func TestSamples_Sorted(t *testing.T) {
	r := New(testData())
	assert.Equal(t, []string{"S1", "S2"}, r.Samples())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	r := New(testData())
	require.NoError(t, r.WriteTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "General stats")
	assert.Contains(t, out, "Variant calling")
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "Vars")
	assert.Contains(t, out, "123219")
	// NA renders verbatim, never as a number.
	assert.Contains(t, out, "NA")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	r := New(testData())
	require.NoError(t, r.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per sample")

	assert.Equal(t, "Sample", rows[0][0])
	assert.Equal(t, "Total", rows[0][1])
	assert.Equal(t, "S1", rows[1][0])
	assert.Equal(t, "123219", rows[1][1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(testData())
	require.NoError(t, r.WriteJSON(&buf))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.EqualValues(t, 123219, decoded["S1"]["Total"])
	assert.Equal(t, "NA", decoded["S2"]["Percent Callability"])
}

func TestFormatValue(t *testing.T) {
	derivedCol := vcmetrics.Column{ID: "Filtered vars pct", Suffix: "%", Max: 100}
	inputCol := vcmetrics.Column{ID: "SNPs pct", Suffix: "%", Max: 100}
	plainCol := vcmetrics.Column{ID: "Total"}

	// Derived [0,1] ratios are scaled for display.
	assert.Equal(t, "27.52%", formatValue(vcmetrics.NewFloat(0.27524), derivedCol))
	// Input percentages already in [0,100] pass through.
	assert.Equal(t, "85.13%", formatValue(vcmetrics.NewFloat(85.13), inputCol))
	// Integers and text are untouched.
	assert.Equal(t, "123219", formatValue(vcmetrics.NewInt(123219), plainCol))
	assert.Equal(t, "NA", formatValue(vcmetrics.NewNA("NA"), inputCol))
}

// An input percentage below one percent must not be mistaken for a
// derived ratio and scaled a second time.
func TestFormatValue_SmallInputPercentage(t *testing.T) {
	inputCol := vcmetrics.Column{ID: "Multiallelic pct", Suffix: "%", Max: 100}
	assert.Equal(t, "0.84%", formatValue(vcmetrics.NewFloat(0.84), inputCol))

	derivedCol := vcmetrics.Column{ID: "Indels pct", Suffix: "%", Max: 100}
	assert.Equal(t, "84.00%", formatValue(vcmetrics.NewFloat(0.84), derivedCol))
}
