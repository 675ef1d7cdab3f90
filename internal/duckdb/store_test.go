package duckdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndReadSampleMetrics(t *testing.T) {
	s := openInMemory(t)

	data := map[string]vcmetrics.Record{
		"S1": {
			"Total":               vcmetrics.NewInt(123219),
			"Ti/Tv ratio":         vcmetrics.NewFloat(1.45),
			"Filtered vars pct":   vcmetrics.NewFloat(0.27524),
			"Percent Callability": vcmetrics.NewNA("NA"),
			"Child Sample":        vcmetrics.NewText("none"),
		},
		"S2": {
			"Total": vcmetrics.NewInt(98000),
		},
	}

	require.NoError(t, s.WriteSampleMetrics(data))

	samples, err := s.Samples()
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2"}, samples)

	rec, err := s.SampleMetrics("S1")
	require.NoError(t, err)

	// Value kinds round-trip: integers stay integers, NA stays NA.
	assert.Equal(t, vcmetrics.NewInt(123219), rec["Total"])
	assert.Equal(t, vcmetrics.NewFloat(1.45), rec["Ti/Tv ratio"])
	assert.Equal(t, vcmetrics.NewNA("NA"), rec["Percent Callability"])
	assert.Equal(t, vcmetrics.NewText("none"), rec["Child Sample"])
}

func TestWriteSampleMetrics_ReplacesSample(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteSampleMetrics(map[string]vcmetrics.Record{
		"S1": {"Total": vcmetrics.NewInt(10), "SNPs": vcmetrics.NewInt(5)},
	}))
	require.NoError(t, s.WriteSampleMetrics(map[string]vcmetrics.Record{
		"S1": {"Total": vcmetrics.NewInt(99)},
	}))

	rec, err := s.SampleMetrics("S1")
	require.NoError(t, err)
	assert.Equal(t, vcmetrics.NewInt(99), rec["Total"])
	_, ok := rec["SNPs"]
	assert.False(t, ok, "stale metric rows must be cleared")
}

func TestWriteSampleMetrics_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteSampleMetrics(nil))

	samples, err := s.Samples()
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestRecordSources(t *testing.T) {
	s := openInMemory(t)

	now := time.Now().UTC().Truncate(time.Second)
	files := []FileFingerprint{
		{Path: "/runs/S1.vc_metrics.csv", Size: 2048, ModTime: now},
	}
	require.NoError(t, s.RecordSources(files))
	// Upserting the same path must not duplicate it.
	require.NoError(t, s.RecordSources(files))

	got, err := s.Sources()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/runs/S1.vc_metrics.csv", got[0].Path)
	assert.Equal(t, int64(2048), got[0].Size)
}
