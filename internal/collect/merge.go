package collect

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

// Merge folds one document's records into the accumulated set.
// A sample seen before is overwritten by the later document
// (last-write-wins) with a warning.
func Merge(all, doc map[string]vcmetrics.Record, logger *zap.Logger) {
	for sample, rec := range doc {
		if _, ok := all[sample]; ok {
			logger.Warn("duplicate sample name found, overwriting",
				zap.String("sample", sample))
		}
		all[sample] = rec
	}
}

// IgnoreSamples returns the records whose sample name matches none of
// the glob patterns.
func IgnoreSamples(data map[string]vcmetrics.Record, patterns []string) map[string]vcmetrics.Record {
	if len(patterns) == 0 {
		return data
	}

	kept := make(map[string]vcmetrics.Record, len(data))
	for sample, rec := range data {
		if !matchesAny(sample, patterns) {
			kept[sample] = rec
		}
	}
	return kept
}

func matchesAny(sample string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := filepath.Match(p, sample); err == nil && ok {
			return true
		}
	}
	return false
}

// ObservedMetrics returns the union of metric names across all
// samples. The schema builder reads only these keys, never the values.
func ObservedMetrics(data map[string]vcmetrics.Record) map[string]bool {
	names := make(map[string]bool)
	for _, rec := range data {
		for name := range rec {
			names[name] = true
		}
	}
	return names
}
