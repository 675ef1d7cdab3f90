// Package report renders merged variant-calling metrics as tables,
// CSV, or JSON.
package report

import (
	"sort"
	"strconv"

	"github.com/inodb/dragen-qc/internal/collect"
	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

// Description of the detail view, shown above the table.
const Description = "Variant calling metrics. Metrics are reported for each sample in multi sample VCF " +
	"and gVCF files. Based on the run case, metrics are reported either as standard " +
	"VARIANT CALLER or JOINT CALLER. All metrics are reported for post-filter VCFs, " +
	"except for the \"Filtered\" metrics which represent how many variants were filtered out " +
	"from pre-filter VCF to generate the post-filter VCF."

// Report pairs merged per-sample records with the two presentation
// schemas built from the observed metric names.
type Report struct {
	Data    map[string]vcmetrics.Record
	Summary vcmetrics.Schema
	Detail  vcmetrics.Schema
}

// New builds a report for the merged record set. The schemas are
// derived once from the union of metric names across all samples.
func New(data map[string]vcmetrics.Record) *Report {
	summary, detail := vcmetrics.MakeHeaders(collect.ObservedMetrics(data))
	return &Report{
		Data:    data,
		Summary: summary,
		Detail:  detail,
	}
}

// Samples returns the sample names in sorted order.
func (r *Report) Samples() []string {
	samples := make([]string, 0, len(r.Data))
	for sample := range r.Data {
		samples = append(samples, sample)
	}
	sort.Strings(samples)
	return samples
}

// formatValue renders one cell. Ratios the parser derives are stored
// in [0,1] and scaled here; percentages sourced from the input are
// already in [0,100] and pass through, whatever their magnitude.
// Non-numeric values render verbatim with no suffix.
func formatValue(v vcmetrics.Value, col vcmetrics.Column) string {
	if !v.IsNumeric() {
		return v.String()
	}
	if col.Suffix == "%" {
		f := v.Float64()
		if vcmetrics.IsDerivedRatio(col.ID) {
			f *= 100
		}
		return strconv.FormatFloat(f, 'f', 2, 64) + col.Suffix
	}
	return v.String() + col.Suffix
}
