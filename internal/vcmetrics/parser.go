package vcmetrics

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Analysis-stage tags emitted by DRAGEN in vc_metrics.csv files.
// These literals are a compatibility contract with the caller's output
// format and are matched verbatim. Rows with any other tag are ignored.
const (
	StageSummary    = "VARIANT CALLER SUMMARY"
	StagePrefilter  = "VARIANT CALLER PREFILTER"
	StagePostfilter = "VARIANT CALLER POSTFILTER"
)

// FileSuffix is the filename suffix of DRAGEN variant-calling metrics
// files.
const FileSuffix = ".vc_metrics.csv"

// Record maps metric name to value for one sample. Percentage
// companions of a metric are keyed as "<metric> pct".
type Record map[string]Value

// derivedRatioKeys are the "<metric> pct" keys this package computes
// as [0,1] ratios. Percentage fields read from the input arrive
// already scaled to [0,100].
var derivedRatioKeys = map[string]bool{
	"Insertions pct":      true,
	"Deletions pct":       true,
	"Indels pct":          true,
	"Filtered vars pct":   true,
	"Filtered SNPs pct":   true,
	"Filtered indels pct": true,
}

// IsDerivedRatio reports whether the named metric is a ratio computed
// by the parser, stored in [0,1], rather than a percentage sourced
// from the input document.
func IsDerivedRatio(name string) bool {
	return derivedRatioKeys[name]
}

// ParseError describes one row the parser skipped, with line context.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vc_metrics parse error at %s line %d: %s", e.File, e.Line, e.Message)
}

// Parser turns the text of one vc_metrics.csv document into per-sample
// metric records.
type Parser struct {
	logger      *zap.Logger
	diagnostics []*ParseError
}

// NewParser creates a parser with a no-op logger.
func NewParser() *Parser {
	return &Parser{logger: zap.NewNop()}
}

// SetLogger sets the logger for row-level diagnostics.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Diagnostics returns the rows skipped by the most recent Parse call.
// Skipped rows never fail the document; the host decides whether to
// surface them.
func (p *Parser) Diagnostics() []*ParseError {
	return p.diagnostics
}

// SampleFromFilename derives a sample name from a metrics filename by
// stripping the vc_metrics suffix.
func SampleFromFilename(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), FileSuffix)
}

// Parse reads one document and returns post-filter metric records keyed
// by sample name, with derived indel totals and filtered-out deltas
// against the pre-filter records folded in. Rows whose sample field is
// blank (run-summary rows) fall under the filename-derived sample so
// that all stages of one run reconcile under the same key.
func (p *Parser) Parse(raw, filename string) map[string]Record {
	fallback := SampleFromFilename(filename)

	p.diagnostics = nil
	prefilter := make(map[string]Record)
	postfilter := make(map[string]Record)

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			diag := &ParseError{
				File:    filename,
				Line:    i + 1,
				Message: fmt.Sprintf("expected at least 4 fields, found %d", len(fields)),
			}
			p.diagnostics = append(p.diagnostics, diag)
			p.logger.Debug("skipping malformed metrics row", zap.Error(diag))
			continue
		}

		stage := fields[0]
		sample := fields[1]
		metric := fields[2]
		value := ParseValue(fields[3])

		if sample == "" {
			sample = fallback
		}

		switch stage {
		case StageSummary, StagePrefilter:
			record(prefilter, sample)[metric] = value
		case StagePostfilter:
			rec := record(postfilter, sample)
			rec[metric] = value
			if len(fields) > 4 {
				rec[metric+" pct"] = ParseValue(fields[4])
			}
		}
	}

	p.deriveIndelTotals(prefilter)
	p.deriveIndelTotals(postfilter)
	p.reconcile(prefilter, postfilter)

	return postfilter
}

// record returns the Record for sample, creating it if needed.
func record(set map[string]Record, sample string) Record {
	rec, ok := set[sample]
	if !ok {
		rec = make(Record)
		set[sample] = rec
	}
	return rec
}

// deriveIndelTotals adds Insertions, Deletions and Indels totals to
// each record, plus their ratios against Total when Total is a
// non-zero number. Samples missing any of the four source counts are
// left without the derived fields.
func (p *Parser) deriveIndelTotals(set map[string]Record) {
	for sample, rec := range set {
		insertions, ok1 := Add(rec["Insertions (Hom)"], rec["Insertions (Het)"])
		deletions, ok2 := Add(rec["Deletions (Hom)"], rec["Deletions (Het)"])
		if !ok1 || !ok2 {
			p.logger.Debug("cannot derive indel totals",
				zap.String("sample", sample))
			continue
		}
		indels, _ := Add(insertions, deletions)

		rec["Insertions"] = insertions
		rec["Deletions"] = deletions
		rec["Indels"] = indels

		total := rec["Total"]
		if r, ok := Ratio(insertions, total); ok {
			rec["Insertions pct"] = r
		}
		if r, ok := Ratio(deletions, total); ok {
			rec["Deletions pct"] = r
		}
		if r, ok := Ratio(indels, total); ok {
			rec["Indels pct"] = r
		}
	}
}

// reconcile folds the pre-filter records into the post-filter records
// as Filtered vars/SNPs/indels deltas, with ratio companions against
// the same sample's pre-filter denominator. A post-filter sample with
// no pre-filter counterpart keeps its record but gets no deltas.
func (p *Parser) reconcile(prefilter, postfilter map[string]Record) {
	deltas := []struct {
		out string
		src string
	}{
		{"Filtered vars", "Total"},
		{"Filtered SNPs", "SNPs"},
		{"Filtered indels", "Indels"},
	}

	for sample, rec := range postfilter {
		pre, ok := prefilter[sample]
		if !ok {
			p.logger.Warn("no pre-filter metrics for sample",
				zap.String("sample", sample))
			continue
		}

		for _, d := range deltas {
			filtered, ok := Sub(pre[d.src], rec[d.src])
			if !ok {
				continue
			}
			rec[d.out] = filtered
			if r, ok := Ratio(filtered, pre[d.src]); ok {
				rec[d.out+" pct"] = r
			}
		}
	}
}
