package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

// kindString maps a value kind to its storage tag.
func kindString(k vcmetrics.Kind) string {
	switch k {
	case vcmetrics.KindInt:
		return "int"
	case vcmetrics.KindFloat:
		return "float"
	case vcmetrics.KindNA:
		return "na"
	default:
		return "text"
	}
}

// WriteSampleMetrics batch-inserts the merged record set using the
// Appender API. Rows for samples being written are replaced; other
// samples already in the database are untouched.
func (s *Store) WriteSampleMetrics(data map[string]vcmetrics.Record) error {
	if len(data) == 0 {
		return nil
	}

	samples := make([]string, 0, len(data))
	for sample := range data {
		samples = append(samples, sample)
	}
	sort.Strings(samples)

	for _, sample := range samples {
		if _, err := s.db.Exec("DELETE FROM sample_metrics WHERE sample=?", sample); err != nil {
			return fmt.Errorf("clear sample %s: %w", sample, err)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "sample_metrics")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, sample := range samples {
		rec := data[sample]

		metrics := make([]string, 0, len(rec))
		for metric := range rec {
			metrics = append(metrics, metric)
		}
		sort.Strings(metrics)

		for _, metric := range metrics {
			v := rec[metric]
			var num float64
			var text string
			if v.IsNumeric() {
				num = v.Float64()
			} else {
				text = v.String()
			}
			if err := appender.AppendRow(sample, metric, kindString(v.Kind()), num, text); err != nil {
				return fmt.Errorf("append metric row: %w", err)
			}
		}
	}

	return appender.Flush()
}

// Samples returns the distinct sample names in the database, sorted.
func (s *Store) Samples() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT sample FROM sample_metrics ORDER BY sample")
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []string
	for rows.Next() {
		var sample string
		if err := rows.Scan(&sample); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

// SampleMetrics reconstructs the metric record for one sample.
func (s *Store) SampleMetrics(sample string) (vcmetrics.Record, error) {
	rows, err := s.db.Query(
		"SELECT metric, kind, value_num, value_text FROM sample_metrics WHERE sample=?",
		sample)
	if err != nil {
		return nil, fmt.Errorf("query sample metrics: %w", err)
	}
	defer rows.Close()

	rec := make(vcmetrics.Record)
	for rows.Next() {
		var metric, kind, text string
		var num float64
		if err := rows.Scan(&metric, &kind, &num, &text); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}

		switch kind {
		case "int":
			rec[metric] = vcmetrics.NewInt(int64(num))
		case "float":
			rec[metric] = vcmetrics.NewFloat(num)
		case "na":
			rec[metric] = vcmetrics.NewNA(text)
		default:
			rec[metric] = vcmetrics.NewText(text)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics: %w", err)
	}
	return rec, nil
}
