package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

var headingColor = color.New(color.FgCyan, color.Bold)

// WriteTable writes the summary and detail views as human-readable
// tables.
func (r *Report) WriteTable(w io.Writer) error {
	if _, err := headingColor.Fprintln(w, "General stats"); err != nil {
		return err
	}
	if err := r.writeSchemaTable(w, r.Summary); err != nil {
		return fmt.Errorf("write summary table: %w", err)
	}

	if _, err := headingColor.Fprintln(w, "\nVariant calling"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Description); err != nil {
		return err
	}
	if err := r.writeSchemaTable(w, r.Detail); err != nil {
		return fmt.Errorf("write detail table: %w", err)
	}

	return nil
}

// writeSchemaTable renders one row per sample with the schema's
// visible columns.
func (r *Report) writeSchemaTable(w io.Writer, schema vcmetrics.Schema) error {
	cols := schema.Visible()

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "Sample")
	for _, c := range cols {
		headers = append(headers, c.Title)
	}

	var rows [][]string
	for _, sample := range r.Samples() {
		rec := r.Data[sample]
		row := make([]string, 0, len(cols)+1)
		row = append(row, sample)
		for _, c := range cols {
			v, ok := rec[c.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatValue(v, c))
		}
		rows = append(rows, row)
	}

	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Header.Formatting.AutoFormat = tw.Off
	})
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("populate rows: %w", err)
	}
	return table.Render()
}
