package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// WriteCSV writes one row per sample with every detail column,
// visible or not. Values are written as stored: derived ratios stay
// in [0,1] so downstream tooling can apply its own scaling.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Sample"}
	for _, c := range r.Detail {
		header = append(header, c.ID)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, sample := range r.Samples() {
		rec := r.Data[sample]
		row := []string{sample}
		for _, c := range r.Detail {
			if v, ok := rec[c.ID]; ok {
				row = append(row, v.String())
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the full record set keyed by sample name.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Data)
}
