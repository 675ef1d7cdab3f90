package vcmetrics

import "strings"

// Column describes how one metric is displayed in a table context.
type Column struct {
	ID          string
	Title       string
	Description string
	Min         float64
	Max         float64 // 0 means unbounded
	Suffix      string
	Hidden      bool
}

// Schema is an ordered list of columns for one table context.
type Schema []Column

// Visible returns the columns that are shown in this context, in order.
func (s Schema) Visible() []Column {
	var cols []Column
	for _, c := range s {
		if !c.Hidden {
			cols = append(cols, c)
		}
	}
	return cols
}

// ByID returns the column with the given metric name.
func (s Schema) ByID(id string) (Column, bool) {
	for _, c := range s {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// MakeHeaders builds the summary and detail schemas from the static
// catalog and the set of metric names observed across all samples.
// Catalog order is preserved; whenever a "<id> pct" name was observed,
// a percentage column is inserted right after its base column. A
// MarkerPercent entry shows the percentage column and hides the base;
// a MarkerNumber entry shows the base and hides the percentage.
func MakeHeaders(observed map[string]bool) (summary, detail Schema) {
	for _, e := range Catalog {
		base := Column{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
		}

		s := base
		s.Hidden = e.InSummary != MarkerNumber
		summary = append(summary, s)

		d := base
		d.Hidden = e.InDetail != MarkerNumber
		detail = append(detail, d)

		if !observed[e.ID+" pct"] {
			continue
		}

		pct := base
		pct.ID = e.ID + " pct"
		pct.Description = pctDescription(e.Description)
		pct.Max = 100
		pct.Suffix = "%"

		sp := pct
		sp.Hidden = e.InSummary != MarkerPercent
		summary = append(summary, sp)

		dp := pct
		dp.Hidden = e.InDetail != MarkerPercent
		detail = append(detail, dp)
	}

	return summary, detail
}

// pctDescription rewrites a count description to read as a proportion.
func pctDescription(desc string) string {
	desc = strings.ReplaceAll(desc, ", {}", "")
	return strings.ReplaceAll(desc, "Number of ", "% of ")
}
