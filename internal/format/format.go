// Package format renders operation results as human-readable console lines.
package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dbsmedya/mongotour/internal/store"
)

// ColumnFormat selects how a single document field is rendered.
type ColumnFormat int

const (
	// FormatString renders the field as-is.
	FormatString ColumnFormat = iota
	// FormatInt renders a numeric field as an integer.
	FormatInt
	// FormatMoney renders a numeric field as a dollar amount with two decimals.
	FormatMoney
	// FormatFloat2 renders a numeric field with exactly two decimals.
	FormatFloat2
	// FormatDecade renders a numeric bucket key like 1950 as "1950s".
	FormatDecade
)

// Column binds a document field to a rendering format.
type Column struct {
	Field  string
	Format ColumnFormat
}

// Missing is printed for fields absent from a document or of an
// unrecognized shape.
const Missing = "-"

// RowTemplate describes how one record becomes one display line.
// Layout is a fmt layout with one %s verb per column; when Layout is
// empty the columns are rendered as an aligned table instead.
type RowTemplate struct {
	Layout  string
	Columns []Column
}

// Render produces the display line for a single document. Aligned
// templates (empty Layout) should go through RecordLines so column
// widths are computed across the whole result.
func (t RowTemplate) Render(doc bson.M) string {
	cells := t.cells(doc)
	if t.Layout == "" {
		return strings.Join(cells, "  ")
	}
	args := make([]interface{}, len(cells))
	for i, c := range cells {
		args[i] = c
	}
	return fmt.Sprintf(t.Layout, args...)
}

func (t RowTemplate) cells(doc bson.M) []string {
	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = renderField(doc[col.Field], col.Format)
	}
	return cells
}

// RecordLines renders one line per document. Templates without a Layout
// are rendered as display-width-aligned columns.
func RecordLines(tmpl RowTemplate, docs []bson.M) []string {
	if len(docs) == 0 {
		return []string{"(no records)"}
	}

	if tmpl.Layout != "" {
		lines := make([]string, len(docs))
		for i, doc := range docs {
			lines[i] = tmpl.Render(doc)
		}
		return lines
	}

	// Aligned table: pad every column except the last to the widest cell.
	rows := make([][]string, len(docs))
	widths := make([]int, len(tmpl.Columns))
	for i, doc := range docs {
		rows[i] = tmpl.cells(doc)
		for j, cell := range rows[i] {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		padded := make([]string, len(row))
		for j, cell := range row {
			if j < len(row)-1 {
				padded[j] = runewidth.FillRight(cell, widths[j])
			} else {
				padded[j] = cell
			}
		}
		lines[i] = strings.Join(padded, "  ")
	}
	return lines
}

// MutationLine renders the outcome of an update or delete. verb is the
// past-tense action ("updated", "deleted").
func MutationLine(verb string, affected int64) string {
	if affected > 0 {
		return fmt.Sprintf("%s %d record(s)", verb, affected)
	}
	return "no match"
}

// IndexLine echoes the server-assigned index name.
func IndexLine(name string) string {
	return fmt.Sprintf("index created: %s", name)
}

// ExplainLines renders the execution summary of an explain call.
func ExplainLines(stats store.ExplainStats) []string {
	return []string{
		fmt.Sprintf("documents examined: %d", stats.DocsExamined),
		fmt.Sprintf("execution time: %d ms", stats.ExecutionMillis),
	}
}

// renderField normalizes the value shapes BSON decoding can produce and
// applies the column format. Anything unrecognized renders as Missing.
func renderField(v interface{}, f ColumnFormat) string {
	if v == nil {
		return Missing
	}

	switch f {
	case FormatString:
		if s, ok := v.(string); ok {
			return s
		}
		if n, ok := toFloat64(v); ok {
			return trimNumber(n)
		}
		return Missing
	case FormatInt:
		if n, ok := toFloat64(v); ok {
			return fmt.Sprintf("%d", int64(n))
		}
		return Missing
	case FormatMoney:
		if n, ok := toFloat64(v); ok {
			return fmt.Sprintf("$%.2f", n)
		}
		return Missing
	case FormatFloat2:
		if n, ok := toFloat64(v); ok {
			return fmt.Sprintf("%.2f", n)
		}
		return Missing
	case FormatDecade:
		if n, ok := toFloat64(v); ok {
			return fmt.Sprintf("%ds", int64(n))
		}
		return Missing
	default:
		return Missing
	}
}

// toFloat64 widens the numeric types the driver decodes into bson.M.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// trimNumber renders a number without a trailing ".000000" tail when it
// is integral.
func trimNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
