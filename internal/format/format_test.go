package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dbsmedya/mongotour/internal/store"
)

func TestRenderLayoutTemplate(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s by %s",
		Columns: []Column{{Field: "title"}, {Field: "author"}},
	}

	line := tmpl.Render(bson.M{"title": "Dune", "author": "Frank Herbert"})
	assert.Equal(t, "Dune by Frank Herbert", line)
}

func TestRenderMoney(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s: %s",
		Columns: []Column{{Field: "title"}, {Field: "price", Format: FormatMoney}},
	}

	assert.Equal(t, "Dune: $9.99", tmpl.Render(bson.M{"title": "Dune", "price": 9.99}))
	assert.Equal(t, "Dune: $10.00", tmpl.Render(bson.M{"title": "Dune", "price": 10}))
	assert.Equal(t, "Dune: $12.50", tmpl.Render(bson.M{"title": "Dune", "price": 12.5}))
}

func TestRenderMissingField(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s (%s)",
		Columns: []Column{{Field: "title"}, {Field: "published_year", Format: FormatInt}},
	}

	assert.Equal(t, "Dune (-)", tmpl.Render(bson.M{"title": "Dune"}))
	assert.Equal(t, "- (-)", tmpl.Render(bson.M{}))
}

func TestRenderUnrecognizedShape(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s",
		Columns: []Column{{Field: "title"}},
	}

	// A non-string title is defaulted, not accessed dynamically
	assert.Equal(t, Missing, tmpl.Render(bson.M{"title": bson.M{"nested": true}}))
}

func TestRenderNumericTypes(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s",
		Columns: []Column{{Field: "published_year", Format: FormatInt}},
	}

	// The driver decodes numbers as int32, int64, or float64 depending on source
	assert.Equal(t, "1955", tmpl.Render(bson.M{"published_year": int32(1955)}))
	assert.Equal(t, "1955", tmpl.Render(bson.M{"published_year": int64(1955)}))
	assert.Equal(t, "1955", tmpl.Render(bson.M{"published_year": float64(1955)}))
}

func TestRenderDecade(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s",
		Columns: []Column{{Field: "_id", Format: FormatDecade}},
	}

	assert.Equal(t, "1950s", tmpl.Render(bson.M{"_id": float64(1950)}))
	assert.Equal(t, "2010s", tmpl.Render(bson.M{"_id": int32(2010)}))
}

func TestRecordLinesAverageTwoDecimals(t *testing.T) {
	tmpl := RowTemplate{
		Columns: []Column{
			{Field: "_id"},
			{Field: "averagePrice", Format: FormatFloat2},
		},
	}

	docs := []bson.M{
		{"_id": "Fiction", "averagePrice": 15.0},
		{"_id": "Drama", "averagePrice": 5.0},
	}

	lines := RecordLines(tmpl, docs)
	assert.Equal(t, []string{
		"Fiction  15.00",
		"Drama    5.00",
	}, lines)
}

func TestRecordLinesAlignment(t *testing.T) {
	tmpl := RowTemplate{
		Columns: []Column{
			{Field: "_id", Format: FormatDecade},
			{Field: "count", Format: FormatInt},
		},
	}

	docs := []bson.M{
		{"_id": int32(1950), "count": int32(3)},
		{"_id": int32(2010), "count": int32(12)},
	}

	lines := RecordLines(tmpl, docs)
	// First column padded to equal display width, two-space gap
	assert.Equal(t, "1950s  3", lines[0])
	assert.Equal(t, "2010s  12", lines[1])
}

func TestRecordLinesEmpty(t *testing.T) {
	tmpl := RowTemplate{
		Layout:  "%s",
		Columns: []Column{{Field: "title"}},
	}

	assert.Equal(t, []string{"(no records)"}, RecordLines(tmpl, nil))
}

func TestMutationLine(t *testing.T) {
	assert.Equal(t, "updated 1 record(s)", MutationLine("updated", 1))
	assert.Equal(t, "deleted 1 record(s)", MutationLine("deleted", 1))
	assert.Equal(t, "no match", MutationLine("updated", 0))
	assert.Equal(t, "no match", MutationLine("deleted", 0))
}

func TestIndexLine(t *testing.T) {
	assert.Equal(t, "index created: title_1", IndexLine("title_1"))
}

func TestExplainLines(t *testing.T) {
	lines := ExplainLines(store.ExplainStats{
		DocsExamined:    42,
		ExecutionMillis: 7,
	})

	assert.Equal(t, []string{
		"documents examined: 42",
		"execution time: 7 ms",
	}, lines)
}
