// Package catalog defines the fixed, ordered set of demonstration
// operations mongotour runs against the collection. Entries are pure
// data, fixed at construction, and never mutated.
package catalog

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dbsmedya/mongotour/internal/format"
	"github.com/dbsmedya/mongotour/internal/store"
)

// Kind identifies the dispatch shape of an operation.
type Kind int

const (
	Find Kind = iota
	UpdateOne
	DeleteOne
	Aggregate
	CreateIndex
	Explain
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Find:
		return "find"
	case UpdateOne:
		return "update-one"
	case DeleteOne:
		return "delete-one"
	case Aggregate:
		return "aggregate"
	case CreateIndex:
		return "create-index"
	case Explain:
		return "explain"
	default:
		return "unknown"
	}
}

// Operation is one named, self-contained database call. Only the fields
// relevant to its Kind are set.
type Operation struct {
	Name        string
	Description string
	Kind        Kind

	Filter    bson.D             // Find, UpdateOne, DeleteOne, Explain
	Update    bson.D             // UpdateOne
	Pipeline  mongo.Pipeline     // Aggregate
	FindOpts  store.FindOptions  // Find
	IndexKeys bson.D             // CreateIndex
	Row       format.RowTemplate // Find, Aggregate
}

// Catalog holds the ordered entries keyed by name.
type Catalog struct {
	ops *orderedmap.OrderedMap[string, Operation]
}

// Entries returns the operations in their fixed display order.
func (c *Catalog) Entries() []Operation {
	entries := make([]Operation, 0, c.ops.Len())
	for el := c.ops.Front(); el != nil; el = el.Next() {
		entries = append(entries, el.Value)
	}
	return entries
}

// Get returns the entry with the given name.
func (c *Catalog) Get(name string) (Operation, bool) {
	return c.ops.Get(name)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return c.ops.Len()
}

// add registers an entry; duplicate names are a programmer error.
func (c *Catalog) add(op Operation) {
	if !c.ops.Set(op.Name, op) {
		panic(fmt.Sprintf("catalog: duplicate operation name %q", op.Name))
	}
}

// Pagination parameters for the skip/limit demonstration.
const (
	PageSize = 5
	Page     = 2
)

// Row templates shared by several entries.
var (
	rowTitleAuthor = format.RowTemplate{
		Layout:  "%s by %s",
		Columns: []format.Column{{Field: "title"}, {Field: "author"}},
	}
	rowTitleYear = format.RowTemplate{
		Layout:  "%s (%s)",
		Columns: []format.Column{{Field: "title"}, {Field: "published_year", Format: format.FormatInt}},
	}
	rowTitlePrice = format.RowTemplate{
		Layout:  "%s: %s",
		Columns: []format.Column{{Field: "title"}, {Field: "price", Format: format.FormatMoney}},
	}
)

// New builds the fixed demonstration catalog. The order is the display
// narrative; no entry depends on another's result.
func New() *Catalog {
	c := &Catalog{ops: orderedmap.NewOrderedMap[string, Operation]()}

	titleProjection := bson.D{
		{Key: "title", Value: 1},
		{Key: "author", Value: 1},
		{Key: "price", Value: 1},
		{Key: "_id", Value: 0},
	}

	c.add(Operation{
		Name:        "all-books",
		Description: "All books in the collection",
		Kind:        Find,
		Filter:      bson.D{},
		Row:         rowTitleAuthor,
	})

	c.add(Operation{
		Name:        "with-year",
		Description: "Books that record a publication year",
		Kind:        Find,
		Filter:      bson.D{{Key: "published_year", Value: bson.D{{Key: "$exists", Value: true}}}},
		Row:         rowTitleYear,
	})

	c.add(Operation{
		Name:        "recent",
		Description: "Books published after 2010",
		Kind:        Find,
		Filter:      bson.D{{Key: "published_year", Value: bson.D{{Key: "$gt", Value: 2010}}}},
		Row:         rowTitleYear,
	})

	c.add(Operation{
		Name:        "recent-in-stock",
		Description: "In-stock books published after 2010",
		Kind:        Find,
		Filter: bson.D{
			{Key: "in_stock", Value: true},
			{Key: "published_year", Value: bson.D{{Key: "$gt", Value: 2010}}},
		},
		FindOpts: store.FindOptions{Projection: titleProjection},
		Row:      rowTitlePrice,
	})

	c.add(Operation{
		Name:        "cheapest-first",
		Description: "Books sorted by price, ascending",
		Kind:        Find,
		FindOpts: store.FindOptions{
			Projection: titleProjection,
			Sort:       bson.D{{Key: "price", Value: 1}},
		},
		Filter: bson.D{},
		Row:    rowTitlePrice,
	})

	c.add(Operation{
		Name:        "priciest-first",
		Description: "Books sorted by price, descending",
		Kind:        Find,
		FindOpts: store.FindOptions{
			Projection: titleProjection,
			Sort:       bson.D{{Key: "price", Value: -1}},
		},
		Filter: bson.D{},
		Row:    rowTitlePrice,
	})

	c.add(Operation{
		Name:        "page-two",
		Description: fmt.Sprintf("Page %d of books (%d per page)", Page, PageSize),
		Kind:        Find,
		Filter:      bson.D{},
		FindOpts: store.FindOptions{
			Projection: titleProjection,
			Sort:       bson.D{{Key: "title", Value: 1}},
			Skip:       int64((Page - 1) * PageSize),
			Limit:      PageSize,
		},
		Row: rowTitleAuthor,
	})

	c.add(Operation{
		Name:        "reprice-alchemist",
		Description: "Raise the price of 'The Alchemist'",
		Kind:        UpdateOne,
		Filter:      bson.D{{Key: "title", Value: "The Alchemist"}},
		Update:      bson.D{{Key: "$set", Value: bson.D{{Key: "price", Value: 18.99}}}},
	})

	c.add(Operation{
		Name:        "remove-moby-dick",
		Description: "Delete 'Moby Dick'",
		Kind:        DeleteOne,
		Filter:      bson.D{{Key: "title", Value: "Moby Dick"}},
	})

	c.add(Operation{
		Name:        "avg-price-by-genre",
		Description: "Average price by genre",
		Kind:        Aggregate,
		Pipeline: mongo.Pipeline{
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$genre"},
				{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "averagePrice", Value: -1}}}},
		},
		Row: format.RowTemplate{
			Columns: []format.Column{
				{Field: "_id"},
				{Field: "averagePrice", Format: format.FormatFloat2},
			},
		},
	})

	c.add(Operation{
		Name:        "most-prolific-author",
		Description: "Author with the most books",
		Kind:        Aggregate,
		Pipeline: mongo.Pipeline{
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$author"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
			{{Key: "$limit", Value: 1}},
		},
		Row: format.RowTemplate{
			Layout: "%s (%s books)",
			Columns: []format.Column{
				{Field: "_id"},
				{Field: "count", Format: format.FormatInt},
			},
		},
	})

	c.add(Operation{
		Name:        "books-per-decade",
		Description: "Books per decade of publication",
		Kind:        Aggregate,
		Pipeline: mongo.Pipeline{
			{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: bson.D{{Key: "$multiply", Value: bson.A{
					bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$published_year", 10}}}}},
					10,
				}}}},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		},
		Row: format.RowTemplate{
			Columns: []format.Column{
				{Field: "_id", Format: format.FormatDecade},
				{Field: "count", Format: format.FormatInt},
			},
		},
	})

	titleLookup := bson.D{{Key: "title", Value: "The Alchemist"}}

	c.add(Operation{
		Name:        "explain-title-baseline",
		Description: "Explain a title lookup before indexing",
		Kind:        Explain,
		Filter:      titleLookup,
	})

	c.add(Operation{
		Name:        "index-title",
		Description: "Create a single-field index on title",
		Kind:        CreateIndex,
		IndexKeys:   bson.D{{Key: "title", Value: 1}},
	})

	c.add(Operation{
		Name:        "explain-title-indexed",
		Description: "Explain the same title lookup after indexing",
		Kind:        Explain,
		Filter:      titleLookup,
	})

	c.add(Operation{
		Name:        "index-author-year",
		Description: "Create a compound index on author and published_year",
		Kind:        CreateIndex,
		IndexKeys: bson.D{
			{Key: "author", Value: 1},
			{Key: "published_year", Value: 1},
		},
	})

	return c
}
