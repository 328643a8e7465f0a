// Package runner drives the operation catalog against a store, one
// entry at a time, formatting each result as it completes.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/gookit/color"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dbsmedya/mongotour/internal/catalog"
	"github.com/dbsmedya/mongotour/internal/format"
	"github.com/dbsmedya/mongotour/internal/logger"
	"github.com/dbsmedya/mongotour/internal/store"
)

// Result holds one operation's outcome. Only the fields relevant to the
// operation's kind are populated.
type Result struct {
	Kind      catalog.Kind
	Docs      []bson.M           // Find, Aggregate
	Affected  int64              // UpdateOne, DeleteOne
	IndexName string             // CreateIndex
	Stats     store.ExplainStats // Explain
}

// Execute dispatches a single operation against the store and returns
// its materialized result.
func Execute(ctx context.Context, st store.Store, op catalog.Operation) (Result, error) {
	res := Result{Kind: op.Kind}
	var err error

	switch op.Kind {
	case catalog.Find:
		res.Docs, err = st.Find(ctx, op.Filter, op.FindOpts)
	case catalog.UpdateOne:
		res.Affected, err = st.UpdateOne(ctx, op.Filter, op.Update)
	case catalog.DeleteOne:
		res.Affected, err = st.DeleteOne(ctx, op.Filter)
	case catalog.Aggregate:
		res.Docs, err = st.Aggregate(ctx, op.Pipeline)
	case catalog.CreateIndex:
		res.IndexName, err = st.CreateIndex(ctx, op.IndexKeys)
	case catalog.Explain:
		res.Stats, err = st.Explain(ctx, op.Filter)
	default:
		err = fmt.Errorf("unknown operation kind %d", op.Kind)
	}

	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Lines renders a result according to its operation's kind.
func Lines(op catalog.Operation, res Result) []string {
	switch res.Kind {
	case catalog.Find, catalog.Aggregate:
		return format.RecordLines(op.Row, res.Docs)
	case catalog.UpdateOne:
		return []string{format.MutationLine("updated", res.Affected)}
	case catalog.DeleteOne:
		return []string{format.MutationLine("deleted", res.Affected)}
	case catalog.CreateIndex:
		return []string{format.IndexLine(res.IndexName)}
	case catalog.Explain:
		return format.ExplainLines(res.Stats)
	default:
		return nil
	}
}

// Runner executes a catalog against one store handle. It borrows the
// handle; opening and releasing it stays with the caller.
type Runner struct {
	store store.Store
	log   *logger.Logger
	out   io.Writer
}

// New creates a Runner writing display lines to out.
func New(st store.Store, log *logger.Logger, out io.Writer) *Runner {
	return &Runner{
		store: st,
		log:   log,
		out:   out,
	}
}

// Run executes every catalog entry in order. The first failure aborts
// the remaining entries; mutations already applied are not undone.
func (r *Runner) Run(ctx context.Context, cat *catalog.Catalog) error {
	for i, op := range cat.Entries() {
		opLog := r.log.WithOperation(op.Name)
		opLog.Debugw("Executing operation", "kind", op.Kind.String())

		res, err := Execute(ctx, r.store, op)
		if err != nil {
			opLog.Errorw("Operation failed", "error", err)
			return fmt.Errorf("operation %q (%s) failed: %w", op.Name, op.Kind, err)
		}

		fmt.Fprintf(r.out, "%s\n", color.Bold.Sprintf("%d. %s", i+1, op.Description))
		for _, line := range Lines(op, res) {
			fmt.Fprintf(r.out, "   %s\n", line)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}
