// Package store provides document store access for mongotour.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindOptions carries the optional shaping parameters of a find call.
// Zero values mean "not set".
type FindOptions struct {
	Projection bson.D
	Sort       bson.D
	Skip       int64
	Limit      int64
}

// ExplainStats is the execution summary the server reports for a query
// under the current index state.
type ExplainStats struct {
	DocsExamined    int64
	ExecutionMillis int64
}

// Store is the contract the runner needs from the underlying document
// database. Find and Aggregate return fully materialized results, never
// a live cursor.
type Store interface {
	// Find retrieves all documents matching the filter, shaped by opts.
	Find(ctx context.Context, filter interface{}, opts FindOptions) ([]bson.M, error)

	// UpdateOne applies the update to the first document matching the
	// filter and returns the matched count (0 means no match, not an error).
	UpdateOne(ctx context.Context, filter, update interface{}) (int64, error)

	// DeleteOne removes the first document matching the filter and
	// returns the deleted count (0 means no match, not an error).
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)

	// Aggregate runs the pipeline and returns all result documents.
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)

	// CreateIndex ensures an index on the given keys and returns the
	// server-assigned index name. Re-creating an existing definition
	// succeeds without adding a second index.
	CreateIndex(ctx context.Context, keys bson.D) (string, error)

	// Explain reports execution statistics for a find with the given
	// filter, without returning its documents.
	Explain(ctx context.Context, filter interface{}) (ExplainStats, error)

	// Ping verifies the connection is alive.
	Ping(ctx context.Context) error

	// Close releases the connection. Safe to call more than once.
	Close(ctx context.Context) error
}
