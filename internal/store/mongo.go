package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dbsmedya/mongotour/internal/config"
)

// Mongo is the MongoDB-backed Store implementation. It owns exactly one
// client for its lifetime.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	database   string
	collName   string
	closed     bool
}

// Open establishes a connection to the configured store with retry and
// verifies it with a ping before returning.
func Open(ctx context.Context, cfg *config.StoreConfig) (*Mongo, error) {
	client, err := connectWithRetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		database:   cfg.Database,
		collName:   cfg.Collection,
	}, nil
}

// connectWithRetry attempts to connect with exponential backoff.
func connectWithRetry(ctx context.Context, cfg *config.StoreConfig) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	backoff := time.Second

	for i := 0; i < maxRetries; i++ {
		client, err = connect(ctx, cfg)
		if err == nil {
			// Verify connection
			if pingErr := client.Ping(ctx, readpref.Primary()); pingErr == nil {
				return client, nil
			} else {
				client.Disconnect(ctx)
				err = pingErr
			}
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2 // Exponential backoff
			}
		}
	}

	return nil, fmt.Errorf("failed after %d retries: %w", maxRetries, err)
}

// connect creates a client from configuration.
func connect(ctx context.Context, cfg *config.StoreConfig) (*mongo.Client, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := BuildClientOptions(cfg, timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return mongo.Connect(connectCtx, opts)
}

// BuildClientOptions constructs client options from configuration.
func BuildClientOptions(cfg *config.StoreConfig, timeout time.Duration) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName("mongotour")
}

// Find retrieves all documents matching the filter, fully draining the
// cursor before returning.
func (m *Mongo) Find(ctx context.Context, filter interface{}, opts FindOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := m.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to drain find cursor: %w", err)
	}
	return docs, nil
}

// UpdateOne applies the update to the first matching document.
func (m *Mongo) UpdateOne(ctx context.Context, filter, update interface{}) (int64, error) {
	res, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("update failed: %w", err)
	}
	return res.MatchedCount, nil
}

// DeleteOne removes the first matching document.
func (m *Mongo) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete failed: %w", err)
	}
	return res.DeletedCount, nil
}

// Aggregate runs the pipeline and materializes all result documents.
func (m *Mongo) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate failed: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to drain aggregate cursor: %w", err)
	}
	return docs, nil
}

// CreateIndex ensures an index on the given keys. The server treats an
// identical existing definition as a no-op, so this is safe to re-run.
func (m *Mongo) CreateIndex(ctx context.Context, keys bson.D) (string, error) {
	name, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
	if err != nil {
		return "", fmt.Errorf("create index failed: %w", err)
	}
	return name, nil
}

// Explain runs the find under the explain command with executionStats
// verbosity and extracts the summary counters.
func (m *Mongo) Explain(ctx context.Context, filter interface{}) (ExplainStats, error) {
	command := bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: m.collName},
			{Key: "filter", Value: filter},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}

	var raw bson.M
	if err := m.client.Database(m.database).RunCommand(ctx, command).Decode(&raw); err != nil {
		return ExplainStats{}, fmt.Errorf("explain failed: %w", err)
	}

	return ParseExplain(raw)
}

// ParseExplain extracts the summary counters from a raw explain response.
func ParseExplain(raw bson.M) (ExplainStats, error) {
	stats, ok := raw["executionStats"].(bson.M)
	if !ok {
		return ExplainStats{}, fmt.Errorf("explain response missing executionStats")
	}

	examined, ok := toInt64(stats["totalDocsExamined"])
	if !ok {
		return ExplainStats{}, fmt.Errorf("explain response missing totalDocsExamined")
	}

	millis, ok := toInt64(stats["executionTimeMillis"])
	if !ok {
		return ExplainStats{}, fmt.Errorf("explain response missing executionTimeMillis")
	}

	return ExplainStats{
		DocsExamined:    examined,
		ExecutionMillis: millis,
	}, nil
}

// toInt64 normalizes the numeric types BSON decoding may produce.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// Ping verifies the connection is alive.
func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client. Subsequent calls are no-ops.
func (m *Mongo) Close(ctx context.Context) error {
	if m.closed {
		return nil
	}
	m.closed = true

	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}
