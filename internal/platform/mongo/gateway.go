package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/phrazzld/companies-api/internal/store"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultQueryTimeout   = 30 * time.Second
)

// Options configures the MongoDB gateway.
type Options struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	// QueryTimeout bounds each Find. Zero uses the default.
	QueryTimeout time.Duration
}

// Gateway is a store.Gateway backed by one MongoDB collection.
type Gateway struct {
	client  *mongodriver.Client
	coll    collection
	name    string
	timeout time.Duration
	logger  *slog.Logger
}

// Compile-time check that Gateway implements store.Gateway.
var _ store.Gateway = (*Gateway)(nil)

// Connect opens a client for opts.URI, verifies it with a ping against the
// primary and returns a Gateway for opts.Database/opts.Collection. The client
// is disconnected again if the ping fails.
func Connect(ctx context.Context, opts Options, logger *slog.Logger) (*Gateway, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if opts.Database == "" {
		return nil, errors.New("database name is required")
	}
	if opts.Collection == "" {
		return nil, errors.New("collection name is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	connectTimeout := opts.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongodriver.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %w", store.ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %w", store.ErrUnavailable, err)
	}

	logger.Info("connected to MongoDB",
		"database", opts.Database,
		"collection", opts.Collection)

	coll := mongoCollection{coll: client.Database(opts.Database).Collection(opts.Collection)}
	return newGateway(client, coll, opts.Collection, opts.QueryTimeout, logger), nil
}

func newGateway(
	client *mongodriver.Client,
	coll collection,
	name string,
	timeout time.Duration,
	logger *slog.Logger,
) *Gateway {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client:  client,
		coll:    coll,
		name:    name,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "mongo_gateway")),
	}
}

// Find runs q as a find command and drains the cursor.
func (g *Gateway) Find(ctx context.Context, q store.Query) ([]store.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	findOpts := options.Find()
	if proj := q.ProjectionDocument(); proj != nil {
		findOpts.SetProjection(proj)
	}
	if sort := q.SortDocument(); sort != nil {
		findOpts.SetSort(sort)
	}
	if q.Limit > 0 {
		findOpts.SetLimit(q.Limit)
	}

	filter := q.FilterDocument()
	g.logger.Debug("executing find", "conditions", len(q.Filter), "limit", q.Limit)

	cur, err := g.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, store.NewStoreError(g.name, "find", "query execution failed", MapError("find", err))
	}
	defer func() { _ = cur.Close(context.WithoutCancel(ctx)) }()

	docs := make([]store.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError(g.name, "decode", "reading results failed", MapError("decode", err))
	}
	return docs, nil
}

// Ping checks that the primary is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	if g.client == nil {
		return store.ErrUnavailable
	}
	if err := g.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return nil
}

// Close disconnects the client.
func (g *Gateway) Close(ctx context.Context) error {
	if g.client == nil {
		return nil
	}
	if err := g.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect: %w", err)
	}
	g.logger.Info("disconnected from MongoDB")
	return nil
}

type collection interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (cursor, error)
}

type cursor interface {
	All(ctx context.Context, results any) error
	Close(ctx context.Context) error
}

type mongoCollection struct {
	coll *mongodriver.Collection
}

func (c mongoCollection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (cursor, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
