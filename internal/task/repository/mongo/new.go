package mongo

import (
	"context"
	"fmt"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-manager-agent/internal/task/repository"
	pkgLog "task-manager-agent/pkg/log"
)

// Config holds connection settings for the Mongo-backed task store.
type Config struct {
	URI        string
	Database   string
	Collection string
}

type implConnector struct {
	l   pkgLog.Logger
	cfg Config
}

// NewConnector creates a Connector that opens one Mongo client per Connect
// call. Callers own the returned Store and must Close it when done.
func NewConnector(l pkgLog.Logger, cfg Config) repository.Connector {
	return &implConnector{l: l, cfg: cfg}
}

func (c *implConnector) Connect(ctx context.Context) (repository.Store, error) {
	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(c.cfg.URI))
	if err != nil {
		c.l.Errorf(ctx, "mongo repository: connect failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrConnect, err)
	}

	return &implStore{
		l:      c.l,
		client: client,
		coll:   client.Database(c.cfg.Database).Collection(c.cfg.Collection),
	}, nil
}

type implStore struct {
	l      pkgLog.Logger
	client *mongodrv.Client
	coll   *mongodrv.Collection
}

// Close disconnects the underlying client.
func (s *implStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
