//go:build integration

package containers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoContainer wraps a shared testcontainers MongoDB instance.
type MongoContainer struct {
	Container testcontainers.Container
	URI       string
	Client    *mongo.Client
}

var (
	mongoOnce     sync.Once
	mongoInstance *MongoContainer
	mongoErr      error
	dbCounter     atomic.Int64
)

// GetMongo returns the process-wide MongoDB container, starting it on first
// use. The container is shared across suites; Ryuk reaps it after the run.
func GetMongo(t *testing.T) *MongoContainer {
	t.Helper()

	mongoOnce.Do(func() {
		ctx := context.Background()

		container, err := tcmongo.Run(ctx, "mongo:7")
		if err != nil {
			mongoErr = fmt.Errorf("start mongodb container: %w", err)
			return
		}

		uri, err := container.ConnectionString(ctx)
		if err != nil {
			_ = container.Terminate(ctx)
			mongoErr = fmt.Errorf("mongodb connection string: %w", err)
			return
		}

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			_ = container.Terminate(ctx)
			mongoErr = fmt.Errorf("connect mongodb: %w", err)
			return
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			_ = container.Terminate(ctx)
			mongoErr = fmt.Errorf("ping mongodb: %w", err)
			return
		}

		mongoInstance = &MongoContainer{Container: container, URI: uri, Client: client}
	})

	if mongoErr != nil {
		t.Fatalf("mongodb container unavailable: %v", mongoErr)
	}
	return mongoInstance
}

// FreshDatabase returns an empty database unique to the calling test, so
// suites stay isolated without truncation bookkeeping.
func (m *MongoContainer) FreshDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	name := fmt.Sprintf("pillbox_test_%d", dbCounter.Add(1))
	db := m.Client.Database(name)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
	})
	return db
}
