// Package mongodb owns the MongoDB client lifecycle: connection, ping, and
// index bootstrap. Repositories receive a *mongo.Database and never touch
// connection settings.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	coursestore "pillbox/internal/course/store"
	pillstore "pillbox/internal/pill/store"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(5 * time.Minute).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(30 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the catalog indexes: title on both collections for
// the uniqueness-check and listing paths, instructor on courses.
//
// The title index is not unique: title uniqueness is checked by the course
// service, not enforced by the store (see DESIGN.md).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	pills := db.Collection(pillstore.CollectionName)
	if _, err := pills.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create pills indexes: %w", err)
	}

	courses := db.Collection(coursestore.CollectionName)
	if _, err := courses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "instructor", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create courses indexes: %w", err)
	}

	return nil
}
