package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pillbox/internal/pill/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// CollectionName is the MongoDB collection backing the pill store.
const CollectionName = "pills"

// pillDoc is the wire schema. Identifiers are canonical UUID strings and
// are parsed back into domain ids on read.
type pillDoc struct {
	ID      string `bson:"_id"`
	Title   string `bson:"title"`
	Content string `bson:"content"`
}

func toDoc(pill *models.Pill) pillDoc {
	return pillDoc{
		ID:      pill.ID.String(),
		Title:   pill.Title,
		Content: pill.Content,
	}
}

func (d pillDoc) toModel() (*models.Pill, error) {
	pillID, err := id.ParsePillID(d.ID)
	if err != nil {
		// A malformed stored id is an infrastructure fault, never a
		// silently dropped record.
		return nil, fmt.Errorf("pill document %q: malformed stored id: %w", d.ID, err)
	}
	return &models.Pill{ID: pillID, Title: d.Title, Content: d.Content}, nil
}

// Mongo is the document-store-backed pill store. Each pill maps to one
// document keyed by its stringified id; single-document writes are atomic on
// the server side.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{collection: db.Collection(CollectionName)}
}

func (s *Mongo) Save(ctx context.Context, pill *models.Pill) error {
	filter := bson.M{"_id": pill.ID.String()}
	_, err := s.collection.ReplaceOne(ctx, filter, toDoc(pill), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save pill %s: %w", pill.ID, err)
	}
	return nil
}

func (s *Mongo) FindByID(ctx context.Context, pillID id.PillID) (*models.Pill, error) {
	var doc pillDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": pillID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pill %s: %w", pillID, err)
	}
	return doc.toModel()
}

func (s *Mongo) FindAll(ctx context.Context) ([]*models.Pill, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find all pills: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pillDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pills: %w", err)
	}

	pills := make([]*models.Pill, 0, len(docs))
	for _, doc := range docs {
		pill, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		pills = append(pills, pill)
	}
	return pills, nil
}
