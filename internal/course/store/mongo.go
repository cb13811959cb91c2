package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pillbox/internal/course/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// CollectionName is the MongoDB collection backing the course store.
const CollectionName = "courses"

// courseDoc is the wire schema. Identifiers are canonical UUID strings;
// they are parsed back into domain ids on read, and a malformed stored id
// surfaces as an error rather than a dropped record.
type courseDoc struct {
	ID          string   `bson:"_id"`
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	Instructor  string   `bson:"instructor"`
	Difficulty  string   `bson:"difficulty"`
	Hours       int      `bson:"hours"`
	Tags        []string `bson:"tags"`
	Price       float64  `bson:"price"`
	PillIDs     []string `bson:"pill_ids"`
}

func toDoc(course *models.Course) courseDoc {
	pillIDs := make([]string, 0, len(course.PillIDs))
	for _, pid := range course.PillIDs {
		pillIDs = append(pillIDs, pid.String())
	}
	return courseDoc{
		ID:          course.ID.String(),
		Title:       course.Title,
		Description: course.Description,
		Instructor:  course.Instructor,
		Difficulty:  string(course.Difficulty),
		Hours:       course.Hours,
		Tags:        course.Tags,
		Price:       course.Price,
		PillIDs:     pillIDs,
	}
}

func (d courseDoc) toModel() (*models.Course, error) {
	courseID, err := id.ParseCourseID(d.ID)
	if err != nil {
		return nil, fmt.Errorf("course document %q: malformed stored id: %w", d.ID, err)
	}
	difficulty, err := models.ParseDifficulty(d.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("course document %q: %w", d.ID, err)
	}
	pillIDs := make([]id.PillID, 0, len(d.PillIDs))
	for _, raw := range d.PillIDs {
		pid, err := id.ParsePillID(raw)
		if err != nil {
			return nil, fmt.Errorf("course document %q: malformed stored pill id %q: %w", d.ID, raw, err)
		}
		pillIDs = append(pillIDs, pid)
	}
	return &models.Course{
		ID:          courseID,
		Title:       d.Title,
		Description: d.Description,
		Instructor:  d.Instructor,
		Difficulty:  difficulty,
		Hours:       d.Hours,
		Tags:        d.Tags,
		Price:       d.Price,
		PillIDs:     pillIDs,
	}, nil
}

// Mongo is the document-store-backed course store. One document per course,
// keyed by the stringified id; Save is an insert-or-replace filtered by that
// key, so a single save is atomic on the server side.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{collection: db.Collection(CollectionName)}
}

func (s *Mongo) Save(ctx context.Context, course *models.Course) error {
	filter := bson.M{"_id": course.ID.String()}
	_, err := s.collection.ReplaceOne(ctx, filter, toDoc(course), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save course %s: %w", course.ID, err)
	}
	return nil
}

func (s *Mongo) FindByID(ctx context.Context, courseID id.CourseID) (*models.Course, error) {
	return s.findOne(ctx, bson.M{"_id": courseID.String()})
}

// FindByTitle filters on the indexed title field; exact match only.
func (s *Mongo) FindByTitle(ctx context.Context, title string) (*models.Course, error) {
	return s.findOne(ctx, bson.M{"title": title})
}

func (s *Mongo) findOne(ctx context.Context, filter bson.M) (*models.Course, error) {
	var doc courseDoc
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	return doc.toModel()
}

func (s *Mongo) FindAll(ctx context.Context) ([]*models.Course, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find all courses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []courseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	courses := make([]*models.Course, 0, len(docs))
	for _, doc := range docs {
		course, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}
