//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"pillbox/pkg/testutil/containers"
)

func TestMongoCourseStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &CourseStoreSuite{
		newStore: func(t *testing.T) Store {
			mc := containers.GetMongo(t)
			db := mc.FreshDatabase(t)
			return NewMongo(db)
		},
	})
}

// TestMongo_MalformedStoredPillID verifies that a course document carrying a
// corrupt pill reference decodes to an error, not a silently shortened list.
func TestMongo_MalformedStoredPillID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	mc := containers.GetMongo(t)
	db := mc.FreshDatabase(t)
	s := NewMongo(db)

	course := newTestCourse("Corrupted")
	require.NoError(t, s.Save(ctx, course))

	_, err := db.Collection(CollectionName).UpdateOne(ctx,
		bson.M{"_id": course.ID.String()},
		bson.M{"$set": bson.M{"pill_ids": []string{"not-a-uuid"}}},
	)
	require.NoError(t, err)

	_, err = s.FindByID(ctx, course.ID)
	require.Error(t, err)
}
