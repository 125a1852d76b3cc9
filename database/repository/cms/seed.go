package cmsRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"concierge/models"
	"concierge/services/cms"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedServices replaces the exclusiveservices collection with the fixture
// records and returns how many were written.
func SeedServices(ctx context.Context, db *mongo.Database, f cms.Fixtures) (int, error) {
	var docs []interface{}
	for _, rec := range f[models.ExclusiveServicesCollection] {
		raw, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("SeedServices: %w", err)
		}
		var s models.ExclusiveService
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("SeedServices: %w", err)
		}
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("SeedServices: record %s: %w", s.ID, err)
		}
		docs = append(docs, s)
	}

	coll := db.Collection(models.ExclusiveServicesCollection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("SeedServices: failed to clear collection: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("SeedServices: failed to insert: %w", err)
	}
	return len(docs), nil
}
