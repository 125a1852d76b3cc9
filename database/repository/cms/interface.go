package cmsRepo

import (
	"concierge/services/cms"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoGateway struct {
	db *mongo.Database
}

// NewMongoGateway returns a cms.Gateway reading collections from db.
// Each CMS collection maps onto the Mongo collection of the same name.
func NewMongoGateway(db *mongo.Database) cms.Gateway {
	return &mongoGateway{db: db}
}
