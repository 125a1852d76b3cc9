package cmsRepo

import (
	"context"
	"errors"
	"fmt"

	"concierge/services/cms"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bsonDocument bson.Raw

func (d bsonDocument) Decode(v any) error {
	return bson.Unmarshal(d, v)
}

// GetAll returns the records of collection matching filter, in natural order.
func (r *mongoGateway) GetAll(ctx context.Context, collection string, filter cms.Filter, opts *cms.ListOptions) ([]cms.Document, error) {
	if err := cms.CheckCollection(collection); err != nil {
		return nil, err
	}

	findOpts := options.Find()
	if opts != nil && opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts != nil && opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}

	cursor, err := r.db.Collection(collection).Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return nil, &cms.FetchError{Op: "getAll", Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	var docs []cms.Document
	for cursor.Next(ctx) {
		// cursor.Current is reused by the driver between iterations.
		raw := make(bson.Raw, len(cursor.Current))
		copy(raw, cursor.Current)
		docs = append(docs, bsonDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, &cms.FetchError{Op: "getAll", Collection: collection, Err: err}
	}
	return docs, nil
}

// GetByID returns the record whose _id equals id.
func (r *mongoGateway) GetByID(ctx context.Context, collection, id string) (cms.Document, error) {
	if err := cms.CheckCollection(collection); err != nil {
		return nil, err
	}
	if err := cms.CheckID(id); err != nil {
		return nil, err
	}

	raw, err := r.db.Collection(collection).FindOne(ctx, idFilter(id)).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s/%s", cms.ErrNotFound, collection, id)
		}
		return nil, &cms.FetchError{Op: "getById", Collection: collection, ID: id, Err: err}
	}
	return bsonDocument(raw), nil
}

// Ping checks the server behind the content database.
func (r *mongoGateway) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}

// idFilter matches id as a string key and, when it is ObjectID hex, as the
// ObjectID listing decoded it from.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

func toBSON(filter cms.Filter) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = v
	}
	return out
}
