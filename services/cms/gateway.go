// Package cms is the read-only gateway to the hosted content backend.
// Every call is a fresh read; nothing here caches.
package cms

import (
	"context"
	"encoding/json"
)

// Document is one record as returned by a backend, decoded lazily into the
// caller's type.
type Document interface {
	Decode(v any) error
}

// Filter is a field to value equality match. A nil or empty filter selects
// every record in the collection.
type Filter map[string]any

// ListOptions shapes a GetAll call.
type ListOptions struct {
	// Limit caps the number of records; zero or negative returns the whole collection.
	Limit int
	// Offset skips that many matching records.
	Offset int
}

// Gateway reads collections from the content backend.
type Gateway interface {
	GetAll(ctx context.Context, collection string, filter Filter, opts *ListOptions) ([]Document, error)
	GetByID(ctx context.Context, collection, id string) (Document, error)
	Ping(ctx context.Context) error
}

// Result is the typed outcome of GetAll.
type Result[T any] struct {
	Items []T
	// Dropped counts records skipped for failing validation or repeating an id.
	Dropped int
}

type validatable interface {
	Validate() error
}

type keyed interface {
	Key() string
}

// GetAll fetches a collection and decodes each record into T. Records whose
// T reports a validation error, or whose key was already seen, are dropped.
// With a limit, dropped records are made up for by reading further pages
// until the limit is met or the collection runs out.
func GetAll[T any](ctx context.Context, gw Gateway, collection string, filter Filter, opts *ListOptions) (*Result[T], error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}

	limit, offset := 0, 0
	if opts != nil {
		limit, offset = opts.Limit, opts.Offset
	}

	res := &Result[T]{}
	seen := make(map[string]struct{})
	for {
		page := &ListOptions{Offset: offset}
		if limit > 0 {
			page.Limit = limit - len(res.Items)
		}
		docs, err := gw.GetAll(ctx, collection, filter, page)
		if err != nil {
			return nil, err
		}

		dups := 0
		for _, doc := range docs {
			var item T
			if err := doc.Decode(&item); err != nil {
				return nil, &FetchError{Op: "getAll", Collection: collection, Err: err}
			}
			if v, ok := any(item).(validatable); ok && v.Validate() != nil {
				res.Dropped++
				continue
			}
			if k, ok := any(item).(keyed); ok {
				if _, dup := seen[k.Key()]; dup {
					res.Dropped++
					dups++
					continue
				}
				seen[k.Key()] = struct{}{}
			}
			res.Items = append(res.Items, item)
		}

		// A short page means the collection is exhausted; a page of nothing
		// but repeats means the backend is not honouring the offset.
		if limit <= 0 || len(res.Items) >= limit || len(docs) < page.Limit || dups == len(docs) {
			break
		}
		offset += len(docs)
	}
	if limit > 0 && len(res.Items) > limit {
		res.Items = res.Items[:limit]
	}
	if res.Items == nil {
		res.Items = []T{}
	}
	return res, nil
}

// GetByID fetches and decodes a single record.
func GetByID[T any](ctx context.Context, gw Gateway, collection, id string) (*T, error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}
	if err := CheckID(id); err != nil {
		return nil, err
	}
	doc, err := gw.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	var item T
	if err := doc.Decode(&item); err != nil {
		return nil, &FetchError{Op: "getById", Collection: collection, ID: id, Err: err}
	}
	if v, ok := any(item).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, &FetchError{Op: "getById", Collection: collection, ID: id, Err: err}
		}
	}
	return &item, nil
}

type jsonDocument json.RawMessage

func (d jsonDocument) Decode(v any) error {
	return json.Unmarshal(d, v)
}

// JSONDocument wraps raw JSON as a Document.
func JSONDocument(raw []byte) Document {
	return jsonDocument(raw)
}
