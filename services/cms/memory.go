package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MemoryGateway serves collections held in process memory, in insertion order.
// It backs local development and tests.
type MemoryGateway struct {
	mu          sync.RWMutex
	collections map[string][]memoryRecord
}

type memoryRecord struct {
	id  string
	raw json.RawMessage
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{collections: make(map[string][]memoryRecord)}
}

// Put stores v in collection. A record without an "_id" gets a fresh uuid,
// numeric or boolean ids are kept as their string form, and a record whose
// id already exists replaces it in place.
func (m *MemoryGateway) Put(collection string, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("MemoryGateway.Put: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("MemoryGateway.Put: record must be an object: %w", err)
	}
	var id string
	switch key := fields["_id"].(type) {
	case string:
		id = key
	case float64, bool:
		id = fmt.Sprint(key)
	case nil:
	default:
		return "", fmt.Errorf("MemoryGateway.Put: _id must be a scalar, got %T", key)
	}
	if id == "" {
		id = uuid.New().String()
	}
	if stored, _ := fields["_id"].(string); stored != id {
		fields["_id"] = id
		if raw, err = json.Marshal(fields); err != nil {
			return "", fmt.Errorf("MemoryGateway.Put: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.collections[collection]
	for i := range recs {
		if recs[i].id == id {
			recs[i].raw = raw
			return id, nil
		}
	}
	m.collections[collection] = append(recs, memoryRecord{id: id, raw: raw})
	return id, nil
}

// Fixtures maps collection names to raw records using CMS field names.
type Fixtures map[string][]map[string]any

// ReadFixtures parses a YAML fixture document.
func ReadFixtures(r io.Reader) (Fixtures, error) {
	var f Fixtures
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return Fixtures{}, nil
		}
		return nil, fmt.Errorf("cms: parse fixtures: %w", err)
	}
	return f, nil
}

// ReadFixturesFile parses the YAML fixture file at path.
func ReadFixturesFile(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFixtures(f)
}

// Load stores every fixture record.
func (m *MemoryGateway) Load(f Fixtures) error {
	for collection, records := range f {
		for _, rec := range records {
			if _, err := m.Put(collection, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *MemoryGateway) GetAll(ctx context.Context, collection string, filter Filter, opts *ListOptions) ([]Document, error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "getAll", Collection: collection, Err: err}
	}

	skip := 0
	if opts != nil {
		skip = opts.Offset
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var docs []Document
	for _, rec := range m.collections[collection] {
		if opts != nil && opts.Limit > 0 && len(docs) == opts.Limit {
			break
		}
		ok, err := matches(rec.raw, filter)
		if err != nil {
			return nil, &FetchError{Op: "getAll", Collection: collection, Err: err}
		}
		if !ok {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		docs = append(docs, jsonDocument(rec.raw))
	}
	return docs, nil
}

func (m *MemoryGateway) GetByID(ctx context.Context, collection, id string) (Document, error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}
	if err := CheckID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "getById", Collection: collection, ID: id, Err: err}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.collections[collection] {
		if rec.id == id {
			return jsonDocument(rec.raw), nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
}

func (m *MemoryGateway) Ping(ctx context.Context) error {
	return ctx.Err()
}

func matches(raw json.RawMessage, filter Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, err
	}
	for k, want := range filter {
		got, ok := fields[k]
		if !ok {
			return false, nil
		}
		wantRaw, err := json.Marshal(want)
		if err != nil {
			return false, err
		}
		if !bytes.Equal(bytes.TrimSpace(got), wantRaw) {
			return false, nil
		}
	}
	return true, nil
}
