package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	queryPath = "/wix-data/v2/items/query"
	itemsPath = "/wix-data/v2/items/"
	// pageSize is the largest page the hosted data API hands out per query.
	pageSize = 1000
)

// HTTPConfig configures HTTPGateway.
type HTTPConfig struct {
	BaseURL string
	APIKey  string
	SiteID  string
	Timeout time.Duration
}

// HTTPGateway reads collections from the hosted CMS data REST API.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	siteID  string
	client  *http.Client
}

// NewHTTPGateway builds a gateway against cfg.BaseURL.
func NewHTTPGateway(cfg HTTPConfig) *HTTPGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		siteID:  cfg.SiteID,
		client:  &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	DataCollectionID string    `json:"dataCollectionId"`
	Query            queryBody `json:"query"`
}

type queryBody struct {
	Filter Filter `json:"filter,omitempty"`
	Paging paging `json:"paging"`
}

type paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type dataItem struct {
	ID   string                     `json:"id"`
	Data map[string]json.RawMessage `json:"data"`
}

type queryResponse struct {
	DataItems      []dataItem `json:"dataItems"`
	PagingMetadata *struct {
		Count   int  `json:"count"`
		HasNext bool `json:"hasNext"`
	} `json:"pagingMetadata"`
}

type getResponse struct {
	DataItem *dataItem `json:"dataItem"`
}

func (g *HTTPGateway) GetAll(ctx context.Context, collection string, filter Filter, opts *ListOptions) ([]Document, error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}

	limit, offset := 0, 0
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		if opts.Offset > 0 {
			offset = opts.Offset
		}
	}

	var docs []Document
	for {
		size := pageSize
		if limit > 0 && limit-len(docs) < size {
			size = limit - len(docs)
		}
		body := queryRequest{
			DataCollectionID: collection,
			Query:            queryBody{Filter: filter, Paging: paging{Limit: size, Offset: offset}},
		}
		var resp queryResponse
		if err := g.do(ctx, http.MethodPost, g.baseURL+queryPath, body, &resp); err != nil {
			return nil, wrapFetch(err, "getAll", collection, "")
		}
		for _, item := range resp.DataItems {
			raw, err := item.document()
			if err != nil {
				return nil, &FetchError{Op: "getAll", Collection: collection, Err: err}
			}
			docs = append(docs, raw)
		}

		n := len(resp.DataItems)
		offset += n
		hasNext := n == size
		if resp.PagingMetadata != nil {
			hasNext = resp.PagingMetadata.HasNext
		}
		if n == 0 || !hasNext || (limit > 0 && len(docs) >= limit) {
			break
		}
	}
	return docs, nil
}

func (g *HTTPGateway) GetByID(ctx context.Context, collection, id string) (Document, error) {
	if err := CheckCollection(collection); err != nil {
		return nil, err
	}
	if err := CheckID(id); err != nil {
		return nil, err
	}

	endpoint := g.baseURL + itemsPath + url.PathEscape(id) + "?dataCollectionId=" + url.QueryEscape(collection)
	var resp getResponse
	if err := g.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, wrapFetch(err, "getById", collection, id)
	}
	if resp.DataItem == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	doc, err := resp.DataItem.document()
	if err != nil {
		return nil, &FetchError{Op: "getById", Collection: collection, ID: id, Err: err}
	}
	return doc, nil
}

// Ping issues a one-record query against the first registered collection.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	names := Collections()
	if len(names) == 0 {
		return nil
	}
	_, err := g.GetAll(ctx, names[0], nil, &ListOptions{Limit: 1})
	return err
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.status, e.body)
}

func (g *HTTPGateway) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.apiKey != "" {
		req.Header.Set("Authorization", g.apiKey)
	}
	if g.siteID != "" {
		req.Header.Set("wix-site-id", g.siteID)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(snippet))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func wrapFetch(err error, op, collection, id string) error {
	if se, ok := err.(*statusError); ok {
		if se.status == http.StatusNotFound && id != "" {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
		}
		return &FetchError{Op: op, Collection: collection, ID: id, Status: se.status, Err: se}
	}
	return &FetchError{Op: op, Collection: collection, ID: id, Err: err}
}

// document flattens the API envelope into the record fields, unwrapping
// {"$date": "..."} values and filling "_id" from the envelope when absent.
func (d dataItem) document() (Document, error) {
	fields := make(map[string]any, len(d.Data)+1)
	for k, raw := range d.Data {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		fields[k] = unwrapDates(v)
	}
	if _, ok := fields["_id"]; !ok && d.ID != "" {
		fields["_id"] = d.ID
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return jsonDocument(raw), nil
}

func unwrapDates(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if d, ok := t["$date"]; ok && len(t) == 1 {
			return d
		}
		for k, inner := range t {
			t[k] = unwrapDates(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = unwrapDates(inner)
		}
		return t
	default:
		return v
	}
}
