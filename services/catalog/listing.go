package catalog

import (
	"context"
	"errors"
	"sync"

	"concierge/models"
	"concierge/services/cms"

	"go.uber.org/zap"
)

// Listing is what a listing page shows for one set of criteria.
type Listing struct {
	Status       LoadStatus
	Items        []models.ExclusiveService
	Categories   []string
	Criteria     Criteria
	EmptyMessage string
}

// ListingView loads a collection once per mount and filters the fetched
// snapshot in memory. Fetch failures are logged and leave the view loaded
// with no items.
type ListingView struct {
	gw     cms.Gateway
	logger *zap.Logger
	limit  int

	mu         sync.Mutex
	op         *Operation[[]models.ExclusiveService]
	settled    bool
	unmounted  bool
	items      []models.ExclusiveService
	categories []string
	err        error
}

// NewListingView returns a view over the full services collection.
func NewListingView(gw cms.Gateway, logger *zap.Logger) *ListingView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingView{gw: gw, logger: logger, categories: []string{AllCategory}}
}

// NewFeaturedView returns a view that requests at most limit services.
func NewFeaturedView(gw cms.Gateway, logger *zap.Logger, limit int) *ListingView {
	v := NewListingView(gw, logger)
	v.limit = limit
	return v
}

// Mount starts the single fetch for this view. Calling it again is a no-op.
func (v *ListingView) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.op != nil || v.unmounted {
		return
	}
	var opts *cms.ListOptions
	if v.limit > 0 {
		opts = &cms.ListOptions{Limit: v.limit}
	}
	v.op = Load(ctx, func(ctx context.Context) ([]models.ExclusiveService, error) {
		res, err := cms.GetAll[models.ExclusiveService](ctx, v.gw, models.ExclusiveServicesCollection, nil, opts)
		if err != nil {
			return nil, err
		}
		if res.Dropped > 0 {
			v.logger.Warn("ListingView: dropped invalid service records", zap.Int("dropped", res.Dropped))
		}
		return res.Items, nil
	})
}

// Unmount cancels an in-flight fetch; its result will not be committed.
func (v *ListingView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmounted = true
	if v.op != nil {
		v.op.Cancel()
	}
}

// Wait blocks until the fetch settles, then commits it.
func (v *ListingView) Wait(ctx context.Context) error {
	v.mu.Lock()
	op := v.op
	v.mu.Unlock()
	if op == nil {
		return errors.New("ListingView: not mounted")
	}
	if _, err := op.Wait(ctx); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settleLocked()
	return nil
}

// Status polls the view: Loading until the fetch has been committed.
func (v *ListingView) Status() LoadStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settleLocked()
	if v.settled {
		return Loaded
	}
	return Loading
}

// Err is the swallowed fetch error, if any. It never reaches the page.
func (v *ListingView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Categories returns "all" followed by the fetched categories in first-seen order.
func (v *ListingView) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settleLocked()
	out := make([]string, len(v.categories))
	copy(out, v.categories)
	return out
}

// Apply filters the committed snapshot. It never triggers a fetch.
func (v *ListingView) Apply(c Criteria) Listing {
	c = c.Normalize()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.settleLocked()

	l := Listing{Status: Loading, Criteria: c, Categories: append([]string(nil), v.categories...)}
	if !v.settled {
		return l
	}
	l.Status = Loaded
	l.Items = Filter(v.items, c)
	if len(l.Items) == 0 {
		l.EmptyMessage = EmptyMessage(c)
	}
	return l
}

func (v *ListingView) settleLocked() {
	if v.settled || v.op == nil {
		return
	}
	select {
	case <-v.op.Done():
	default:
		return
	}

	st := v.op.Snapshot()
	if v.unmounted {
		// Nothing is left to update.
		return
	}
	switch st.Status {
	case Loaded:
		v.items = st.Value
		v.categories = DeriveCategories(st.Value)
	case Failed:
		v.err = st.Err
		v.logger.Error("ListingView: failed to load services",
			zap.String("collection", models.ExclusiveServicesCollection),
			zap.Int("limit", v.limit),
			zap.Error(st.Err))
	}
	v.settled = true
}
