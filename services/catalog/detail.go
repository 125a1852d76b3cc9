package catalog

import (
	"context"
	"errors"
	"sync"

	"concierge/models"
	"concierge/services/cms"

	"go.uber.org/zap"
)

// DetailStatus is the phase of a detail lookup.
type DetailStatus int

const (
	DetailLoading DetailStatus = iota
	DetailFound
	DetailNotFound
	// DetailFailed means the backend could not be read; the record may exist.
	DetailFailed
)

func (s DetailStatus) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailFound:
		return "found"
	case DetailNotFound:
		return "not_found"
	case DetailFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DetailState is the committed outcome for one identifier.
type DetailState struct {
	ID      string
	Status  DetailStatus
	Service *models.ExclusiveService
	Err     error
}

// DetailView looks up one service by route identifier and refetches when the
// identifier changes.
type DetailView struct {
	gw     cms.Gateway
	logger *zap.Logger

	mu        sync.Mutex
	parent    context.Context
	op        *Operation[*models.ExclusiveService]
	state     DetailState
	unmounted bool
}

func NewDetailView(gw cms.Gateway, logger *zap.Logger) *DetailView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailView{gw: gw, logger: logger}
}

// Mount starts the lookup for id.
func (v *DetailView) Mount(ctx context.Context, id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.parent = ctx
	v.startLocked(id)
}

// SetID switches to a new identifier, cancelling the previous lookup.
// Setting the current identifier again does nothing.
func (v *DetailView) SetID(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.parent == nil || v.unmounted || (v.op != nil && v.state.ID == id) {
		return
	}
	v.startLocked(id)
}

func (v *DetailView) startLocked(id string) {
	if v.op != nil {
		v.op.Cancel()
	}
	v.state = DetailState{ID: id, Status: DetailLoading}
	v.op = Load(v.parent, func(ctx context.Context) (*models.ExclusiveService, error) {
		return cms.GetByID[models.ExclusiveService](ctx, v.gw, models.ExclusiveServicesCollection, id)
	})
}

// Unmount cancels the pending lookup.
func (v *DetailView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmounted = true
	if v.op != nil {
		v.op.Cancel()
	}
}

// Wait blocks until the current lookup settles and returns the committed state.
func (v *DetailView) Wait(ctx context.Context) (DetailState, error) {
	v.mu.Lock()
	op := v.op
	v.mu.Unlock()
	if op == nil {
		return DetailState{}, errors.New("DetailView: not mounted")
	}
	if _, err := op.Wait(ctx); err != nil {
		return v.State(), err
	}
	return v.State(), nil
}

// State polls the view.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settleLocked()
	return v.state
}

func (v *DetailView) settleLocked() {
	if v.op == nil || v.state.Status != DetailLoading || v.unmounted {
		return
	}
	select {
	case <-v.op.Done():
	default:
		return
	}

	st := v.op.Snapshot()
	id := v.state.ID
	switch {
	case st.Status == Loaded && st.Value != nil:
		v.state = DetailState{ID: id, Status: DetailFound, Service: st.Value}
	case st.Status == Loaded, cms.IsNotFound(st.Err), errors.Is(st.Err, cms.ErrInvalidID):
		v.logger.Info("DetailView: service not found", zap.String("id", id))
		v.state = DetailState{ID: id, Status: DetailNotFound, Err: st.Err}
	case errors.Is(st.Err, context.Canceled):
		// Superseded or torn down; keep waiting for the current lookup.
	default:
		v.logger.Error("DetailView: failed to load service", zap.String("id", id), zap.Error(st.Err))
		v.state = DetailState{ID: id, Status: DetailFailed, Err: st.Err}
	}
}
