package utils

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is anything whose liveness can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	OK        bool            `json:"ok"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor pings dependencies on a cron schedule and keeps the latest result.
type HealthMonitor struct {
	checks map[string]Pinger
	logger *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
	cron    *cron.Cron
}

func NewHealthMonitor(checks map[string]Pinger, logger *zap.Logger) *HealthMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthMonitor{checks: checks, logger: logger}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings every dependency once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	st := HealthStatus{OK: true, Checks: make(map[string]bool, len(h.checks)), CheckedAt: time.Now()}
	for name, p := range h.checks {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := p.Ping(pctx)
		cancel()
		st.Checks[name] = err == nil
		if err != nil {
			st.OK = false
			h.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	h.mu.Lock()
	h.current = st
	h.mu.Unlock()
	return st
}

// Start runs an immediate check and then one per schedule tick.
func (h *HealthMonitor) Start(schedule string) error {
	h.Check(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { h.Check(context.Background()) }); err != nil {
		return err
	}
	c.Start()
	h.mu.Lock()
	h.cron = c
	h.mu.Unlock()
	return nil
}

// Stop halts the schedule and waits for a running check.
func (h *HealthMonitor) Stop() {
	h.mu.Lock()
	c := h.cron
	h.cron = nil
	h.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}
