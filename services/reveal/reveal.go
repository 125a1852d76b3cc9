// Package reveal drives the scroll-triggered enter transition applied to
// page blocks: invisible and offset until the block first scrolls into view,
// then visible after an optional delay.
//
// The server only emits Spec.Model() into page documents; clients run the
// transition themselves. Wrapper is the reference implementation of that
// client contract and is what Go clients of the page documents embed.
package reveal

import (
	"sync"
	"time"

	"concierge/models"
)

const (
	DefaultThreshold = 0.1
	DefaultDuration  = 700 * time.Millisecond
	InitialClass     = "opacity-0 translate-y-8"
	VisibleClass     = "is-visible"

	// StaggerStep is the extra delay per position in a grid.
	StaggerStep = 50 * time.Millisecond
)

// Spec configures one wrapped block.
type Spec struct {
	Delay     time.Duration
	Threshold float64
	Duration  time.Duration
}

// Default is the spec with no delay.
func Default() Spec {
	return Spec{Threshold: DefaultThreshold, Duration: DefaultDuration}
}

// WithDelay returns the default spec delayed by d.
func WithDelay(d time.Duration) Spec {
	s := Default()
	s.Delay = d
	return s
}

// Staggered delays the i-th block of a grid by i*StaggerStep.
func Staggered(i int) Spec {
	return WithDelay(time.Duration(i) * StaggerStep)
}

// Model is the wire form sent to clients.
func (s Spec) Model() models.RevealSpec {
	return models.RevealSpec{
		DelayMS:      s.Delay.Milliseconds(),
		Threshold:    s.Threshold,
		DurationMS:   s.Duration.Milliseconds(),
		InitialClass: InitialClass,
		VisibleClass: VisibleClass,
	}
}

// FromModel rebuilds a Spec from its wire form.
func FromModel(m models.RevealSpec) Spec {
	return Spec{
		Delay:     time.Duration(m.DelayMS) * time.Millisecond,
		Threshold: m.Threshold,
		Duration:  time.Duration(m.DurationMS) * time.Millisecond,
	}
}

// Timer is a cancellable pending call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler uses the runtime timers.
var RealScheduler Scheduler = realScheduler{}

// State of a Wrapper.
type State int

const (
	// Observing waits for the first sufficiently visible intersection.
	Observing State = iota
	// Pending has stopped observing and waits out the delay.
	Pending
	// Visible has applied the visible class; terminal.
	Visible
	// Detached was unmounted before becoming visible; terminal.
	Detached
)

func (s State) String() string {
	switch s {
	case Observing:
		return "observing"
	case Pending:
		return "pending"
	case Visible:
		return "visible"
	case Detached:
		return "detached"
	default:
		return "unknown"
	}
}

// Wrapper is the runtime state machine for one mounted block, driven by the
// RevealSpec a page document carries (see FromModel). It triggers at most once.
type Wrapper struct {
	spec  Spec
	sched Scheduler

	mu        sync.Mutex
	state     State
	timer     Timer
	onVisible func()
}

// NewWrapper starts observing. A nil scheduler means RealScheduler.
func NewWrapper(spec Spec, sched Scheduler) *Wrapper {
	if sched == nil {
		sched = RealScheduler
	}
	if spec.Threshold <= 0 {
		spec.Threshold = DefaultThreshold
	}
	return &Wrapper{spec: spec, sched: sched}
}

// OnVisible registers a callback run when the visible class is applied.
func (w *Wrapper) OnVisible(f func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onVisible = f
}

// Observe feeds an intersection ratio. The first ratio at or above the
// threshold ends observation and schedules the transition.
func (w *Wrapper) Observe(ratio float64) {
	w.mu.Lock()
	if w.state != Observing || ratio < w.spec.Threshold {
		w.mu.Unlock()
		return
	}
	w.state = Pending
	if w.spec.Delay > 0 {
		w.timer = w.sched.AfterFunc(w.spec.Delay, w.fire)
		w.mu.Unlock()
		return
	}
	cb := w.showLocked()
	w.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (w *Wrapper) fire() {
	w.mu.Lock()
	if w.state != Pending {
		w.mu.Unlock()
		return
	}
	cb := w.showLocked()
	w.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (w *Wrapper) showLocked() func() {
	w.state = Visible
	w.timer = nil
	return w.onVisible
}

// Unmount tears down observation and cancels a pending transition.
func (w *Wrapper) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.state != Visible {
		w.state = Detached
	}
}

func (w *Wrapper) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Wrapper) Visible() bool {
	return w.State() == Visible
}

// Classes returns the class list the wrapped element should carry now.
func (w *Wrapper) Classes() string {
	if w.Visible() {
		return InitialClass + " " + VisibleClass
	}
	return InitialClass
}
