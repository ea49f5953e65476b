// Package reflow decides when content has exceeded one page's capacity and
// derives the list of page containers from the content tree. All triggers
// funnel into a single coalescing channel and passes are serialized by an
// in-flight guard, so overlapping triggers drop instead of queueing.
package reflow

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/docfolio/docfolio/internal/document"
	"github.com/docfolio/docfolio/internal/metrics"
)

// State is the document lifecycle state.
type State int

const (
	// StateLoading is the initial state before content is available.
	StateLoading State = iota
	// StateReady means content is loaded but the engine is not running.
	StateReady
	// StateEditing is the steady state between reflow passes.
	StateEditing
	// StateReflowing is held for the duration of one pass and always
	// returns to StateEditing.
	StateReflowing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEditing:
		return "editing"
	case StateReflowing:
		return "reflowing"
	}
	return "unknown"
}

// Guard serializes break insertion and reflow passes. The insertion flag is
// shared by the manual and automatic entry points; the reflow flag drops
// passes that arrive while one is in flight instead of queueing them.
type Guard struct {
	inserting atomic.Bool
	reflowing atomic.Bool
}

// Options configures the reflow engine.
type Options struct {
	Geometry metrics.Geometry
	// Interval is the periodic tick that catches changes the observer
	// missed. Zero disables the ticker.
	Interval time.Duration
}

// Engine observes content changes and derives the page list. All triggers
// (change notifications, ticker ticks, explicit kicks) funnel into a single
// coalescing channel consumed by one goroutine.
type Engine struct {
	adapter *document.Adapter
	opts    Options
	log     *zap.Logger
	guard   Guard

	// pending is the marker count a pass must observe before the insertion
	// guard may release; it keeps a pass over a stale snapshot from ending
	// the guard window early.
	pending atomic.Int64

	mu    sync.RWMutex
	state State
	pages []Page

	trigger chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewEngine creates an engine over the given adapter. The engine starts in
// StateLoading; Start moves it to StateEditing.
func NewEngine(adapter *document.Adapter, opts Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		adapter: adapter,
		opts:    opts,
		log:     log,
		state:   StateLoading,
		pages:   []Page{{Index: 1}},
		trigger: make(chan struct{}, 1),
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Pages returns the most recently derived page list. The returned pages and
// their block slices are copies detached from the engine's stored view.
func (e *Engine) Pages() []Page {
	e.mu.RLock()
	defer e.mu.RUnlock()
	pages := make([]Page, len(e.pages))
	for i, p := range e.pages {
		p.Blocks = append([]document.Block(nil), p.Blocks...)
		pages[i] = p
	}
	return pages
}

// TotalPages returns the derived page count. It always equals the break
// marker count plus one.
func (e *Engine) TotalPages() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pages)
}

// Ready marks content as loaded. It is a no-op once the engine has started.
func (e *Engine) Ready() {
	e.mu.Lock()
	if e.state == StateLoading {
		e.state = StateReady
	}
	e.mu.Unlock()
}

// Start launches the trigger collector and the pass runner. It derives an
// initial page list before returning so callers observe at least one page.
func (e *Engine) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.mu.Lock()
	e.state = StateEditing
	e.mu.Unlock()
	e.log.Info("reflow engine started",
		zap.String("doc", e.adapter.ID().String()),
		zap.Duration("interval", e.opts.Interval))

	e.RunPass()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.collect(runCtx)
	}()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-e.trigger:
				e.RunPass()
			}
		}
	}()
}

// Stop tears the engine down: the ticker is cleared, the loop context is
// cancelled and both goroutines are awaited, so no tick can fire afterwards.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
	e.mu.Lock()
	e.state = StateReady
	e.mu.Unlock()
	e.log.Info("reflow engine stopped", zap.String("doc", e.adapter.ID().String()))
}

// Kick requests a reflow pass. A request that finds one already queued is
// absorbed by it.
func (e *Engine) Kick() {
	select {
	case e.trigger <- struct{}{}:
	default:
	}
}

// collect funnels change notifications and ticker ticks into the trigger
// channel.
func (e *Engine) collect(ctx context.Context) {
	var tick <-chan time.Time
	if e.opts.Interval > 0 {
		ticker := time.NewTicker(e.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.adapter.Changes():
			e.Kick()
		case <-tick:
			e.Kick()
		}
	}
}

// InsertBreak inserts a manual break marker through the shared insertion
// guard. The guard stays held until the pass that materializes the new page
// completes, so an overlapping call inside that window is rejected. The
// return value is the accepted/rejected signal of the imperative handle.
func (e *Engine) InsertBreak() bool {
	if !e.guard.inserting.CompareAndSwap(false, true) {
		e.log.Debug("insert rejected: guard held", zap.String("doc", e.adapter.ID().String()))
		return false
	}
	if err := e.adapter.InsertBreak(); err != nil {
		e.guard.inserting.Store(false)
		e.log.Debug("insert rejected", zap.Error(err))
		return false
	}
	e.pending.Store(int64(e.adapter.MarkerCount()))
	e.Kick()
	return true
}

// RunPass executes one reflow pass synchronously. A pass that finds another
// in flight is dropped, not queued.
func (e *Engine) RunPass() {
	if !e.guard.reflowing.CompareAndSwap(false, true) {
		e.log.Debug("reflow skipped: pass in flight", zap.String("doc", e.adapter.ID().String()))
		return
	}
	defer e.guard.reflowing.Store(false)

	e.setState(StateReflowing)
	defer e.setState(StateEditing)

	snapshot := e.adapter.Snapshot()
	pages := Derive(snapshot)

	// Overflow check on the active (last non-trailing) page. The automatic
	// insertion goes through the same adapter guard as the manual one.
	last := pages[len(pages)-1]
	if !last.IsTrailing && e.overflows(last.Blocks) {
		if err := e.adapter.InsertBreak(); err != nil {
			e.log.Debug("automatic break dropped", zap.Error(err))
		} else {
			// Consume the notification this insertion just produced;
			// the re-derivation below already covers it.
			select {
			case <-e.adapter.Changes():
			default:
			}
			snapshot = e.adapter.Snapshot()
			pages = Derive(snapshot)
			e.log.Info("page overflow: automatic break inserted",
				zap.String("doc", e.adapter.ID().String()),
				zap.Int("pages", len(pages)))
		}
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()

	e.confirmInsert(document.CountMarkers(snapshot))
}

// confirmInsert releases the insertion guard once a pass has derived the
// marker inserted under it. A pass whose snapshot predates the insertion
// leaves the guard held for the follow-up pass its kick queued.
func (e *Engine) confirmInsert(markers int) {
	if int64(markers) >= e.pending.Load() {
		e.guard.inserting.Store(false)
	}
}

func (e *Engine) overflows(blocks []document.Block) bool {
	return metrics.SliceHeight(blocks, e.opts.Geometry) > e.opts.Geometry.Capacity()
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}
