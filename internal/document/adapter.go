package document

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInsertInFlight is returned when a break insertion is attempted while
// another insertion has not finished yet.
var ErrInsertInFlight = errors.New("document: break insertion already in flight")

// ErrNotEditable is returned when a mutation is attempted while the editing
// surface is not editable.
var ErrNotEditable = errors.New("document: surface is not editable")

// Adapter owns the content tree and is the only component allowed to mutate
// it. Every successful mutation emits a coalescing change notification that
// the reflow engine observes.
type Adapter struct {
	id  uuid.UUID
	log *zap.Logger

	mu       sync.Mutex
	blocks   []Block
	title    string
	editable bool

	inserting atomic.Bool
	changes   chan struct{}
}

// NewAdapter creates an empty, editable document adapter.
func NewAdapter(log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		id:       uuid.New(),
		log:      log,
		editable: true,
		changes:  make(chan struct{}, 1),
	}
}

// ID returns the document identity.
func (a *Adapter) ID() uuid.UUID { return a.id }

// Changes returns the change notification channel. Notifications coalesce:
// a pending notification that has not been consumed absorbs later ones.
func (a *Adapter) Changes() <-chan struct{} { return a.changes }

// Title returns the document title.
func (a *Adapter) Title() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.title
}

// Load replaces the content tree with a parsed source document.
func (a *Adapter) Load(src *Source) {
	a.mu.Lock()
	a.title = src.Title
	a.blocks = append([]Block(nil), src.Blocks...)
	a.mu.Unlock()
	a.log.Info("document loaded",
		zap.String("doc", a.id.String()),
		zap.String("title", src.Title),
		zap.Int("blocks", len(src.Blocks)))
	a.notify()
}

// Snapshot returns a read-only copy of the content tree.
func (a *Adapter) Snapshot() []Block {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Block(nil), a.blocks...)
}

// MarkerCount returns the number of break markers in the tree.
func (a *Adapter) MarkerCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return CountMarkers(a.blocks)
}

// SetEditable toggles whether mutations are accepted.
func (a *Adapter) SetEditable(editable bool) {
	a.mu.Lock()
	a.editable = editable
	a.mu.Unlock()
}

// Editable reports whether the surface currently accepts mutations.
func (a *Adapter) Editable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editable
}

// AppendParagraph appends a paragraph block at the end of the tree.
func (a *Adapter) AppendParagraph(text string) error {
	return a.append(Paragraph(text))
}

// AppendHeading appends a heading block at the end of the tree.
func (a *Adapter) AppendHeading(level int, text string) error {
	return a.append(Heading(level, text))
}

// InsertBreak inserts one break marker at the current edit position (the end
// of the tree). It is a guarded no-op when another insertion is in flight or
// the surface is not editable.
func (a *Adapter) InsertBreak() error {
	if !a.inserting.CompareAndSwap(false, true) {
		a.log.Debug("insert rejected: insertion in flight", zap.String("doc", a.id.String()))
		return ErrInsertInFlight
	}
	defer a.inserting.Store(false)

	a.mu.Lock()
	if !a.editable {
		a.mu.Unlock()
		a.log.Debug("insert rejected: surface not editable", zap.String("doc", a.id.String()))
		return ErrNotEditable
	}
	a.blocks = append(a.blocks, BreakMarker())
	a.mu.Unlock()
	a.notify()
	return nil
}

func (a *Adapter) append(b Block) error {
	a.mu.Lock()
	if !a.editable {
		a.mu.Unlock()
		return ErrNotEditable
	}
	a.blocks = append(a.blocks, b)
	a.mu.Unlock()
	a.notify()
	return nil
}

// notify delivers a change notification without blocking. A full channel
// means an unconsumed notification already covers this change.
func (a *Adapter) notify() {
	select {
	case a.changes <- struct{}{}:
	default:
	}
}
