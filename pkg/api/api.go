package api

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/docfolio/docfolio/internal/chrome"
	"github.com/docfolio/docfolio/internal/document"
	"github.com/docfolio/docfolio/internal/metrics"
	"github.com/docfolio/docfolio/internal/parser/docx"
	"github.com/docfolio/docfolio/internal/parser/html"
	"github.com/docfolio/docfolio/internal/parser/markdown"
	"github.com/docfolio/docfolio/internal/reflow"
	"github.com/docfolio/docfolio/internal/render/htmlout"
	"github.com/docfolio/docfolio/internal/render/pdf"
)

// Page is one derived page container.
type Page = reflow.Page

// State is the document lifecycle state.
type State = reflow.State

// Lifecycle states of a session.
const (
	StateLoading   = reflow.StateLoading
	StateReady     = reflow.StateReady
	StateEditing   = reflow.StateEditing
	StateReflowing = reflow.StateReflowing
)

// Session is an editing session over one paginated document. It owns the
// document adapter and the reflow engine and is the control surface a host
// UI drives.
type Session struct {
	opts    Options
	log     *zap.Logger
	adapter *document.Adapter
	engine  *reflow.Engine
	open    bool
}

// New creates a session with default options.
func New() *Session {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a session with the specified options.
func NewWithOptions(options Options, opts ...Option) *Session {
	for _, opt := range opts {
		opt(&options)
	}
	log := options.Logger
	if log == nil {
		log = zap.NewNop()
	}
	adapter := document.NewAdapter(log)
	engine := reflow.NewEngine(adapter, reflow.Options{
		Geometry: geometry(options),
		Interval: options.ReflowInterval,
	}, log)
	return &Session{
		opts:    options,
		log:     log,
		adapter: adapter,
		engine:  engine,
	}
}

func geometry(o Options) metrics.Geometry {
	return metrics.Geometry{
		PageWidth:    o.PageWidth,
		PageHeight:   o.PageHeight,
		MarginTop:    o.MarginTop,
		MarginRight:  o.MarginRight,
		MarginBottom: o.MarginBottom,
		MarginLeft:   o.MarginLeft,
		FontSize:     o.FontSize,
		LineHeight:   o.LineHeight,
	}
}

// load replaces the session content with a parsed source document. A
// non-empty source title overrides the configured one.
func (s *Session) load(src *document.Source) {
	if src.Title != "" {
		s.opts.Title = src.Title
	}
	s.adapter.Load(src)
	s.engine.Ready()
}

// LoadFile loads a document from disk, choosing the parser by extension
// (.html/.htm, .md/.markdown, .docx).
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return s.LoadReader(f, filepath.Base(path))
}

// LoadReader loads a document from r, choosing the parser from the name's
// extension.
func (s *Session) LoadReader(r io.Reader, name string) error {
	var (
		src *document.Source
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		src, err = html.NewParser().Parse(r, name)
	case ".md", ".markdown":
		src, err = markdown.NewParser().Parse(r, name)
	case ".docx":
		src, err = docx.NewParser().Parse(r, name)
	default:
		return fmt.Errorf("unsupported document format %q", filepath.Ext(name))
	}
	if err != nil {
		return err
	}
	s.load(src)
	return nil
}

// Open starts the reflow engine. The session moves to the editing state and
// stays there until Close.
func (s *Session) Open(ctx context.Context) {
	if s.open {
		return
	}
	s.engine.Start(ctx)
	s.open = true
}

// Close tears the session down. Pending timer ticks are suppressed before
// return.
func (s *Session) Close() {
	if !s.open {
		return
	}
	s.engine.Stop()
	s.open = false
}

// InsertBreak inserts a manual page break at the edit position and reports
// whether the request was accepted. A call made while a prior insertion is
// still in flight is rejected.
func (s *Session) InsertBreak() bool {
	return s.engine.InsertBreak()
}

// HandleKey maps a keyboard chord to an editing action. "ctrl+enter" and
// "cmd+enter" insert a manual page break; any other chord is ignored and
// reported as unhandled.
func (s *Session) HandleKey(chord string) bool {
	switch strings.ToLower(strings.TrimSpace(chord)) {
	case "ctrl+enter", "cmd+enter":
		return s.InsertBreak()
	}
	return false
}

// AppendParagraph appends body text to the document.
func (s *Session) AppendParagraph(text string) error {
	return s.adapter.AppendParagraph(text)
}

// AppendHeading appends a heading to the document.
func (s *Session) AppendHeading(level int, text string) error {
	return s.adapter.AppendHeading(level, text)
}

// SetEditable toggles whether the document accepts mutations.
func (s *Session) SetEditable(editable bool) {
	s.adapter.SetEditable(editable)
}

// Reflow runs one synchronous reflow pass. Hosts that do not run the
// background engine can paginate on demand with this.
func (s *Session) Reflow() {
	s.engine.RunPass()
}

// Settle runs reflow passes until the page count stabilizes, bounded by
// maxPasses. Batch hosts use this to paginate a whole document at once.
func (s *Session) Settle(maxPasses int) {
	prev := -1
	for i := 0; i < maxPasses; i++ {
		s.engine.RunPass()
		n := s.engine.TotalPages()
		if n == prev {
			return
		}
		prev = n
	}
}

// Pages returns the current derived page list.
func (s *Session) Pages() []Page {
	return s.engine.Pages()
}

// TotalPages returns the derived page count.
func (s *Session) TotalPages() int {
	return s.engine.TotalPages()
}

// State returns the document lifecycle state.
func (s *Session) State() State {
	return s.engine.State()
}

// Title returns the effective document title.
func (s *Session) Title() string {
	return s.opts.Title
}

// SetTitle overrides the document title used in the page header.
func (s *Session) SetTitle(title string) {
	s.opts.Title = title
}

// RenderHTML writes the current page containers as HTML to w.
func (s *Session) RenderHTML(w io.Writer) error {
	r := htmlout.NewRenderer(s.chrome())
	return r.Render(w, s.engine.Pages())
}

// ExportPDF writes the current page containers to a PDF file.
func (s *Session) ExportPDF(outputPath string) error {
	r := pdf.NewRenderer(geometry(s.opts), s.chrome())
	return r.Render(s.engine.Pages(), outputPath)
}

func (s *Session) chrome() chrome.Chrome {
	return chrome.Chrome{
		Title: s.opts.Title,
		Stamp: s.opts.Stamp,
		Year:  s.opts.Year,
	}
}
