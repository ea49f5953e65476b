package api

import (
	"time"

	"go.uber.org/zap"
)

// Options represents configuration options for an editing session.
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Page margins in points
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// Text metrics used by the height heuristic
	FontSize   float64
	LineHeight float64

	// Page chrome
	Title string
	Stamp string
	Year  int

	// ReflowInterval is the periodic trigger that catches changes the
	// observer missed. Zero disables the timer.
	ReflowInterval time.Duration

	// Logger receives engine diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// Standard page sizes in points (1/72 inch).
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89

	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// DefaultOptions returns the default options: US Legal paper, one-inch
// margins, 12pt body text with 1.5 line height.
func DefaultOptions() Options {
	return Options{
		PageWidth:  PageSizeLegalWidth,
		PageHeight: PageSizeLegalHeight,

		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 72,
		MarginLeft:   72,

		FontSize:   12,
		LineHeight: 1.5,

		Title: "Untitled Document",
		Stamp: "Confidential",
		Year:  time.Now().Year(),

		ReflowInterval: 250 * time.Millisecond,
	}
}

// WithPageSize sets the page size.
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeA4 sets the page size to A4.
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter.
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal.
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// WithMargins sets the page margins.
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithTextMetrics sets the body font size and line-height multiplier used by
// the height heuristic.
func WithTextMetrics(fontSize, lineHeight float64) Option {
	return func(o *Options) {
		o.FontSize = fontSize
		o.LineHeight = lineHeight
	}
}

// WithTitle sets the document title used in the page header.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithStamp sets the confidentiality stamp used in the page footer.
func WithStamp(stamp string) Option {
	return func(o *Options) {
		o.Stamp = stamp
	}
}

// WithYear sets the year used in the page footer.
func WithYear(year int) Option {
	return func(o *Options) {
		o.Year = year
	}
}

// WithReflowInterval sets the periodic reflow trigger interval.
func WithReflowInterval(d time.Duration) Option {
	return func(o *Options) {
		o.ReflowInterval = d
	}
}

// WithLogger sets the logger for engine diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}
