// Package docfolio is a pagination engine for legal documents: it maintains
// a content tree of paragraphs, headings and page-break markers, derives
// fixed-capacity page containers from it, and renders them with per-page
// header/footer chrome.
package docfolio

import (
	"github.com/docfolio/docfolio/pkg/api"
)

type Session = api.Session
type Options = api.Options
type Option = api.Option
type Page = api.Page
type State = api.State

func New() *Session { return api.New() }

func NewWithOptions(options Options, opts ...Option) *Session {
	return api.NewWithOptions(options, opts...)
}

func DefaultOptions() Options { return api.DefaultOptions() }

var (
	WithPageSize       = api.WithPageSize
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
	WithMargins        = api.WithMargins
	WithTextMetrics    = api.WithTextMetrics
	WithTitle          = api.WithTitle
	WithStamp          = api.WithStamp
	WithYear           = api.WithYear
	WithReflowInterval = api.WithReflowInterval
	WithLogger         = api.WithLogger
)

const (
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
