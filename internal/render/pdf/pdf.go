// Package pdf exports derived pages to a PDF file. One derived page becomes
// one PDF page; header and footer lines come from the chrome.
package pdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/docfolio/docfolio/internal/chrome"
	"github.com/docfolio/docfolio/internal/document"
	"github.com/docfolio/docfolio/internal/metrics"
	"github.com/docfolio/docfolio/internal/reflow"
)

// Renderer writes page containers to PDF.
type Renderer struct {
	Geometry metrics.Geometry
	Chrome   chrome.Chrome
}

// NewRenderer creates a PDF renderer for the given page geometry and chrome.
func NewRenderer(geom metrics.Geometry, c chrome.Chrome) *Renderer {
	return &Renderer{Geometry: geom, Chrome: c}
}

// Render writes all pages to outputPath.
func (r *Renderer) Render(pages []reflow.Page, outputPath string) error {
	g := r.Geometry

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetTitle(r.Chrome.Title, true)
	pdf.SetCreator("docfolio", true)
	pdf.SetProducer("docfolio", true)
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	total := len(pages)
	for _, page := range pages {
		pdf.AddPage()
		r.renderChromeLine(pdf, tr, r.Chrome.Header(page.Index, total), g.MarginTop/2)
		r.renderBody(pdf, tr, page.Blocks)
		r.renderChromeLine(pdf, tr, r.Chrome.Footer(page.Index, total), g.PageHeight-g.MarginBottom/2)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *Renderer) renderChromeLine(pdf *fpdf.Fpdf, tr func(string) string, line string, y float64) {
	g := r.Geometry
	pdf.SetFont("Times", "I", g.FontSize*0.75)
	pdf.SetXY(g.MarginLeft, y)
	pdf.CellFormat(g.ContentWidth(), g.FontSize, tr(line), "", 0, "C", false, 0, "")
}

func (r *Renderer) renderBody(pdf *fpdf.Fpdf, tr func(string) string, blocks []document.Block) {
	g := r.Geometry
	y := g.MarginTop
	for _, b := range blocks {
		size := g.FontSize
		style := ""
		if b.Kind == document.KindHeading {
			size = g.FontSize * headingScale(b.Level)
			style = "B"
		}
		pdf.SetFont("Times", style, size)
		pdf.SetXY(g.MarginLeft, y)
		pdf.MultiCell(g.ContentWidth(), size*g.LineHeight, tr(b.Text), "", "L", false)
		y = pdf.GetY() + size
	}
}

func headingScale(level int) float64 {
	switch level {
	case 1:
		return 2.0
	case 2:
		return 1.5
	case 3:
		return 1.17
	case 5:
		return 0.83
	case 6:
		return 0.75
	}
	return 1.0
}
