// Package chrome derives per-page header and footer text. It holds no state
// of its own: every string is a pure function of the document chrome and the
// page numbering.
package chrome

import "fmt"

// Chrome is the static text surrounding each page.
type Chrome struct {
	Title string
	Stamp string // confidentiality stamp, e.g. "Privileged & Confidential"
	Year  int
}

// Header returns the header line for one page.
func (c Chrome) Header(index, total int) string {
	return fmt.Sprintf("%s - Page %d of %d", c.Title, index, total)
}

// Footer returns the footer line for one page.
func (c Chrome) Footer(index, total int) string {
	return fmt.Sprintf("%s · %d · Page %d of %d", c.Stamp, c.Year, index, total)
}
