package render

import (
	"sync"

	"github.com/phpdave11/gofpdf"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Engines holds the process-wide handles of the rendering libraries:
// the configured PDF document factory and the shared spreadsheet styles.
// It is initialized at most once per process and never torn down; repeated
// exports reuse the same instance, so no per-call resources accumulate.
type Engines struct {
	pdfFont string

	HeaderStyle   *xlsx.Style
	TextStyle     *xlsx.Style
	CurrencyStyle *xlsx.Style
}

// NewDocument returns a fresh A4 portrait document. Documents themselves are
// single-use; only their configuration is shared.
func (e *Engines) NewDocument() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont(e.pdfFont, "", 9)
	pdf.SetAutoPageBreak(false, 0) // pagination is owned by the layout cursor
	return pdf
}

var loadOnce = sync.OnceValues(initEngines)

// Load returns the memoized engine handles, initializing them on first use.
// Initialization is idempotent and safe to call concurrently.
func Load() (*Engines, error) {
	return loadOnce()
}

func initEngines() (*Engines, error) {
	header := xlsx.NewStyle()
	header.Font = *xlsx.NewFont(10, "Arial")
	header.Font.Bold = true
	header.ApplyFont = true

	text := xlsx.NewStyle()
	text.Font = *xlsx.NewFont(10, "Arial")
	text.ApplyFont = true

	currency := xlsx.NewStyle()
	currency.Font = *xlsx.NewFont(10, "Arial")
	currency.ApplyFont = true

	e := &Engines{
		pdfFont:       "Helvetica",
		HeaderStyle:   header,
		TextStyle:     text,
		CurrencyStyle: currency,
	}

	// A factory that cannot produce a first page means the PDF engine is
	// unusable; surface that at load time instead of mid-render.
	probe := e.NewDocument()
	probe.AddPage()
	if probe.Err() {
		return nil, eris.Wrap(probe.Error(), "render: init pdf engine")
	}
	return e, nil
}
