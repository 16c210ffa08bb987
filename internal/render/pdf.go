package render

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/layout"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// PDFOptions carries provenance for the document header.
type PDFOptions struct {
	App        model.AppInfo
	ExportedAt string
}

// Materials table column widths, mm. Name gets the slack of a 180 mm
// content band.
var itemCols = []float64{12, 22, 70, 12, 16, 24, 24}

// RenderPDF emits the akkordseddel document: header, case-info lines, the
// materials table grouped per system, the wage table and the totals summary.
// The layout cursor owns pagination; auto page break stays off.
func RenderPDF(m model.CanonicalModel, baseName string, opts PDFOptions) (model.RenderArtifact, error) {
	eng, err := Load()
	if err != nil {
		return model.RenderArtifact{}, faults.NewRender("pdf", err)
	}

	r := &pdfRenderer{
		pdf:  eng.NewDocument(),
		cur:  layout.NewCursor(layout.A4),
		m:    m,
		opts: opts,
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")

	r.pdf.AddPage()
	r.pageHeader(1)

	r.caseInfo()
	r.materials()
	r.wage()
	r.summary()

	if r.pdf.Err() {
		return model.RenderArtifact{}, faults.NewRender("pdf", r.pdf.Error())
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return model.RenderArtifact{}, faults.NewRender("pdf", err)
	}
	return model.RenderArtifact{
		FileName:    FileName(baseName, "pdf"),
		ContentType: model.ContentTypePDF,
		Data:        buf.Bytes(),
	}, nil
}

type pdfRenderer struct {
	pdf  *gofpdf.Fpdf
	cur  *layout.Cursor
	tr   func(string) string
	m    model.CanonicalModel
	opts PDFOptions
}

// topY converts the cursor's bottom-up Y to gofpdf's top-down coordinate.
func (r *pdfRenderer) topY() float64 {
	return r.cur.Geometry().PageHeight - r.cur.Y()
}

// place draws one row of cells at the cursor, then advances it.
func (r *pdfRenderer) place(kind layout.RowKind, cells []pdfCell) {
	geo := r.cur.Geometry()
	h := kind.Height()
	x := geo.MarginLeft
	y := r.topY()
	for _, c := range cells {
		r.pdf.SetXY(x, y)
		r.pdf.CellFormat(c.w, h, r.tr(c.text), "", 0, c.align, false, 0, "")
		x += c.w
	}
	r.cur.Advance(kind)
}

type pdfCell struct {
	w     float64
	text  string
	align string
}

// pageHeader draws the band above the content area. It runs on page 1 and
// from the cursor's break callback on every later page.
func (r *pdfRenderer) pageHeader(page int) {
	if page > 1 {
		r.pdf.AddPage()
	}
	geo := r.cur.Geometry()

	r.pdf.SetFont("Helvetica", "B", 13)
	r.pdf.SetXY(geo.MarginLeft, 12)
	r.pdf.CellFormat(120, 8, r.tr("Akkordseddel "+r.m.Meta.CaseNumber), "", 0, "L", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 8)
	r.pdf.SetXY(geo.PageWidth-geo.MarginRight-60, 12)
	r.pdf.CellFormat(60, 8, r.tr(r.opts.App.Name+" "+r.opts.App.Version), "", 0, "R", false, 0, "")

	r.pdf.SetXY(geo.PageWidth-geo.MarginRight-60, geo.PageHeight-12)
	r.pdf.CellFormat(60, 6, fmt.Sprintf("Side %d", page), "", 0, "R", false, 0, "")

	r.pdf.SetLineWidth(0.3)
	r.pdf.Line(geo.MarginLeft, 21, geo.PageWidth-geo.MarginRight, 21)
	r.pdf.SetFont("Helvetica", "", 9)
}

func (r *pdfRenderer) breakTo(redrawTable func()) func(int) {
	return func(page int) {
		r.pageHeader(page)
		if redrawTable != nil {
			redrawTable()
		}
	}
}

func (r *pdfRenderer) caseInfo() {
	lines := [][2]string{
		{"Sagsnavn", r.m.Meta.CaseName},
		{"Kunde", r.m.Meta.Customer},
		{"Adresse", r.m.Meta.Address},
		{"Dato", r.m.Meta.Date},
		{"Type", r.m.Meta.JobType},
	}
	for _, kv := range lines {
		if kv[1] == "" {
			continue
		}
		r.cur.EnsureSpace(layout.SummaryLine, r.breakTo(nil))
		r.place(layout.SummaryLine, []pdfCell{
			{w: 35, text: kv[0], align: "L"},
			{w: 145, text: kv[1], align: "L"},
		})
	}
}

func (r *pdfRenderer) itemTableHeader() {
	r.pdf.SetFont("Helvetica", "B", 8)
	r.place(layout.TableHeader, []pdfCell{
		{w: itemCols[0], text: "Linje", align: "L"},
		{w: itemCols[1], text: "Varenr.", align: "L"},
		{w: itemCols[2], text: "Navn", align: "L"},
		{w: itemCols[3], text: "Enhed", align: "L"},
		{w: itemCols[4], text: "Antal", align: "R"},
		{w: itemCols[5], text: "Enhedspris", align: "R"},
		{w: itemCols[6], text: "Sum", align: "R"},
	})
	r.pdf.SetFont("Helvetica", "", 9)
}

func (r *pdfRenderer) materials() {
	if len(r.m.Items) == 0 {
		return
	}
	for _, sys := range r.m.Systems() {
		items := r.m.ItemsForSystem(sys)

		title := "Materialer"
		if sys != "" {
			title = "Materialer – " + sys
		}
		r.cur.EnsureSpace(layout.SectionHeader, r.breakTo(nil))
		r.pdf.SetFont("Helvetica", "B", 10)
		r.place(layout.SectionHeader, []pdfCell{{w: 180, text: title, align: "L"}})
		r.itemTableHeader()

		var groupTotal float64
		for _, it := range items {
			kind := layout.RowKindForName(it.Name)
			r.cur.EnsureSpace(kind, r.breakTo(r.itemTableHeader))
			r.placeItem(kind, it)
			groupTotal += it.LineTotal
		}

		// The group total must land below at least one of its own rows, so
		// breaking here re-draws the table header before placing it.
		r.cur.EnsureSpace(layout.GroupTotal, r.breakTo(r.itemTableHeader))
		r.pdf.SetFont("Helvetica", "B", 9)
		r.place(layout.GroupTotal, []pdfCell{
			{w: 116, text: "I alt " + title, align: "L"},
			{w: 40, text: "", align: "L"},
			{w: 24, text: Currency(groupTotal), align: "R"},
		})
		r.pdf.SetFont("Helvetica", "", 9)
	}
}

func (r *pdfRenderer) placeItem(kind layout.RowKind, it model.Item) {
	name := it.Name
	var overflow string
	if kind == layout.DataRowWrapped {
		runes := []rune(name)
		name = string(runes[:layout.NameWrapBudget])
		overflow = string(runes[layout.NameWrapBudget:])
	}

	geo := r.cur.Geometry()
	y := r.topY()
	r.place(kind, []pdfCell{
		{w: itemCols[0], text: Quantity(float64(it.LineNumber)), align: "L"},
		{w: itemCols[1], text: it.ItemNumber, align: "L"},
		{w: itemCols[2], text: name, align: "L"},
		{w: itemCols[3], text: it.Unit, align: "L"},
		{w: itemCols[4], text: Quantity(it.Quantity), align: "R"},
		{w: itemCols[5], text: Currency(it.UnitPrice), align: "R"},
		{w: itemCols[6], text: Currency(it.LineTotal), align: "R"},
	})
	if overflow != "" {
		r.pdf.SetXY(geo.MarginLeft+itemCols[0]+itemCols[1], y+layout.DataRow.Height())
		r.pdf.CellFormat(itemCols[2], layout.DataRow.Height(), r.tr(overflow), "", 0, "L", false, 0, "")
	}
}

func (r *pdfRenderer) wage() {
	if len(r.m.Wage.Workers) == 0 {
		return
	}
	header := func() {
		r.pdf.SetFont("Helvetica", "B", 8)
		r.place(layout.TableHeader, []pdfCell{
			{w: 70, text: "Navn", align: "L"},
			{w: 25, text: "Timer", align: "R"},
			{w: 25, text: "Sats", align: "R"},
			{w: 30, text: "Tillæg", align: "R"},
			{w: 30, text: "Sum", align: "R"},
		})
		r.pdf.SetFont("Helvetica", "", 9)
	}

	r.cur.EnsureSpace(layout.SectionHeader, r.breakTo(nil))
	r.pdf.SetFont("Helvetica", "B", 10)
	r.place(layout.SectionHeader, []pdfCell{{w: 180, text: "Løn", align: "L"}})
	header()

	for _, w := range r.m.Wage.Workers {
		r.cur.EnsureSpace(layout.DataRow, r.breakTo(header))
		r.place(layout.DataRow, []pdfCell{
			{w: 70, text: w.Name, align: "L"},
			{w: 25, text: Quantity(w.Hours), align: "R"},
			{w: 25, text: Currency(w.Rate), align: "R"},
			{w: 30, text: Currency(w.Allowances), align: "R"},
			{w: 30, text: Currency(w.Total), align: "R"},
		})
	}

	r.cur.EnsureSpace(layout.GroupTotal, r.breakTo(header))
	r.pdf.SetFont("Helvetica", "B", 9)
	r.place(layout.GroupTotal, []pdfCell{
		{w: 70, text: "I alt", align: "L"},
		{w: 25, text: Quantity(r.m.Wage.TotalHours), align: "R"},
		{w: 55, text: "", align: "R"},
		{w: 30, text: Currency(r.m.Wage.TotalSum), align: "R"},
	})
	r.pdf.SetFont("Helvetica", "", 9)
}

func (r *pdfRenderer) summaryLine(kind layout.RowKind, label string, value float64, bold bool) {
	r.cur.EnsureSpace(kind, r.breakTo(nil))
	if bold {
		r.pdf.SetFont("Helvetica", "B", 9)
	}
	r.place(kind, []pdfCell{
		{w: 140, text: label, align: "L"},
		{w: 40, text: Currency(value), align: "R"},
	})
	if bold {
		r.pdf.SetFont("Helvetica", "", 9)
	}
}

// summary uses the same totals fields as every other renderer, never its own
// recomputation.
func (r *pdfRenderer) summary() {
	t := r.m.Totals

	r.cur.EnsureSpace(layout.SectionHeader, r.breakTo(nil))
	r.pdf.SetFont("Helvetica", "B", 10)
	r.place(layout.SectionHeader, []pdfCell{{w: 180, text: "Opsummering", align: "L"}})
	r.pdf.SetFont("Helvetica", "", 9)

	r.summaryLine(layout.SummaryLine, "Materialer", t.Materials, false)
	if t.Breakdown.Distance != 0 {
		r.summaryLine(layout.SummaryAux, "Kørsel", t.Breakdown.Distance, false)
	}
	if t.Breakdown.Surcharge != 0 {
		r.summaryLine(layout.SummaryAux, "Slæb", t.Breakdown.Surcharge, false)
	}
	if t.Breakdown.Lift != 0 {
		r.summaryLine(layout.SummaryAux, "Tralleløft", t.Breakdown.Lift, false)
	}
	if t.Breakdown.ExtraWork != 0 {
		r.summaryLine(layout.SummaryAux, "Ekstraarbejde", t.Breakdown.ExtraWork, false)
	}
	r.summaryLine(layout.SummaryLine, "Tillæg i alt", t.Extras, false)

	r.cur.EnsureSpace(layout.SummaryRule, r.breakTo(nil))
	geo := r.cur.Geometry()
	y := r.topY() + layout.SummaryRule.Height()/2
	r.pdf.SetLineWidth(0.2)
	r.pdf.Line(geo.MarginLeft, y, geo.PageWidth-geo.MarginRight, y)
	r.cur.Advance(layout.SummaryRule)

	r.summaryLine(layout.SummaryLine, "Akkordsum", t.Akkord, true)
	if t.Project != 0 && t.Project != t.Akkord {
		r.summaryLine(layout.SummaryLine, "Projektsum", t.Project, false)
	}
}
