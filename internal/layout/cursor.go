// Package layout drives deterministic multi-page document layout. Every
// placeable block is pre-classified into a named row kind with a constant
// height; nothing is measured at draw time, so pagination is exact and
// testable. Y is measured in mm from the page bottom and only ever
// decreases within a page.
package layout

// RowKind classifies a content block for height accounting.
type RowKind int

const (
	SectionHeader RowKind = iota
	TableHeader
	DataRow
	DataRowWrapped
	GroupTotal
	SummaryLine
	SummaryAux
	SummaryRule
)

// rowHeights maps each row kind to its constant height in mm.
var rowHeights = map[RowKind]float64{
	SectionHeader:  8,
	TableHeader:    7,
	DataRow:        6,
	DataRowWrapped: 11,
	GroupTotal:     7,
	SummaryLine:    6,
	SummaryAux:     5,
	SummaryRule:    3,
}

// Height returns the constant height of a row kind.
func (k RowKind) Height() float64 { return rowHeights[k] }

// NameWrapBudget is the item-name length above which a row is laid out as a
// two-line DataRowWrapped block. The decision is made at layout time so
// cursor accounting stays exact.
const NameWrapBudget = 48

// RowKindForName picks the data-row kind for an item name.
func RowKindForName(name string) RowKind {
	if len([]rune(name)) > NameWrapBudget {
		return DataRowWrapped
	}
	return DataRow
}

// Geometry holds the fixed page constants. All values are mm; Y runs upward
// from the page bottom.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	ContentTop   float64 // first usable Y on a fresh page
	ContentFloor float64 // below this a page break is required
}

// A4 is the default geometry: 15 mm margins, a 12 mm header band and a
// 10 mm footer band.
var A4 = Geometry{
	PageWidth:    210,
	PageHeight:   297,
	MarginLeft:   15,
	MarginRight:  15,
	ContentTop:   270,
	ContentFloor: 25,
}

// Cursor is the per-document pagination state. It lives for exactly one
// render and is never shared.
type Cursor struct {
	geo  Geometry
	page int
	y    float64
}

// NewCursor starts a cursor at the top of page 1.
func NewCursor(geo Geometry) *Cursor {
	return &Cursor{geo: geo, page: 1, y: geo.ContentTop}
}

// Page returns the current 1-based page index.
func (c *Cursor) Page() int { return c.page }

// Y returns the current vertical offset, measured from the page bottom.
func (c *Cursor) Y() float64 { return c.y }

// Geometry returns the fixed page constants.
func (c *Cursor) Geometry() Geometry { return c.geo }

// Remaining returns the usable space left on the current page.
func (c *Cursor) Remaining() float64 { return c.y - c.geo.ContentFloor }

// Advance consumes one block of the given kind.
func (c *Cursor) Advance(k RowKind) { c.y -= k.Height() }

// EnsureSpace breaks the page when the next block of kind k would not fit
// and reports whether a break happened. onBreak, when non-nil, runs after
// the cursor has moved to the top of the fresh page, so callbacks can draw
// the page header and redraw table headers before the caller places the
// block. A block is therefore never split across a page boundary.
func (c *Cursor) EnsureSpace(k RowKind, onBreak func(page int)) bool {
	if c.Remaining() >= k.Height() {
		return false
	}
	c.page++
	c.y = c.geo.ContentTop
	if onBreak != nil {
		onBreak(c.page)
	}
	return true
}
