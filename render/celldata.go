package render

import (
	"image/color"

	"github.com/gogrid/gridview"
)

// ValueKind discriminates the content of a cell value.
type ValueKind int

const (
	// ValueText is a plain string.
	ValueText ValueKind = iota

	// ValueNumber is a float64, formatted for display by the
	// renderer's locale printer.
	ValueNumber
)

// Value is one cell's displayable content.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// Style is the subset of cell styling the reference renderer paints.
type Style struct {
	Fill color.RGBA
	Text color.RGBA
}

// CellData is the read-only capability through which the renderer
// reads cell content. The backing store is external and its format
// is opaque; a spreadsheet engine adapts its sparse store to this
// interface. Absent cells report ok=false and render empty with the
// default style.
type CellData interface {
	// Value returns the displayable content of a cell.
	Value(c gridview.CellCoordinate) (Value, bool)

	// Style returns the styling of a cell.
	Style(c gridview.CellCoordinate) (Style, bool)

	// Format returns the cell's number format verb (for example
	// "%.2f"). An empty format uses locale-default decimal
	// formatting.
	Format(c gridview.CellCoordinate) (string, bool)
}

// MapData is a map-backed CellData for tests and demos.
type MapData struct {
	values  map[gridview.CellCoordinate]Value
	styles  map[gridview.CellCoordinate]Style
	formats map[gridview.CellCoordinate]string
}

// NewMapData creates an empty store.
func NewMapData() *MapData {
	return &MapData{
		values:  make(map[gridview.CellCoordinate]Value),
		styles:  make(map[gridview.CellCoordinate]Style),
		formats: make(map[gridview.CellCoordinate]string),
	}
}

// SetText stores a text value.
func (d *MapData) SetText(c gridview.CellCoordinate, text string) {
	d.values[c] = Value{Kind: ValueText, Text: text}
}

// SetNumber stores a numeric value.
func (d *MapData) SetNumber(c gridview.CellCoordinate, n float64) {
	d.values[c] = Value{Kind: ValueNumber, Number: n}
}

// SetStyle stores a cell style.
func (d *MapData) SetStyle(c gridview.CellCoordinate, s Style) {
	d.styles[c] = s
}

// SetFormat stores a cell number format.
func (d *MapData) SetFormat(c gridview.CellCoordinate, format string) {
	d.formats[c] = format
}

// Value implements CellData.
func (d *MapData) Value(c gridview.CellCoordinate) (Value, bool) {
	v, ok := d.values[c]
	return v, ok
}

// Style implements CellData.
func (d *MapData) Style(c gridview.CellCoordinate) (Style, bool) {
	s, ok := d.styles[c]
	return s, ok
}

// Format implements CellData.
func (d *MapData) Format(c gridview.CellCoordinate) (string, bool) {
	f, ok := d.formats[c]
	return f, ok
}
