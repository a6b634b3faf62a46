package gridview

// Tuning constants. These are named configuration values, not derived
// quantities; the Worksheet options below override them per instance.
const (
	// DefaultTileSize is the edge length, in screen pixels, of a
	// rendered tile.
	DefaultTileSize = 256

	// DefaultMaxTiles bounds the tile cache. At 256x256 RGBA a full
	// cache is roughly 30 MB.
	DefaultMaxTiles = 120

	// DefaultRowSize is the default row height in worksheet units.
	DefaultRowSize = 24.0

	// DefaultColumnSize is the default column width in worksheet units.
	DefaultColumnSize = 100.0

	// DefaultRowHeaderWidth is the width of the row-number band in
	// screen pixels. Header bands do not scale with zoom.
	DefaultRowHeaderWidth = 48.0

	// DefaultColumnHeaderHeight is the height of the column-letter
	// band in screen pixels.
	DefaultColumnHeaderHeight = 24.0

	// DefaultResizeHandleBand is the half-width, in screen pixels, of
	// the grab band centered on a span boundary inside a header.
	DefaultResizeHandleBand = 4.0

	// DefaultFillHandleSize is the edge length, in screen pixels, of
	// the fill-handle square at the bottom-right of a selection.
	DefaultFillHandleSize = 8.0

	// DefaultSelectionBorderBand is the half-width, in screen pixels,
	// of the grab band centered on a selection border.
	DefaultSelectionBorderBand = 3.0

	// MinSpanSize is the smallest default span size accepted at
	// construction. Individual SetSize calls may go below it, but
	// never to zero or negative.
	MinSpanSize = 1.0
)

// Option configures a Worksheet during creation.
//
// Example:
//
//	ws := gridview.NewWorksheet(rows, cols, renderer,
//	    gridview.WithTileSize(512),
//	    gridview.WithMaxTiles(64))
type Option func(*worksheetOptions)

// worksheetOptions holds optional configuration for Worksheet creation.
type worksheetOptions struct {
	tileSize           int
	maxTiles           int
	rowSize            float64
	columnSize         float64
	rowHeaderWidth     float64
	columnHeaderHeight float64
	resizeHandleBand   float64
	fillHandleSize     float64
	borderBand         float64
}

// defaultWorksheetOptions returns the default worksheet options.
func defaultWorksheetOptions() worksheetOptions {
	return worksheetOptions{
		tileSize:           DefaultTileSize,
		maxTiles:           DefaultMaxTiles,
		rowSize:            DefaultRowSize,
		columnSize:         DefaultColumnSize,
		rowHeaderWidth:     DefaultRowHeaderWidth,
		columnHeaderHeight: DefaultColumnHeaderHeight,
		resizeHandleBand:   DefaultResizeHandleBand,
		fillHandleSize:     DefaultFillHandleSize,
		borderBand:         DefaultSelectionBorderBand,
	}
}

// WithTileSize sets the tile edge length in screen pixels.
func WithTileSize(px int) Option {
	return func(o *worksheetOptions) {
		o.tileSize = px
	}
}

// WithMaxTiles sets the tile cache capacity.
func WithMaxTiles(n int) Option {
	return func(o *worksheetOptions) {
		o.maxTiles = n
	}
}

// WithDefaultRowSize sets the default row height in worksheet units.
func WithDefaultRowSize(h float64) Option {
	return func(o *worksheetOptions) {
		o.rowSize = h
	}
}

// WithDefaultColumnSize sets the default column width in worksheet
// units.
func WithDefaultColumnSize(w float64) Option {
	return func(o *worksheetOptions) {
		o.columnSize = w
	}
}

// WithHeaderSize sets the row-header width and column-header height
// in screen pixels. A zero value hides that header band, which also
// removes its resize handles from hit testing.
func WithHeaderSize(rowHeaderWidth, columnHeaderHeight float64) Option {
	return func(o *worksheetOptions) {
		o.rowHeaderWidth = rowHeaderWidth
		o.columnHeaderHeight = columnHeaderHeight
	}
}

// WithResizeHandleBand sets the half-width of the resize grab band in
// screen pixels.
func WithResizeHandleBand(px float64) Option {
	return func(o *worksheetOptions) {
		o.resizeHandleBand = px
	}
}

// WithFillHandleSize sets the fill-handle edge length in screen
// pixels.
func WithFillHandleSize(px float64) Option {
	return func(o *worksheetOptions) {
		o.fillHandleSize = px
	}
}

// WithSelectionBorderBand sets the half-width of the selection-border
// grab band in screen pixels.
func WithSelectionBorderBand(px float64) Option {
	return func(o *worksheetOptions) {
		o.borderBand = px
	}
}
