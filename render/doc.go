// Package render provides the reference CPU tile renderer.
//
// The renderer implements gridview.TileRenderer by rasterizing cell
// fills, merge-aware gridlines, and cell text into gridview.Pixmap
// surfaces. It exists so the core is usable (and testable) without a
// GPU presentation layer; production embedders typically supply their
// own renderer over their own surface type.
//
// Cell content is read through the narrow CellData capability; the
// backing store's format is opaque to this package. Text is drawn
// with golang.org/x/image/font/basicfont, and numeric values are
// formatted with golang.org/x/text/message. Non-1x zoom buckets
// render at worksheet resolution and rescale with
// golang.org/x/image/draw.
package render
