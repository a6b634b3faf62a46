package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogrid/gridview"
)

// Default palette.
var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGridline   = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	colorText       = color.RGBA{A: 0xff}
	colorOutside    = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

const cellTextPadding = 3

// maxIntermediateSide caps the edge length of the worksheet-resolution
// intermediate a tile rasterizes into before downscaling. At the
// smallest zoom buckets one tile spans thousands of worksheet units;
// an uncapped intermediate costs tens of megabytes per tile and blows
// the per-tile render latency contract.
const maxIntermediateSide = 1024

// Renderer is the reference CPU implementation of
// gridview.TileRenderer. It rasterizes into gridview.Pixmap surfaces;
// ownership of each surface transfers to the tile cache through the
// manager.
//
// Renderer is not safe for concurrent use; it shares the single
// rendering goroutine with the core.
type Renderer struct {
	layout  *gridview.LayoutSolver
	merges  *gridview.MergedCellRegistry
	data    CellData
	face    font.Face
	printer *message.Printer
}

// NewRenderer creates a renderer reading cell content from data.
// merges may be nil, disabling gridline-gap suppression. Panics if
// layout or data is nil.
func NewRenderer(layout *gridview.LayoutSolver, merges *gridview.MergedCellRegistry, data CellData) *Renderer {
	if layout == nil {
		panic("render: Renderer requires a layout solver")
	}
	if data == nil {
		panic("render: Renderer requires cell data")
	}
	return &Renderer{
		layout:  layout,
		merges:  merges,
		data:    data,
		face:    basicfont.Face7x13,
		printer: message.NewPrinter(language.English),
	}
}

// RenderTile implements gridview.TileRenderer.
//
// Content is rasterized at worksheet resolution (one pixel per
// worksheet unit) and rescaled to the fixed tile size when the bucket
// is not 1x, so gridline spacing stays faithful to the layout at
// every zoom. The intermediate is capped at maxIntermediateSide; past
// that the paint pass shrinks coordinates instead, trading gridline
// fidelity no longer visible at those zoom levels for bounded memory.
func (r *Renderer) RenderTile(coord gridview.TileCoordinate, pixelBounds gridview.Rect, cells gridview.CellRange, bucket gridview.ZoomBucket) (gridview.Surface, error) {
	tileSize := int(pixelBounds.Width())
	if tileSize <= 0 || pixelBounds.Height() != pixelBounds.Width() {
		return nil, fmt.Errorf("render: invalid tile bounds %+v", pixelBounds)
	}

	extent := bucket.TileWorksheetExtent(tileSize)
	originX := float64(coord.Col) * extent
	originY := float64(coord.Row) * extent

	side := int(math.Ceil(extent))
	scale := 1.0
	if side > maxIntermediateSide {
		side = maxIntermediateSide
		scale = float64(maxIntermediateSide) / extent
	}
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	r.paint(img, originX, originY, scale, cells)

	if bucket.Factor() == 1 {
		return gridview.FromImage(img), nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return gridview.FromImage(scaled), nil
}

// paint rasterizes the cell range into img, whose pixel (0,0) maps to
// worksheet position (originX, originY); worksheet distances map to
// pixels through scale.
func (r *Renderer) paint(img *image.RGBA, originX, originY, scale float64, cells gridview.CellRange) {
	fillRect(img, img.Bounds(), colorOutside)

	// The sheet interior may end inside this tile.
	sheetW := int(math.Round((r.layout.TotalWidth() - originX) * scale))
	sheetH := int(math.Round((r.layout.TotalHeight() - originY) * scale))
	interior := img.Bounds().Intersect(image.Rect(0, 0, sheetW, sheetH))
	fillRect(img, interior, colorBackground)

	for row := cells.StartRow; row <= cells.EndRow; row++ {
		for col := cells.StartCol; col <= cells.EndCol; col++ {
			r.paintCell(img, originX, originY, scale, gridview.Cell(row, col))
		}
	}
}

// paintCell draws one cell's fill, its right and bottom gridlines,
// and its content. Gridlines interior to a merge region are
// suppressed: the region paints as one visual cell.
func (r *Renderer) paintCell(img *image.RGBA, originX, originY, scale float64, c gridview.CellCoordinate) {
	bounds := r.layout.CellBounds(c)
	x0 := int(math.Round((bounds.Min.X - originX) * scale))
	y0 := int(math.Round((bounds.Min.Y - originY) * scale))
	x1 := int(math.Round((bounds.Max.X - originX) * scale))
	y1 := int(math.Round((bounds.Max.Y - originY) * scale))

	var region *gridview.MergeRegion
	if r.merges != nil {
		region = r.merges.Region(c)
	}

	if style, ok := r.data.Style(r.contentCell(c, region)); ok && style.Fill.A != 0 {
		fillRect(img, image.Rect(x0, y0, x1, y1).Intersect(img.Bounds()), style.Fill)
	}

	// Right gridline, unless the boundary is interior to the region.
	if region == nil || c.Col == region.Range.EndCol {
		vline(img, x1-1, y0, y1, colorGridline)
	}
	// Bottom gridline.
	if region == nil || c.Row == region.Range.EndRow {
		hline(img, x0, x1, y1-1, colorGridline)
	}

	// Content draws once per visual cell, at its anchor, spanning the
	// whole region.
	if region != nil {
		if c != region.Anchor {
			return
		}
		rb := r.layout.RangeBounds(region.Range)
		x1 = int(math.Round((rb.Max.X - originX) * scale))
		y1 = int(math.Round((rb.Max.Y - originY) * scale))
	}
	r.paintContent(img, image.Rect(x0, y0, x1, y1), r.contentCell(c, region))
}

// contentCell maps a merge-interior cell to the region's anchor,
// where the region's content and style live.
func (r *Renderer) contentCell(c gridview.CellCoordinate, region *gridview.MergeRegion) gridview.CellCoordinate {
	if region != nil {
		return region.Anchor
	}
	return c
}

func (r *Renderer) paintContent(img *image.RGBA, cell image.Rectangle, c gridview.CellCoordinate) {
	value, ok := r.data.Value(c)
	if !ok {
		return
	}

	text := value.Text
	if value.Kind == ValueNumber {
		if format, ok := r.data.Format(c); ok && format != "" {
			text = r.printer.Sprintf(format, value.Number)
		} else {
			text = r.printer.Sprint(number.Decimal(value.Number))
		}
	}
	if text == "" {
		return
	}

	textColor := colorText
	if style, ok := r.data.Style(c); ok && style.Text.A != 0 {
		textColor = style.Text
	}

	clip := cell.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	sub, ok2 := img.SubImage(clip).(*image.RGBA)
	if !ok2 {
		return
	}

	metrics := r.face.Metrics()
	drawer := &font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(textColor),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(cell.Min.X + cellTextPadding),
			Y: fixed.I(cell.Min.Y+cellTextPadding) + metrics.Ascent,
		},
	}
	drawer.DrawString(text)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		img.SetRGBA(x, y, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
		img.SetRGBA(x, y, c)
	}
}
