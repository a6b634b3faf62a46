package gridview

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a CPU-side rectangular pixel buffer. It is the surface
// type produced by the reference renderer in render/; presentation
// layers with their own surface types (GPU textures) implement
// Surface directly and never touch Pixmap.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a pixmap with the given dimensions.
// Panics if either dimension is not positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		panic("gridview: pixmap dimensions must be positive")
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage wraps an existing RGBA image without copying.
func FromImage(img *image.RGBA) *Pixmap {
	if img == nil {
		panic("gridview: FromImage requires an image")
	}
	return &Pixmap{img: img}
}

// Width returns the width of the pixmap, or 0 after disposal.
func (p *Pixmap) Width() int {
	if p.img == nil {
		return 0
	}
	return p.img.Bounds().Dx()
}

// Height returns the height of the pixmap, or 0 after disposal.
func (p *Pixmap) Height() int {
	if p.img == nil {
		return 0
	}
	return p.img.Bounds().Dy()
}

// Image returns the backing image, or nil after disposal.
func (p *Pixmap) Image() *image.RGBA { return p.img }

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.Color) {
	if p.img == nil {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	b := p.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.img.SetRGBA(x, y, rgba)
		}
	}
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.img)
}

// Dispose releases the backing image. Idempotent.
// Pixmap implements Surface so the tile cache can own it.
func (p *Pixmap) Dispose() {
	p.img = nil
}
