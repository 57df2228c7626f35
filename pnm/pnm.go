// Package pnm implements decoding and encoding of netpbm PPM images.
// The decoder reads both the raw (P6) and plain (P3) variants; the
// encoder writes raw (P6) only.
//
// The decoder preserves the image's declared maximum channel value
// rather than rescaling samples to a fixed depth: codecs that divide by
// the denominator need the original values. The package registers the
// PPM format with the standard library's image package so that
// image.Decode can read PPM files transparently.
package pnm

import (
	"image"
	"image/color"
)

func init() {
	image.RegisterFormat("ppm", "P6", Decode, DecodeConfig)
	image.RegisterFormat("ppm", "P3", Decode, DecodeConfig)
}

// Image is a PPM image: packed 16-bit RGB samples plus the maximum
// channel value they are relative to. Samples never exceed Maxval.
type Image struct {
	// Pix holds the samples in row-major order, three per pixel:
	// R, G, B at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint16
	// Stride is the Pix distance, in samples, between vertically
	// adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
	// Maxval is the declared maximum channel value, in [1, 65535].
	Maxval uint16
}

// New returns a new Image with the given bounds and maximum channel
// value.
func New(r image.Rectangle, maxval uint16) *Image {
	return &Image{
		Pix:    make([]uint16, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
		Maxval: maxval,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model { return color.RGBA64Model }

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image, scaling samples from [0, Maxval] to the
// 16-bit range color.RGBA64 expects.
func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA64{}
	}
	r, g, b := p.RGB(x, y)
	m := uint32(p.Maxval)
	return color.RGBA64{
		R: uint16(uint32(r) * 0xffff / m),
		G: uint16(uint32(g) * 0xffff / m),
		B: uint16(uint32(b) * 0xffff / m),
		A: 0xffff,
	}
}

// RGB returns the raw samples of the pixel at (x, y), relative to
// Maxval. The point must be inside Bounds.
func (p *Image) RGB(x, y int) (r, g, b uint16) {
	i := p.pixOffset(x, y)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetRGB stores raw samples for the pixel at (x, y). The point must be
// inside Bounds and the samples must not exceed Maxval.
func (p *Image) SetRGB(x, y int, r, g, b uint16) {
	i := p.pixOffset(x, y)
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports whether the image is fully opaque. PPM has no alpha
// channel, so it always is.
func (p *Image) Opaque() bool { return true }
