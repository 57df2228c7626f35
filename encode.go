package comp40

import (
	"fmt"
	"image"
	"io"

	"github.com/deepteams/comp40/internal/container"
	"github.com/deepteams/comp40/internal/dsp"
	"github.com/deepteams/comp40/pnm"
)

// Encode writes m to w in the COMP40 compressed format.
//
// Odd dimensions are rounded down to even and the excess column or row
// is discarded; the container header records the evened dimensions.
// Images smaller than 2x2 return ErrImageTooSmall.
//
// A *pnm.Image is read at its own maxval; any other image.Image is read
// through its 16-bit color values.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	width := evened(b.Dx())
	height := evened(b.Dy())
	if width < 2 || height < 2 {
		return ErrImageTooSmall
	}

	cw, err := container.NewWriter(w, container.Header{Width: width, Height: height})
	if err != nil {
		return fmt.Errorf("comp40: writing header: %w", err)
	}

	at := pixelFunc(m)

	// One block of Y/Pb/Pr values is accumulated at a time, in
	// block-major pixel order, then transformed, quantized, and packed.
	var block [4]dsp.Pixel
	for by := 0; by < height; by += 2 {
		for bx := 0; bx < width; bx += 2 {
			for i := range block {
				block[i] = at(b.Min.X+bx+i%2, b.Min.Y+by+i/2)
			}
			q := dsp.Quantize(dsp.ForwardBlock(&block))
			if err := cw.WriteWord(packWord(q)); err != nil {
				return fmt.Errorf("comp40: writing body: %w", err)
			}
		}
	}
	return nil
}

// evened rounds n down to the nearest even number.
func evened(n int) int {
	return n &^ 1
}

// pixelFunc returns an accessor that yields m's pixels converted to
// Y/Pb/Pr. *pnm.Image keeps its original denominator; the generic path
// goes through the 16-bit color interface.
func pixelFunc(m image.Image) func(x, y int) dsp.Pixel {
	if img, ok := m.(*pnm.Image); ok {
		return func(x, y int) dsp.Pixel {
			r, g, b := img.RGB(x, y)
			return dsp.RGBToYPbPr(r, g, b, img.Maxval)
		}
	}
	return func(x, y int) dsp.Pixel {
		r, g, b, _ := m.At(x, y).RGBA()
		return dsp.RGBToYPbPr(uint16(r), uint16(g), uint16(b), 0xffff)
	}
}
