package comp40

import (
	"fmt"
	"image"

	"github.com/deepteams/comp40/internal/container"
	"github.com/deepteams/comp40/internal/dsp"
	"github.com/deepteams/comp40/pnm"
)

// decodeBody reads every code word from cr and reconstructs the image.
// Blocks arrive in row-major order; each word is unpacked, dequantized,
// and inverse-transformed into four pixels written back in block-major
// order.
func decodeBody(cr *container.Reader) (*pnm.Image, error) {
	hdr := cr.Header()
	img := pnm.New(image.Rect(0, 0, hdr.Width, hdr.Height), outputDenominator)

	for by := 0; by < hdr.Height; by += 2 {
		for bx := 0; bx < hdr.Width; bx += 2 {
			word, err := cr.ReadWord()
			if err != nil {
				return nil, fmt.Errorf("comp40: reading body: %w", err)
			}
			px := dsp.InverseBlock(dsp.Dequantize(unpackWord(word)))
			for i, p := range px {
				r, g, b := dsp.YPbPrToRGB(p, outputDenominator)
				img.SetRGB(bx+i%2, by+i/2, r, g, b)
			}
		}
	}
	return img, nil
}
