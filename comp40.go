package comp40

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/deepteams/comp40/internal/container"
	"github.com/deepteams/comp40/pnm"
)

func init() {
	image.RegisterFormat("comp40", container.Magic, Decode, DecodeConfig)
}

// Errors returned by the codec.
var (
	// ErrImageTooSmall is returned when an input image is narrower or
	// shorter than one 2x2 block.
	ErrImageTooSmall = errors.New("comp40: image must be at least 2 pixels in each dimension")
)

// outputDenominator is the maximum channel value of decompressed images.
const outputDenominator = 255

// Decode reads a COMP40 compressed image from r and returns it as an
// image.Image. The concrete return type is *pnm.Image with maxval 255.
func Decode(r io.Reader) (image.Image, error) {
	cr, err := container.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("comp40: parsing header: %w", err)
	}
	return decodeBody(cr)
}

// DecodeConfig returns the dimensions and color model of a compressed
// image from its header alone, without reading any code words.
func DecodeConfig(r io.Reader) (image.Config, error) {
	cr, err := container.NewReader(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("comp40: parsing header: %w", err)
	}
	hdr := cr.Header()
	return image.Config{
		ColorModel: color.RGBA64Model,
		Width:      hdr.Width,
		Height:     hdr.Height,
	}, nil
}

// Compress reads a PPM image from r and writes its compressed form to w.
func Compress(w io.Writer, r io.Reader) error {
	img, err := pnm.Decode(r)
	if err != nil {
		return fmt.Errorf("comp40: reading input: %w", err)
	}
	return Encode(w, img)
}

// Decompress reads a compressed image from r and writes it to w as a
// raw PPM with maxval 255.
func Decompress(w io.Writer, r io.Reader) error {
	img, err := Decode(r)
	if err != nil {
		return err
	}
	if err := pnm.Encode(w, img); err != nil {
		return fmt.Errorf("comp40: writing output: %w", err)
	}
	return nil
}
