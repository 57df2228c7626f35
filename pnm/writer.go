package pnm

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/pkg/errors"

	"github.com/deepteams/comp40/internal/pool"
)

// Encode writes m to w as a raw (P6) PPM image.
//
// A *Image is written at its own maxval, one byte per sample when the
// maxval fits in 8 bits and two big-endian bytes otherwise. Any other
// image.Image is converted through its 16-bit color values and written
// with maxval 255.
func Encode(w io.Writer, m image.Image) error {
	bw := bufio.NewWriter(w)

	if img, ok := m.(*Image); ok {
		if err := encodeRaw(bw, img); err != nil {
			return err
		}
		return errors.Wrap(bw.Flush(), "pnm: writing image")
	}

	b := m.Bounds()
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return errors.Wrap(err, "pnm: writing header")
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			if _, err := bw.Write([]byte{byte(r >> 8), byte(g >> 8), byte(bl >> 8)}); err != nil {
				return errors.Wrap(err, "pnm: writing pixel data")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "pnm: writing image")
}

func encodeRaw(bw *bufio.Writer, img *Image) error {
	b := img.Rect
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", b.Dx(), b.Dy(), img.Maxval); err != nil {
		return errors.Wrap(err, "pnm: writing header")
	}

	wide := img.Maxval > 255
	bytesPerSample := 1
	if wide {
		bytesPerSample = 2
	}
	row := pool.Get(3 * b.Dx() * bytesPerSample)
	defer pool.Put(row)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := img.RGB(x, y)
			if wide {
				row[i] = byte(r >> 8)
				row[i+1] = byte(r)
				row[i+2] = byte(g >> 8)
				row[i+3] = byte(g)
				row[i+4] = byte(bl >> 8)
				row[i+5] = byte(bl)
				i += 6
			} else {
				row[i] = byte(r)
				row[i+1] = byte(g)
				row[i+2] = byte(bl)
				i += 3
			}
		}
		if _, err := bw.Write(row); err != nil {
			return errors.Wrap(err, "pnm: writing pixel data")
		}
	}
	return nil
}
