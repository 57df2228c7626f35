// Package container reads and writes the COMP40 compressed image
// container: an ASCII header declaring the image dimensions followed by
// one big-endian 32-bit code word per 2x2 pixel block.
//
// The wire format is
//
//	COMP40 Compressed image format 2\n
//	<width> <height>\n
//	<width*height/4 code words, 4 bytes each, most significant byte first>
//
// with no padding, framing, or checksum. The declared dimensions are
// always even and at least 2.
package container

import (
	"errors"
)

// Magic is the first header line of every COMP40 compressed image,
// without the trailing newline.
const Magic = "COMP40 Compressed image format 2"

// WordBytes is the serialized size of one code word.
const WordBytes = 4

// Errors returned while reading a compressed image.
var (
	ErrBadMagic          = errors.New("container: not a COMP40 compressed image")
	ErrBadHeader         = errors.New("container: malformed header")
	ErrInvalidDimensions = errors.New("container: invalid image dimensions")
	ErrTruncated         = errors.New("container: truncated data")
)

// Header holds the dimensions declared by a compressed image. Both are
// the evened dimensions of the source image.
type Header struct {
	Width, Height int
}

// Words returns the number of code words the body must contain.
func (h Header) Words() int {
	return h.Width * h.Height / 4
}

// Validate checks the dimension invariants: at least 2x2, both even.
func (h Header) Validate() error {
	if h.Width < 2 || h.Height < 2 || h.Width%2 != 0 || h.Height%2 != 0 {
		return ErrInvalidDimensions
	}
	return nil
}
