package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer emits a compressed image to a byte stream. NewWriter writes the
// header; WriteWord appends body code words in row-major block order.
type Writer struct {
	w io.Writer
}

// NewWriter validates hdr and writes the container header to w.
func NewWriter(w io.Writer, hdr Header) (*Writer, error) {
	if err := hdr.Validate(); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", Magic, hdr.Width, hdr.Height); err != nil {
		return nil, errors.Wrap(err, "container: writing header")
	}
	return &Writer{w: w}, nil
}

// WriteWord serializes one code word in big-endian byte order.
func (w *Writer) WriteWord(word uint32) error {
	var buf [WordBytes]byte
	binary.BigEndian.PutUint32(buf[:], word)
	if _, err := w.w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "container: writing code word")
	}
	return nil
}
