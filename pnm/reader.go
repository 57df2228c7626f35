package pnm

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"github.com/deepteams/comp40/internal/pool"
)

// Errors returned by the decoder.
var (
	ErrBadMagic  = errors.New("pnm: not a PPM image")
	ErrBadHeader = errors.New("pnm: malformed header")
	ErrTruncated = errors.New("pnm: truncated pixel data")
)

// header holds the parsed PPM preamble.
type header struct {
	plain  bool // true for P3, false for P6
	width  int
	height int
	maxval int
}

// Decode reads a PPM image from r. The concrete return type is *Image,
// preserving the file's maxval.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	hdr, err := decodeHeader(br)
	if err != nil {
		return nil, err
	}

	img := New(image.Rect(0, 0, hdr.width, hdr.height), uint16(hdr.maxval))
	if hdr.plain {
		err = readPlainSamples(br, img)
	} else {
		err = readRawSamples(br, img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig returns the dimensions and color model of a PPM image
// without reading the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	hdr, err := decodeHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBA64Model,
		Width:      hdr.width,
		Height:     hdr.height,
	}, nil
}

// decodeHeader parses the magic, dimensions, and maxval. The PPM
// grammar allows comments and arbitrary whitespace between header
// tokens; exactly one whitespace byte separates the maxval from raw
// sample data.
func decodeHeader(br *bufio.Reader) (header, error) {
	var hdr header

	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil {
		return hdr, ErrBadMagic
	}
	switch string(magic) {
	case "P6":
		hdr.plain = false
	case "P3":
		hdr.plain = true
	default:
		return hdr, ErrBadMagic
	}

	var err error
	if hdr.width, err = readHeaderInt(br); err != nil {
		return hdr, err
	}
	if hdr.height, err = readHeaderInt(br); err != nil {
		return hdr, err
	}
	if hdr.maxval, err = readHeaderInt(br); err != nil {
		return hdr, err
	}

	if hdr.width < 1 || hdr.height < 1 {
		return hdr, errors.Wrapf(ErrBadHeader, "dimensions %dx%d", hdr.width, hdr.height)
	}
	if hdr.maxval < 1 || hdr.maxval > 65535 {
		return hdr, errors.Wrapf(ErrBadHeader, "maxval %d", hdr.maxval)
	}
	return hdr, nil
}

// readHeaderInt skips whitespace and comments, then reads one decimal
// integer followed by a single whitespace byte.
func readHeaderInt(br *bufio.Reader) (int, error) {
	if err := skipSpaceAndComments(br); err != nil {
		return 0, err
	}

	n := 0
	digits := 0
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "pnm: reading header")
		}
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			digits++
			if n > 1<<30 {
				return 0, ErrBadHeader
			}
			continue
		}
		if !isSpace(c) {
			return 0, ErrBadHeader
		}
		break
	}
	if digits == 0 {
		return 0, ErrBadHeader
	}
	return n, nil
}

// skipSpaceAndComments consumes whitespace and '#' comments. It stops
// at the first byte that belongs to a token.
func skipSpaceAndComments(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return ErrBadHeader
			}
			return errors.Wrap(err, "pnm: reading header")
		}
		if isSpace(c) {
			continue
		}
		if c == '#' {
			if _, err := br.ReadString('\n'); err != nil {
				if err == io.EOF {
					return ErrBadHeader
				}
				return errors.Wrap(err, "pnm: reading header")
			}
			continue
		}
		return br.UnreadByte()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// readRawSamples reads P6 binary samples: one byte per sample when
// maxval fits in 8 bits, otherwise two bytes, most significant first.
// The staging buffer comes from the shared byte pool.
func readRawSamples(br *bufio.Reader, img *Image) error {
	wide := img.Maxval > 255
	n := len(img.Pix)

	size := n
	if wide {
		size = 2 * n
	}
	buf := pool.Get(size)
	defer pool.Put(buf)
	if _, err := io.ReadFull(br, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncated
		}
		return errors.Wrap(err, "pnm: reading pixel data")
	}

	if wide {
		for i := 0; i < n; i++ {
			img.Pix[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
		}
	} else {
		for i := 0; i < n; i++ {
			img.Pix[i] = uint16(buf[i])
		}
	}
	return validateSamples(img)
}

// readPlainSamples reads P3 ASCII samples.
func readPlainSamples(br *bufio.Reader, img *Image) error {
	for i := range img.Pix {
		v, err := readHeaderInt(br)
		if err != nil {
			if errors.Is(err, ErrBadHeader) {
				return ErrTruncated
			}
			return err
		}
		if v > 65535 {
			return errors.Wrapf(ErrBadHeader, "sample %d", v)
		}
		img.Pix[i] = uint16(v)
	}
	return validateSamples(img)
}

// validateSamples rejects samples above the declared maxval.
func validateSamples(img *Image) error {
	for _, v := range img.Pix {
		if v > img.Maxval {
			return errors.Wrapf(ErrBadHeader, "sample %d exceeds maxval %d", v, img.Maxval)
		}
	}
	return nil
}
