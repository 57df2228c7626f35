package comp40

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/deepteams/comp40/internal/container"
	"github.com/deepteams/comp40/pnm"
)

func TestDecode_TruncatedBody(t *testing.T) {
	// Compress a 4x4 image, then cut the body short at every word
	// boundary and in the middle of a word.
	var buf bytes.Buffer
	if err := Compress(&buf, ppmFill(4, 4, 90, 120, 150)); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	data := buf.Bytes()

	for cut := len(data) - 1; cut > len(data)-8; cut-- {
		_, err := Decode(bytes.NewReader(data[:cut]))
		if !errors.Is(err, container.ErrTruncated) {
			t.Errorf("cut at %d: err = %v, want ErrTruncated", cut, err)
		}
	}
}

func TestDecode_BadMagic(t *testing.T) {
	_, err := Decode(strings.NewReader("P6\n4 4\n255\n"))
	if !errors.Is(err, container.ErrBadMagic) {
		t.Errorf("err = %v, want ErrBadMagic", err)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	if !errors.Is(err, container.ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func TestDecodeConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := Compress(&buf, ppmFill(6, 4, 1, 2, 3)); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	cfg, err := DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Errorf("config = %dx%d, want 6x4", cfg.Width, cfg.Height)
	}
	if cfg.ColorModel != color.RGBA64Model {
		t.Errorf("color model = %v, want RGBA64Model", cfg.ColorModel)
	}
}

func TestCompress_RejectsTinyPPM(t *testing.T) {
	if err := Compress(&bytes.Buffer{}, ppmFill(1, 8, 0, 0, 0)); err != ErrImageTooSmall {
		t.Errorf("1x8: err = %v, want ErrImageTooSmall", err)
	}
	if err := Compress(&bytes.Buffer{}, ppmFill(8, 1, 0, 0, 0)); err != ErrImageTooSmall {
		t.Errorf("8x1: err = %v, want ErrImageTooSmall", err)
	}
}

func TestCompress_MalformedPPM(t *testing.T) {
	err := Compress(&bytes.Buffer{}, bytes.NewBufferString("not a ppm"))
	if !errors.Is(err, pnm.ErrBadMagic) {
		t.Errorf("err = %v, want pnm.ErrBadMagic", err)
	}
}

func TestEncode_GenericImage_MatchesPNMPath(t *testing.T) {
	// The generic image.Image path and the *pnm.Image fast path must
	// produce identical output for the same 8-bit pixels.
	const w, h = 8, 6
	generic := image.NewNRGBA(image.Rect(0, 0, w, h))
	direct := pnm.New(image.Rect(0, 0, w, h), 255)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := uint8(x*30), uint8(y*40), uint8((x^y)*20)
			generic.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
			direct.SetRGB(x, y, uint16(r), uint16(g), uint16(b))
		}
	}

	var fromGeneric, fromDirect bytes.Buffer
	if err := Encode(&fromGeneric, generic); err != nil {
		t.Fatalf("Encode generic: %v", err)
	}
	if err := Encode(&fromDirect, direct); err != nil {
		t.Fatalf("Encode direct: %v", err)
	}
	if !bytes.Equal(fromGeneric.Bytes(), fromDirect.Bytes()) {
		t.Error("generic and pnm encode paths diverge")
	}
}

func TestEncode_SixteenBitSource(t *testing.T) {
	// A 16-bit PPM exercises the denominator-aware path end to end.
	img := pnm.New(image.Rect(0, 0, 2, 2), 65535)
	img.SetRGB(0, 0, 65535, 65535, 65535)
	img.SetRGB(1, 0, 65535, 65535, 65535)
	img.SetRGB(0, 1, 65535, 65535, 65535)
	img.SetRGB(1, 1, 65535, 65535, 65535)

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// One luma quantization step of loss is allowed: 65535ths do not
	// divide evenly into the float coefficient sum.
	r, g, b := m.(*pnm.Image).RGB(0, 0)
	if r < 254 || g < 254 || b < 254 {
		t.Errorf("white 16-bit source decoded to (%d,%d,%d)", r, g, b)
	}
}

func TestImageDecode_RegisteredFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Compress(&buf, ppmFill(4, 4, 200, 100, 50)); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	m, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "comp40" {
		t.Errorf("format = %q, want comp40", format)
	}
	if m.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v", m.Bounds())
	}
}

func TestDecode_BodyShorterThanHeaderPromises(t *testing.T) {
	input := "COMP40 Compressed image format 2\n100 100\n\x00\x01\x02\x03"
	_, err := Decode(strings.NewReader(input))
	if !errors.Is(err, container.ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}
