// Package dsp implements the pixel math for the COMP40 codec: the
// RGB <-> Y/Pb/Pr color space conversion, the 2x2 block transform, and
// quantization of the transformed coefficients.
package dsp

import "math"

// RGB -> Y/Pb/Pr conversion coefficients (ITU-R BT.601).
const (
	rToY  = 0.299
	gToY  = 0.587
	bToY  = 0.114
	rToPb = -0.168736
	gToPb = -0.331264
	bToPb = 0.5
	rToPr = 0.5
	gToPr = -0.418688
	bToPr = -0.081312
)

// Y/Pb/Pr -> RGB conversion coefficients. The Y coefficient is 1 for all
// three channels.
const (
	pbToR = 0.0
	prToR = 1.402
	pbToG = -0.344136
	prToG = -0.714136
	pbToB = 1.772
	prToB = 0.0
)

// Pixel is one pixel in the Y/Pb/Pr component video color space.
// After conversion from RGB, Y is in [0, 1] and Pb, Pr are in [-0.5, 0.5].
type Pixel struct {
	Y, Pb, Pr float64
}

// clamp forces n into [lo, hi].
func clamp(n, lo, hi float64) float64 {
	if n > hi {
		return hi
	}
	if n < lo {
		return lo
	}
	return n
}

// RGBToYPbPr converts one RGB pixel with channels in [0, denom] to
// Y/Pb/Pr. The result is saturated so that Y is in [0, 1] and Pb, Pr are
// in [-0.5, 0.5]. The weighted sum runs over the raw channel values and
// the denominator divides once at the end, so a saturated gray maps to
// Y = 1 exactly.
func RGBToYPbPr(r, g, b uint16, denom uint16) Pixel {
	fr, fg, fb := float64(r), float64(g), float64(b)
	d := float64(denom)

	return Pixel{
		Y:  clamp((rToY*fr+gToY*fg+bToY*fb)/d, 0, 1),
		Pb: clamp((rToPb*fr+gToPb*fg+bToPb*fb)/d, -0.5, 0.5),
		Pr: clamp((rToPr*fr+gToPr*fg+bToPr*fb)/d, -0.5, 0.5),
	}
}

// YPbPrToRGB converts one Y/Pb/Pr pixel to RGB channels in [0, denom].
// Each channel is saturated to [0, 1] before scaling: chroma values that
// came through quantization can push the linear combination slightly out
// of range.
func YPbPrToRGB(p Pixel, denom uint16) (r, g, b uint16) {
	r = rgbChannel(p.Y+pbToR*p.Pb+prToR*p.Pr, denom)
	g = rgbChannel(p.Y+pbToG*p.Pb+prToG*p.Pr, denom)
	b = rgbChannel(p.Y+pbToB*p.Pb+prToB*p.Pr, denom)
	return r, g, b
}

func rgbChannel(n float64, denom uint16) uint16 {
	return uint16(math.Floor(clamp(n, 0, 1) * float64(denom)))
}
