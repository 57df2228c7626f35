package dsp

import "math"

// Quantization parameters. The mean luma a is scaled to an unsigned
// 9-bit integer. The difference coefficients b, c, d are clipped to
// [-0.3, 0.3] and scaled to signed 5-bit integers. Chroma averages are
// mapped through a 16-entry representative table to 4-bit indices.
const (
	aScale   = 511
	bcdScale = 50
	bcdMax   = 15
)

// chromaTable holds the 16 representative chroma values: uniform 0.05
// steps with zero at index 8, so neutral input stays neutral through
// the chroma round trip. Values beyond the table's reach clip to its
// endpoints.
var chromaTable = [16]float64{
	-0.40, -0.35, -0.30, -0.25, -0.20, -0.15, -0.10, -0.05,
	0.00, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35,
}

// Quantized holds one block's coefficients in their packed-field integer
// forms: A in 9 unsigned bits, B/C/D in 5 signed bits each, Pb/Pr as
// 4-bit chroma table indices.
type Quantized struct {
	A       uint32
	B, C, D int32
	Pb, Pr  uint32
}

// IndexOfChroma maps a chroma value in [-0.5, 0.5] to the index of its
// nearest representative in the chroma table.
func IndexOfChroma(x float64) uint32 {
	best := 0
	bestDist := math.Abs(x - chromaTable[0])
	for i := 1; i < len(chromaTable); i++ {
		d := math.Abs(x - chromaTable[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint32(best)
}

// ChromaOfIndex returns the representative chroma value for a 4-bit
// index produced by IndexOfChroma.
func ChromaOfIndex(i uint32) float64 {
	return chromaTable[i&0xf]
}

// quantizeBCD scales a difference coefficient to a signed integer in
// [-15, 15]. The scale runs in single precision: in float64, a
// dequantized -14/50 or -7/50 rescales one ulp past its integer and
// floors to the step below, breaking requantization. The clip runs
// before the floor, and the floor rounds toward negative infinity:
// truncation toward zero would shift every negative coefficient up by
// one step.
func quantizeBCD(n float64) int32 {
	scaled := float64(float32(n) * bcdScale)
	return int32(math.Floor(clamp(scaled, -bcdMax, bcdMax)))
}

// Quantize converts block coefficients to their integer field values.
func Quantize(c Coeffs) Quantized {
	return Quantized{
		A:  uint32(math.Floor(c.A * aScale)),
		B:  quantizeBCD(c.B),
		C:  quantizeBCD(c.C),
		D:  quantizeBCD(c.D),
		Pb: IndexOfChroma(c.Pb),
		Pr: IndexOfChroma(c.Pr),
	}
}

// Dequantize converts integer field values back to block coefficients.
// No clipping is needed here: the inverse block transform followed by
// the color-space saturation absorbs any out-of-range luma.
func Dequantize(q Quantized) Coeffs {
	return Coeffs{
		A:  float64(q.A) / aScale,
		B:  float64(q.B) / bcdScale,
		C:  float64(q.C) / bcdScale,
		D:  float64(q.D) / bcdScale,
		Pb: ChromaOfIndex(q.Pb),
		Pr: ChromaOfIndex(q.Pr),
	}
}
