package dsp

// Coeffs is the transformed representation of one 2x2 pixel block:
// the mean luma a, the vertical, horizontal, and diagonal luma
// differences b, c, d, and the block's average chroma values.
type Coeffs struct {
	A, B, C, D float64
	Pb, Pr     float64
}

// ForwardBlock computes the block coefficients of a 2x2 pixel block.
// The pixels are indexed in block-major order:
//
//	px[0] px[1]      (col, row) = (0,0) (1,0)
//	px[2] px[3]                   (0,1) (1,1)
//
// The b/c/d signs depend on this ordering; callers must supply pixels in
// exactly this order for encode and decode to agree.
func ForwardBlock(px *[4]Pixel) Coeffs {
	y0, y1, y2, y3 := px[0].Y, px[1].Y, px[2].Y, px[3].Y

	return Coeffs{
		A:  (y3 + y2 + y1 + y0) / 4,
		B:  (y3 + y2 - y1 - y0) / 4,
		C:  (y3 - y2 + y1 - y0) / 4,
		D:  (y3 - y2 - y1 + y0) / 4,
		Pb: (px[0].Pb + px[1].Pb + px[2].Pb + px[3].Pb) / 4,
		Pr: (px[0].Pr + px[1].Pr + px[2].Pr + px[3].Pr) / 4,
	}
}

// InverseBlock reconstructs the four pixels of a 2x2 block from its
// coefficients. Every pixel receives the block's average chroma. The
// returned pixels use the same block-major order as ForwardBlock.
func InverseBlock(c Coeffs) [4]Pixel {
	return [4]Pixel{
		{Y: c.A - c.B - c.C + c.D, Pb: c.Pb, Pr: c.Pr},
		{Y: c.A - c.B + c.C - c.D, Pb: c.Pb, Pr: c.Pr},
		{Y: c.A + c.B - c.C - c.D, Pb: c.Pb, Pr: c.Pr},
		{Y: c.A + c.B + c.C + c.D, Pb: c.Pb, Pr: c.Pr},
	}
}
