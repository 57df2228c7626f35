package comp40

import (
	"github.com/deepteams/comp40/internal/bitpack"
	"github.com/deepteams/comp40/internal/dsp"
)

// Code-word field layout, MSB first:
//
//	bits 31..23  a   (9, unsigned)
//	bits 22..18  b   (5, signed)
//	bits 17..13  c   (5, signed)
//	bits 12..8   d   (5, signed)
//	bits 7..4    Pb  (4, unsigned chroma index)
//	bits 3..0    Pr  (4, unsigned chroma index)
const (
	aWidth      = 9
	bcdWidth    = 5
	chromaWidth = 4

	aLSB  = 23
	bLSB  = 18
	cLSB  = 13
	dLSB  = 8
	pbLSB = 4
	prLSB = 0
)

// packWord packs one block's quantized coefficients into a code word.
// The fields are assembled in a 64-bit scratch word; the code word is
// its low 32 bits. The quantizer clips every coefficient into its field
// range, so packing cannot overflow on any reachable input.
func packWord(q dsp.Quantized) uint32 {
	var w uint64
	w = bitpack.NewU(w, aWidth, aLSB, uint64(q.A))
	w = bitpack.NewS(w, bcdWidth, bLSB, int64(q.B))
	w = bitpack.NewS(w, bcdWidth, cLSB, int64(q.C))
	w = bitpack.NewS(w, bcdWidth, dLSB, int64(q.D))
	w = bitpack.NewU(w, chromaWidth, pbLSB, uint64(q.Pb))
	w = bitpack.NewU(w, chromaWidth, prLSB, uint64(q.Pr))
	return uint32(w)
}

// unpackWord extracts one block's quantized coefficients from a code
// word.
func unpackWord(w uint32) dsp.Quantized {
	word := uint64(w)
	return dsp.Quantized{
		A:  uint32(bitpack.GetU(word, aWidth, aLSB)),
		B:  int32(bitpack.GetS(word, bcdWidth, bLSB)),
		C:  int32(bitpack.GetS(word, bcdWidth, cLSB)),
		D:  int32(bitpack.GetS(word, bcdWidth, dLSB)),
		Pb: uint32(bitpack.GetU(word, chromaWidth, pbLSB)),
		Pr: uint32(bitpack.GetU(word, chromaWidth, prLSB)),
	}
}
