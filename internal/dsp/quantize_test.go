package dsp

import (
	"math"
	"testing"
)

func TestChromaTable_Bijection(t *testing.T) {
	// Every representative must map back to its own index.
	for i := uint32(0); i < 16; i++ {
		if got := IndexOfChroma(ChromaOfIndex(i)); got != i {
			t.Errorf("index %d: ChromaOfIndex -> IndexOfChroma gave %d", i, got)
		}
	}
}

func TestIndexOfChroma_Extremes(t *testing.T) {
	if got := IndexOfChroma(-0.5); got != 0 {
		t.Errorf("IndexOfChroma(-0.5) = %d, want 0", got)
	}
	if got := IndexOfChroma(0.5); got != 15 {
		t.Errorf("IndexOfChroma(0.5) = %d, want 15", got)
	}
}

func TestQuantizeBCD_FloorTowardNegativeInfinity(t *testing.T) {
	tests := []struct {
		n    float64
		want int32
	}{
		{0, 0},
		{0.059, 2},   // 2.95 floors to 2
		{-0.059, -3}, // -2.95 floors to -3, not -2
		{-0.001, -1}, // -0.05 floors to -1
		{0.3, 15},
		{-0.3, -15},
		{0.5, 15},   // 25 clips to 15
		{-0.5, -15}, // -25 clips to -15
	}
	for _, tt := range tests {
		if got := quantizeBCD(tt.n); got != tt.want {
			t.Errorf("quantizeBCD(%v) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestQuantize_LumaSaturation(t *testing.T) {
	q := Quantize(Coeffs{A: 1})
	if q.A != 511 {
		t.Errorf("a=1 quantized to %d, want 511", q.A)
	}
	q = Quantize(Coeffs{A: 0})
	if q.A != 0 {
		t.Errorf("a=0 quantized to %d, want 0", q.A)
	}
}

func TestQuantize_FitsDeclaredWidths(t *testing.T) {
	// Sweep coefficient space; every output must fit its packed field.
	for a := 0.0; a <= 1.0; a += 0.001 {
		q := Quantize(Coeffs{A: a, B: a - 0.5, C: 0.5 - a, D: 2 * (a - 0.5)})
		if q.A > 511 {
			t.Fatalf("a=%v: quantized A %d exceeds 9 bits", a, q.A)
		}
		for _, k := range []int32{q.B, q.C, q.D} {
			if k < -16 || k > 15 {
				t.Fatalf("a=%v: coefficient %d exceeds 5 signed bits", a, k)
			}
		}
		if q.Pb > 15 || q.Pr > 15 {
			t.Fatalf("a=%v: chroma index out of 4 bits", a)
		}
	}
}

func TestDequantize_Idempotence(t *testing.T) {
	// Requantizing dequantized values must reproduce them exactly, for
	// every representable coefficient; this is what makes
	// decompress-then-compress stable. The -14 and -7 steps are the
	// ones a double-precision rescale gets wrong.
	for a := uint32(0); a <= 511; a += 7 {
		for k := int32(-15); k <= 15; k++ {
			q := Quantized{A: a, B: k, C: -k, D: k, Pb: 3, Pr: 12}
			if got := Quantize(Dequantize(q)); got != q {
				t.Fatalf("requantize(%+v) = %+v", q, got)
			}
		}
	}
}

func TestDequantize_Values(t *testing.T) {
	c := Dequantize(Quantized{A: 511, B: -15, C: 15, D: 0, Pb: 0, Pr: 15})
	if c.A != 1 {
		t.Errorf("A = %v, want 1", c.A)
	}
	if math.Abs(c.B+0.3) > 1e-12 {
		t.Errorf("B = %v, want -0.3", c.B)
	}
	if c.Pb != -0.4 || c.Pr != 0.35 {
		t.Errorf("chroma = (%v, %v), want (-0.4, 0.35)", c.Pb, c.Pr)
	}
}

func TestIndexOfChroma_NeutralIsExact(t *testing.T) {
	i := IndexOfChroma(0)
	if ChromaOfIndex(i) != 0 {
		t.Errorf("chroma representative for 0 is %v, want 0", ChromaOfIndex(i))
	}
}
