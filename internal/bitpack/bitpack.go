// Package bitpack provides fixed-width field access on 64-bit words.
//
// A field is addressed by its width in bits and the index of its least
// significant bit. Fields may hold unsigned or two's-complement signed
// values. All operations are pure: NewU and NewS return a fresh word
// rather than mutating in place.
//
// Width and lsb must satisfy width+lsb <= 64; violating that precondition
// panics, as does packing a value that does not fit its declared width.
// Both conditions indicate a bug in the caller, not bad input.
package bitpack

import "errors"

// ErrOverflow is the panic value raised by NewU and NewS when a value
// cannot be represented in the declared field width.
var ErrOverflow = errors.New("bitpack: overflow packing bits")

// shl is a left shift with shifts of 64 or more defined to produce 0.
func shl(n uint64, by uint) uint64 {
	if by >= 64 {
		return 0
	}
	return n << by
}

// shru is an unsigned right shift with shifts of 64 or more defined to
// produce 0.
func shru(n uint64, by uint) uint64 {
	if by >= 64 {
		return 0
	}
	return n >> by
}

// shrs is an arithmetic right shift with shifts of 64 or more defined to
// produce 0.
func shrs(n int64, by uint) int64 {
	if by >= 64 {
		return 0
	}
	return n >> by
}

// mask returns a word with ones in the addressed field and zeros
// elsewhere. It panics when the field does not fit in 64 bits.
func mask(width, lsb uint) uint64 {
	if width+lsb > 64 {
		panic("bitpack: field exceeds 64 bits")
	}
	return shl(shru(^uint64(0), 64-width), lsb)
}

// FitsU reports whether n is representable as an unsigned integer of the
// given width. Zero fits in zero bits.
func FitsU(n uint64, width uint) bool {
	return shru(n, width) == 0
}

// FitsS reports whether n is representable as a two's-complement signed
// integer of the given width, i.e. -2^(width-1) <= n < 2^(width-1).
// Zero fits in zero bits.
func FitsS(n int64, width uint) bool {
	if width == 0 {
		return n == 0
	}
	if width >= 64 {
		return true
	}
	lim := int64(1) << (width - 1)
	return n >= -lim && n < lim
}

// GetU extracts the unsigned field of the given width at lsb from word.
func GetU(word uint64, width, lsb uint) uint64 {
	return shru(word&mask(width, lsb), lsb)
}

// GetS extracts the signed field of the given width at lsb from word,
// sign-extending the field's most significant bit. The field is shifted
// to the top of the word and arithmetic-shifted back down so the sign
// propagates.
func GetS(word uint64, width, lsb uint) int64 {
	v := shl(word&mask(width, lsb), 64-width-lsb)
	return shrs(int64(v), 64-width)
}

// NewU returns word with the unsigned field of the given width at lsb
// replaced by value. It panics with ErrOverflow when value does not fit.
func NewU(word uint64, width, lsb uint, value uint64) uint64 {
	if !FitsU(value, width) {
		panic(ErrOverflow)
	}
	return (word &^ mask(width, lsb)) | shl(value, lsb)
}

// NewS returns word with the signed field of the given width at lsb
// replaced by value. Only the low width bits of value's two's-complement
// representation are stored. It panics with ErrOverflow when value does
// not fit.
func NewS(word uint64, width, lsb uint, value int64) uint64 {
	if !FitsS(value, width) {
		panic(ErrOverflow)
	}
	return (word &^ mask(width, lsb)) | shl(uint64(value)&mask(width, 0), lsb)
}
