// Package comp40 provides a pure Go encoder and decoder for the COMP40
// compressed image format, a lossy codec with a fixed 3:1 compression
// ratio over 24-bit PPM input.
//
// The codec converts RGB pixels to the Y/Pb/Pr color space, transforms
// each 2x2 pixel block into a mean luma, three luma difference
// coefficients, and two chroma averages, quantizes the six values, and
// packs them into one 32-bit code word per block. Decoding inverts each
// stage. The loss comes from chroma averaging and coefficient
// quantization; images with odd dimensions additionally lose their last
// column or row.
//
// Basic usage for compressing a PPM stream:
//
//	err := comp40.Compress(os.Stdout, os.Stdin)
//
// and for decompressing:
//
//	err := comp40.Decompress(os.Stdout, os.Stdin)
//
// The package also integrates with the standard library's image
// package: Encode accepts any image.Image, Decode returns one, and the
// format is registered so image.Decode recognizes compressed files.
package comp40
