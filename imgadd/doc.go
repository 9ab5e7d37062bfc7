// Package imgadd adds 8-bit grayscale images pixel by pixel.
//
// Two kernels are provided:
//
//   - AddSaturating: dst[i] = min(a[i] + b[i], 255), 8-bit output
//   - AddWidening:   dst[i] = a[i] + b[i], 16-bit output (range 0..510)
//
// Images are flat row-major []uint8 buffers of exactly width*height
// pixels with no stride or padding. The caller owns and allocates all
// buffers; the kernels read a and b, overwrite dst[:width*height] and touch
// nothing else. dst must not overlap a or b.
//
// # Execution strategies
//
// Each kernel has three implementations that produce bit-identical output:
//
//   - generic: scalar Go loop, one pixel per step
//   - sse2:    128-bit vectors, 16 pixels per step
//   - avx2:    256-bit vectors, 32 pixels per step
//
// Exactly one is compiled in, chosen by build tags:
//
//	go build                        # generic
//	go build -tags imgadd_sse2      # sse2 (amd64 only)
//	go build -tags imgadd_avx2      # avx2 (amd64 only)
//
// The purego tag and non-amd64 targets always select generic. There is no
// run-time dispatch: the kernels call the selected implementation
// directly. A binary built for sse2 or avx2 panics during initialization
// if the CPU lacks the instruction set. Strategy reports which variant was
// compiled in.
//
// Pixel counts need not be a multiple of the vector width. The vector
// strategies run full vectors first and finish the remaining pixels with
// the scalar kernel.
//
// # Contract violations
//
// Negative dimensions, a width*height that overflows int, and buffers
// shorter than width*height are programming errors and panic. There is no
// error return.
package imgadd
