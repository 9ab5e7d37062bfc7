//go:build !purego && amd64

package avx2

import "github.com/cwbudde/algo-imgadd/internal/arch/generic"

// LaneWidth is the number of 8-bit pixels processed per 256-bit step.
const LaneWidth = 32

// AddSaturating performs element-wise saturating addition:
// dst[i] = min(a[i] + b[i], 255).
// Slices must have equal length. Panics if lengths differ.
// Uses VPADDUSB on 32 pixels at a time; the tail past the last full
// vector is finished by the scalar kernel.
//
// The caller must make sure the CPU supports AVX2.
func AddSaturating(dst, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	n := len(dst) &^ (LaneWidth - 1)
	if n > 0 {
		addSaturatingAVX2(dst[:n], a[:n], b[:n])
	}
	if n < len(dst) {
		generic.AddSaturating(dst[n:], a[n:], b[n:])
	}
}

// AddWidening performs element-wise widening addition:
// dst[i] = uint16(a[i]) + uint16(b[i]).
// Slices must have equal length. Panics if lengths differ.
// Each 32-pixel step unpacks both inputs into two groups of sixteen 16-bit
// lanes and adds them with VPADDW. The inputs are permuted across 128-bit
// halves first so the in-lane unpack yields pixels in memory order.
//
// The caller must make sure the CPU supports AVX2.
func AddWidening(dst []uint16, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	n := len(dst) &^ (LaneWidth - 1)
	if n > 0 {
		addWideningAVX2(dst[:n], a[:n], b[:n])
	}
	if n < len(dst) {
		generic.AddWidening(dst[n:], a[n:], b[n:])
	}
}

// Assembly function declarations (implemented in add.s).
// len(dst) must be a multiple of LaneWidth.

//go:noescape
func addSaturatingAVX2(dst, a, b []uint8)

//go:noescape
func addWideningAVX2(dst []uint16, a, b []uint8)
