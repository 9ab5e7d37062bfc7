//go:build !purego && amd64

package sse2

import "github.com/cwbudde/algo-imgadd/internal/arch/generic"

// LaneWidth is the number of 8-bit pixels processed per 128-bit step.
const LaneWidth = 16

// AddSaturating performs element-wise saturating addition:
// dst[i] = min(a[i] + b[i], 255).
// Slices must have equal length. Panics if lengths differ.
// Uses PADDUSB on 16 pixels at a time; the tail past the last full
// vector is finished by the scalar kernel.
func AddSaturating(dst, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	n := len(dst) &^ (LaneWidth - 1)
	if n > 0 {
		addSaturatingSSE2(dst[:n], a[:n], b[:n])
	}
	if n < len(dst) {
		generic.AddSaturating(dst[n:], a[n:], b[n:])
	}
}

// AddWidening performs element-wise widening addition:
// dst[i] = uint16(a[i]) + uint16(b[i]).
// Slices must have equal length. Panics if lengths differ.
// Each 16-pixel step unpacks both inputs into two groups of eight 16-bit
// lanes and adds them with PADDW.
func AddWidening(dst []uint16, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	n := len(dst) &^ (LaneWidth - 1)
	if n > 0 {
		addWideningSSE2(dst[:n], a[:n], b[:n])
	}
	if n < len(dst) {
		generic.AddWidening(dst[n:], a[n:], b[n:])
	}
}

// Assembly function declarations (implemented in add.s).
// len(dst) must be a multiple of LaneWidth.

//go:noescape
func addSaturatingSSE2(dst, a, b []uint8)

//go:noescape
func addWideningSSE2(dst []uint16, a, b []uint8)
