package imgadd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// AddSaturating adds two width x height images and clamps each sum to 255:
// dst[i] = min(a[i] + b[i], 255) for i in [0, width*height).
// Panics if a dimension is negative or any buffer holds fewer than
// width*height pixels.
func AddSaturating(dst, a, b []uint8, width, height int) {
	n := pixelCount(width, height)
	if len(a) < n || len(b) < n || len(dst) < n {
		panic(shortBuffers(width, height, len(a), len(b), len(dst)))
	}
	if n == 0 {
		return
	}
	addSaturating(dst[:n], a[:n], b[:n])
}

// AddWidening adds two width x height images into 16-bit sums:
// dst[i] = uint16(a[i]) + uint16(b[i]) for i in [0, width*height).
// Panics if a dimension is negative or any buffer holds fewer than
// width*height pixels.
func AddWidening(dst []uint16, a, b []uint8, width, height int) {
	n := pixelCount(width, height)
	if len(a) < n || len(b) < n || len(dst) < n {
		panic(shortBuffers(width, height, len(a), len(b), len(dst)))
	}
	if n == 0 {
		return
	}
	addWidening(dst[:n], a[:n], b[:n])
}

// AddSaturatingBlock performs element-wise saturating addition:
// dst[i] = min(a[i] + b[i], 255).
// Slices must have equal length. Panics if lengths differ.
func AddSaturatingBlock(dst, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addSaturating(dst, a, b)
}

// AddWideningBlock performs element-wise widening addition:
// dst[i] = uint16(a[i]) + uint16(b[i]).
// Slices must have equal length. Panics if lengths differ.
func AddWideningBlock(dst []uint16, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addWidening(dst, a, b)
}

// StrategyInfo describes the implementation compiled into the kernels.
type StrategyInfo struct {
	// Name is "generic", "sse2" or "avx2".
	Name string

	// BuildTag is the tag that selects this strategy, empty for generic.
	BuildTag string

	// SIMDLevel is the instruction set the strategy requires.
	SIMDLevel cpu.SIMDLevel

	// LaneWidth is the number of pixels processed per step.
	LaneWidth int
}

// Strategy returns the implementation selected at build time.
func Strategy() StrategyInfo {
	return StrategyInfo{
		Name:      strategyName,
		BuildTag:  strategyBuildTag,
		SIMDLevel: strategyLevel,
		LaneWidth: strategyLaneWidth,
	}
}

func pixelCount(width, height int) int {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("imgadd: negative image size %dx%d", width, height))
	}
	if width != 0 && height > math.MaxInt/width {
		panic(fmt.Sprintf("imgadd: image size %dx%d overflows int", width, height))
	}
	return width * height
}

func shortBuffers(width, height, lenA, lenB, lenDst int) string {
	return fmt.Sprintf("imgadd: buffers too short for %dx%d image (a=%d, b=%d, dst=%d)",
		width, height, lenA, lenB, lenDst)
}
