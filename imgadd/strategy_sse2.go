//go:build amd64 && !purego && imgadd_sse2 && !imgadd_avx2

package imgadd

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/amd64/sse2"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	strategyName      = "sse2"
	strategyBuildTag  = "imgadd_sse2"
	strategyLevel     = cpu.SIMDSSE2
	strategyLaneWidth = sse2.LaneWidth
)

func init() {
	if !cpu.HasSSE2() {
		panic("imgadd: built with imgadd_sse2 but the CPU does not support SSE2")
	}
}

func addSaturating(dst, a, b []uint8) {
	sse2.AddSaturating(dst, a, b)
}

func addWidening(dst []uint16, a, b []uint8) {
	sse2.AddWidening(dst, a, b)
}
