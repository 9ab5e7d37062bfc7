//go:build amd64 && !purego && imgadd_avx2

package imgadd

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/amd64/avx2"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	strategyName      = "avx2"
	strategyBuildTag  = "imgadd_avx2"
	strategyLevel     = cpu.SIMDAVX2
	strategyLaneWidth = avx2.LaneWidth
)

func init() {
	if !cpu.HasAVX2() {
		panic("imgadd: built with imgadd_avx2 but the CPU does not support AVX2")
	}
}

func addSaturating(dst, a, b []uint8) {
	avx2.AddSaturating(dst, a, b)
}

func addWidening(dst []uint16, a, b []uint8) {
	avx2.AddWidening(dst, a, b)
}
