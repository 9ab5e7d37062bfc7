//go:build purego || !amd64 || !(imgadd_sse2 || imgadd_avx2)

package imgadd

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	strategyName      = "generic"
	strategyBuildTag  = ""
	strategyLevel     = cpu.SIMDNone
	strategyLaneWidth = 1
)

func addSaturating(dst, a, b []uint8) {
	generic.AddSaturating(dst, a, b)
}

func addWidening(dst []uint16, a, b []uint8) {
	generic.AddWidening(dst, a, b)
}
