//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2 kernels.
//
// AVX2 provides 256-bit integer operations. Available on Intel Haswell
// (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		BuildTag:  "imgadd_avx2",
		SIMDLevel: cpu.SIMDAVX2,
		LaneWidth: LaneWidth,
		Priority:  20,

		AddSaturating: AddSaturating,
		AddWidening:   AddWidening,
	})
}
