//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the SSE2 kernels.
//
// SSE2 is part of the x86-64 baseline, so every amd64 CPU can run them.
//
// Priority: 10 (preferred over generic, lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		BuildTag:  "imgadd_sse2",
		SIMDLevel: cpu.SIMDSSE2,
		LaneWidth: LaneWidth,
		Priority:  10,

		AddSaturating: AddSaturating,
		AddWidening:   AddWidening,
	})
}
