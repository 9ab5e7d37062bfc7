package generic

import (
	"github.com/cwbudde/algo-imgadd/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the scalar kernels. They are the baseline every other
// variant is checked against.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		LaneWidth: 1,
		Priority:  0,

		AddSaturating: AddSaturating,
		AddWidening:   AddWidening,
	})
}
