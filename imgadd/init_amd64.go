//go:build amd64 && !purego

package imgadd

// Registers every amd64 variant so tests and tools can compare them. The
// kernels themselves are bound in strategy_*.go.

import (
	_ "github.com/cwbudde/algo-imgadd/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-imgadd/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-imgadd/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-imgadd/internal/arch/registry"   // initialize backend registry
)
