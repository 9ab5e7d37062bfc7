//go:build purego || !amd64

package imgadd

import (
	_ "github.com/cwbudde/algo-imgadd/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-imgadd/internal/arch/registry" // initialize backend registry
)
