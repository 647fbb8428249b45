//go:build arm64

package rabbitsearch

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	if override, ok := os.LookupEnv("RABBITSEARCH_SIMD"); ok {
		if isa, ok := ParseISA(override); ok && isaAvailable(isa) {
			activeISA = isa
			return
		}
	}

	activeISA = selectBestARM64()
}

func isaAvailable(isa ISA) bool {
	switch isa {
	case ISAGeneric:
		return true
	case ISANEON:
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// selectBestARM64 mirrors hupe1980-vecgo/internal/simd's selectBestARM64:
// NEON is the only ARM64 tier this scanner targets (SVE2 window widths
// vary at runtime, which does not fit the fixed-width dispatch spec.md
// §4.2 describes), falling back to Generic when ASIMD is unavailable.
func selectBestARM64() ISA {
	if cpu.ARM64.HasASIMD {
		return ISANEON
	}

	return ISAGeneric
}
