//go:build amd64

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

	activeISA = selectBestAMD64()
}

func isaAvailable(isa ISA) bool {
	switch isa {
	case ISAGeneric:
		return true
	case ISAAVX2:
		return cpu.X86.HasAVX2
	case ISAAVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	default:
		return false
	}
}

// selectBestAMD64 mirrors the ISA-selection shape from
// hupe1980-vecgo/internal/simd's selectBestAMD64: prefer the widest window
// the CPU actually supports, falling back to Generic.
func selectBestAMD64() ISA {
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		return ISAAVX512
	}

	if cpu.X86.HasAVX2 {
		return ISAAVX2
	}

	return ISAGeneric
}
