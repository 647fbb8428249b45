//go:build !amd64 && !arm64

package rabbitsearch

import "os"

func init() {
	if override, ok := os.LookupEnv("RABBITSEARCH_SIMD"); ok {
		if isa, ok := ParseISA(override); ok && isa == ISAGeneric {
			activeISA = isa
			return
		}
	}

	activeISA = ISAGeneric
}

func isaAvailable(isa ISA) bool { return isa == ISAGeneric }
