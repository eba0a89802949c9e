package machine

import (
	"rvmm/platform"
	"rvmm/riscv"
)

// Translate converts a virtual address to a guest-physical address
// under the given translation mode. Bare translation is the identity;
// the paged modes are unimplemented dispatch points and fail with
// TranslationUnimplemented rather than faulting.
//
// The mode is per-hart mutable state, so callers re-translate on every
// access; a translation result must never be cached across accesses
// that could observe a different mode.
func Translate(vaddr platform.Vaddr, mode riscv.TranslationMode) (platform.Paddr, error) {
	switch mode {
	case riscv.TranslationBare:
		return platform.Paddr(vaddr), nil
	default:
		return 0, TranslationUnimplemented
	}
}
