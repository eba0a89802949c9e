package platform

// Address types.
//
// A Vaddr is an address as a guest hart sees it; a Paddr is an offset
// into guest-physical memory. The two coincide under bare translation.
type Vaddr uint64
type Paddr uint64

func Align(addr uint64, alignment uint, up bool) uint64 {

	// Aligned already?
	if addr%uint64(alignment) == 0 {
		return addr
	}

	// Give the closest aligned address.
	addr = addr - (addr % uint64(alignment))

	if up {
		// Should we align up?
		return addr + uint64(alignment)
	}
	return addr
}

func (paddr Paddr) After(length uint64) Paddr {
	return Paddr(uint64(paddr) + length)
}
