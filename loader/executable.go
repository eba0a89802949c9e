// Package loader defines the executable image boundary: an entry point
// plus the ordered segments the machine copies into guest memory.
// Producing images (ELF parsing etc.) is the front end's business; the
// core consumes the segment list verbatim.
package loader

import (
	"os"

	"rvmm/platform"
)

// A Segment is a run of bytes placed at a fixed guest-physical address.
type Segment struct {
	Addr platform.Paddr
	Data []byte
}

// An Executable is what the machine (re)loads on every reset.
type Executable struct {
	// Entry is the address every hart's program counter is set to.
	Entry platform.Vaddr

	// Segments are copied into guest memory in order, with no
	// relocation or validation beyond the memory bounds check.
	Segments []Segment
}

// ReadRaw reads a flat binary image as a single segment loaded at base,
// with the entry point at base.
func ReadRaw(path string, base uint64) (*Executable, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	exe := &Executable{
		Entry: platform.Vaddr(base),
		Segments: []Segment{
			Segment{
				Addr: platform.Paddr(base),
				Data: data,
			},
		},
	}

	return exe, nil
}
