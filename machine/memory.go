package machine

import (
	"encoding/binary"
	"fmt"
	"log"

	"rvmm/loader"
	"rvmm/platform"
)

//
// Memory --
//
// The guest-physical address space of a system machine: a fixed-size,
// contiguous arena starting at address 0, backed by an anonymous host
// mapping. All typed accesses are unsigned, little-endian regardless of
// host byte order, and bounds-checked against the full access width (an
// access whose last byte falls past the end is rejected; a failing
// access never performs a partial read or write).
//
// Load and store take no lock. Harts are data, not threads of control;
// if the executor steps multiple harts in parallel it owns whatever
// memory-consistency guarantee the emulated multiprocessor needs. This
// layer provides the raw bounds-checked primitive only, not atomicity.

type Memory struct {
	mmap []byte
}

// NewMemory maps a zero-filled guest-physical arena of the given size.
// The size is fixed for the life of the memory.
func NewMemory(size uint64) (*Memory, error) {

	mmap, err := platform.AllocPages(size)
	if err != nil {
		return nil, err
	}

	log.Printf("memory: created %x byte arena", size)
	return &Memory{mmap: mmap}, nil
}

func (memory *Memory) Size() uint64 {
	return uint64(len(memory.mmap))
}

// check rejects any access not fully contained in the arena,
// last byte included.
func (memory *Memory) check(paddr uint64, bytes uint64) error {
	if paddr > memory.Size() || bytes > memory.Size()-paddr {
		return ExecutionOutOfBounds
	}
	return nil
}

func (memory *Memory) Load8(paddr uint64) (uint8, error) {
	if err := memory.check(paddr, 1); err != nil {
		return 0, err
	}
	return memory.mmap[paddr], nil
}

func (memory *Memory) Load16(paddr uint64) (uint16, error) {
	if err := memory.check(paddr, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(memory.mmap[paddr:]), nil
}

func (memory *Memory) Load32(paddr uint64) (uint32, error) {
	if err := memory.check(paddr, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(memory.mmap[paddr:]), nil
}

func (memory *Memory) Load64(paddr uint64) (uint64, error) {
	if err := memory.check(paddr, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(memory.mmap[paddr:]), nil
}

func (memory *Memory) Store8(paddr uint64, value uint8) error {
	if err := memory.check(paddr, 1); err != nil {
		return err
	}
	memory.mmap[paddr] = value
	return nil
}

func (memory *Memory) Store16(paddr uint64, value uint16) error {
	if err := memory.check(paddr, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(memory.mmap[paddr:], value)
	return nil
}

func (memory *Memory) Store32(paddr uint64, value uint32) error {
	if err := memory.check(paddr, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(memory.mmap[paddr:], value)
	return nil
}

func (memory *Memory) Store64(paddr uint64, value uint64) error {
	if err := memory.check(paddr, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(memory.mmap[paddr:], value)
	return nil
}

// Reset zero-fills the entire arena.
func (memory *Memory) Reset() {
	clear(memory.mmap)
}

// LoadExecutable copies every segment of the executable into the arena
// at its declared address, overwriting whatever is there. It is
// idempotent and is called on every machine reset.
func (memory *Memory) LoadExecutable(exe *loader.Executable) error {

	for _, segment := range exe.Segments {
		end := segment.Addr.After(uint64(len(segment.Data)))
		if end < segment.Addr || uint64(end) > memory.Size() {
			return fmt.Errorf(
				"segment at %x (%x bytes): %w",
				uint64(segment.Addr),
				len(segment.Data),
				ExecutionOutOfBounds)
		}
		copy(memory.mmap[segment.Addr:], segment.Data)
	}

	return nil
}

// Dispose releases the arena mapping. Called exactly once, by the
// owning machine.
func (memory *Memory) Dispose() error {
	mmap := memory.mmap
	memory.mmap = nil
	return platform.ReleasePages(mmap)
}
