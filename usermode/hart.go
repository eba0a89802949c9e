// Package usermode implements the user execution model: a single hart
// whose memory accesses alias the host process's address space directly
// and whose environment calls are forwarded to the host kernel.
package usermode

import (
	"unsafe"

	"rvmm/platform"
	"rvmm/riscv"
)

//
// Hart --
//
// A user-model hart. There is no guest-physical arena: the virtual
// address a guest instruction computes *is* a host address, so the hart
// itself is the addressable context. The hart owns one private
// anonymous mapping used as its stack; the stack pointer starts at the
// mapping's one-past-the-end address and grows downward.
//
// Load and Store below perform no translation and no validation of the
// target address. That is only acceptable while the guest program is
// trusted to share the host's address space; running untrusted code
// through this model requires adding memory-mapping validation first.

type Hart struct {
	// PC is the address of the next instruction, mutated only by the
	// executor.
	PC uint64

	Regs  [riscv.NumRegisters]uint64
	Cycle uint64

	stack []byte
}

// NewHart creates a user-model hart with a dedicated stack mapping of
// the given size. The size must be a nonzero multiple of the host page
// size; violating that is a caller bug and panics. On mapping failure
// no partial state survives.
func NewHart(stackSize uint64) (*Hart, error) {

	if stackSize == 0 || stackSize != platform.Align(stackSize, platform.PageSize, false) {
		panic("usermode: stack size must be a nonzero multiple of the page size")
	}

	stack, err := platform.AllocPages(stackSize)
	if err != nil {
		return nil, err
	}

	hart := &Hart{stack: stack}
	hart.Regs[riscv.RegSP] = hart.StackBase() + stackSize
	return hart, nil
}

// StackBase is the host address of the lowest byte of the stack
// mapping. Calling it on a disposed hart is a caller bug.
func (hart *Hart) StackBase() uint64 {
	if hart.stack == nil {
		panic("usermode: hart already disposed")
	}
	return uint64(uintptr(unsafe.Pointer(&hart.stack[0])))
}

func (hart *Hart) StackSize() uint64 {
	return uint64(len(hart.stack))
}

// Dispose releases the stack mapping, symmetrically with its creation
// in NewHart. A second call fails with HartDisposed.
func (hart *Hart) Dispose() error {

	if hart.stack == nil {
		return HartDisposed
	}

	stack := hart.stack
	hart.stack = nil
	return platform.ReleasePages(stack)
}

// Unchecked host-memory accessors. Values are little-endian by virtue
// of every supported host architecture being little-endian, matching
// the guest's byte order.

func (hart *Hart) Load8(vaddr uint64) uint8 {
	return *(*uint8)(unsafe.Pointer(uintptr(vaddr)))
}

func (hart *Hart) Load16(vaddr uint64) uint16 {
	return *(*uint16)(unsafe.Pointer(uintptr(vaddr)))
}

func (hart *Hart) Load32(vaddr uint64) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(vaddr)))
}

func (hart *Hart) Load64(vaddr uint64) uint64 {
	return *(*uint64)(unsafe.Pointer(uintptr(vaddr)))
}

func (hart *Hart) Store8(vaddr uint64, value uint8) {
	*(*uint8)(unsafe.Pointer(uintptr(vaddr))) = value
}

func (hart *Hart) Store16(vaddr uint64, value uint16) {
	*(*uint16)(unsafe.Pointer(uintptr(vaddr))) = value
}

func (hart *Hart) Store32(vaddr uint64, value uint32) {
	*(*uint32)(unsafe.Pointer(uintptr(vaddr))) = value
}

func (hart *Hart) Store64(vaddr uint64, value uint64) {
	*(*uint64)(unsafe.Pointer(uintptr(vaddr))) = value
}
