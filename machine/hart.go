package machine

import (
	"rvmm/platform"
	"rvmm/riscv"
)

//
// Hart --
//
// One emulated hardware thread of a system machine. The register file
// is plain addressable storage: register 0's read-as-zero semantics are
// the executor's to enforce, not special-cased here.
//
// The data accessors below translate through the hart's current mode on
// every call and validate against the machine's memory. Fetch addresses
// are not validated by this layer; the executor checks them before
// dereferencing PC.

type Hart struct {
	// Id is the hart's stable 0-based identity within its machine.
	Id uint64

	// PC is the address of the next instruction, mutated only by the
	// executor.
	PC uint64

	Regs  [riscv.NumRegisters]uint64
	Cycle uint64

	Privilege riscv.Privilege
	Mode      riscv.TranslationMode

	// The owning machine. Non-owning back-reference, used only to
	// reach shared memory.
	machine *Machine
}

func (hart *Hart) reset(machine *Machine, id uint64, entry platform.Vaddr) {
	*hart = Hart{
		Id:        id,
		PC:        uint64(entry),
		Privilege: riscv.PrivilegeMachine,
		Mode:      riscv.TranslationBare,
		machine:   machine,
	}
}

func (hart *Hart) Machine() *Machine {
	return hart.machine
}

func (hart *Hart) translate(vaddr uint64) (platform.Paddr, error) {
	return Translate(platform.Vaddr(vaddr), hart.Mode)
}

func (hart *Hart) LoadMemory8(vaddr uint64) (uint8, error) {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		var value uint8
		value, err = hart.machine.memory.Load8(uint64(paddr))
		if err == nil {
			return value, nil
		}
	}
	return 0, &LoadError{Addr: platform.Vaddr(vaddr), Width: 8, Cause: err}
}

func (hart *Hart) LoadMemory16(vaddr uint64) (uint16, error) {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		var value uint16
		value, err = hart.machine.memory.Load16(uint64(paddr))
		if err == nil {
			return value, nil
		}
	}
	return 0, &LoadError{Addr: platform.Vaddr(vaddr), Width: 16, Cause: err}
}

func (hart *Hart) LoadMemory32(vaddr uint64) (uint32, error) {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		var value uint32
		value, err = hart.machine.memory.Load32(uint64(paddr))
		if err == nil {
			return value, nil
		}
	}
	return 0, &LoadError{Addr: platform.Vaddr(vaddr), Width: 32, Cause: err}
}

func (hart *Hart) LoadMemory64(vaddr uint64) (uint64, error) {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		var value uint64
		value, err = hart.machine.memory.Load64(uint64(paddr))
		if err == nil {
			return value, nil
		}
	}
	return 0, &LoadError{Addr: platform.Vaddr(vaddr), Width: 64, Cause: err}
}

func (hart *Hart) StoreMemory8(vaddr uint64, value uint8) error {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		err = hart.machine.memory.Store8(uint64(paddr), value)
		if err == nil {
			return nil
		}
	}
	return &StoreError{Addr: platform.Vaddr(vaddr), Width: 8, Cause: err}
}

func (hart *Hart) StoreMemory16(vaddr uint64, value uint16) error {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		err = hart.machine.memory.Store16(uint64(paddr), value)
		if err == nil {
			return nil
		}
	}
	return &StoreError{Addr: platform.Vaddr(vaddr), Width: 16, Cause: err}
}

func (hart *Hart) StoreMemory32(vaddr uint64, value uint32) error {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		err = hart.machine.memory.Store32(uint64(paddr), value)
		if err == nil {
			return nil
		}
	}
	return &StoreError{Addr: platform.Vaddr(vaddr), Width: 32, Cause: err}
}

func (hart *Hart) StoreMemory64(vaddr uint64, value uint64) error {
	paddr, err := hart.translate(vaddr)
	if err == nil {
		err = hart.machine.memory.Store64(uint64(paddr), value)
		if err == nil {
			return nil
		}
	}
	return &StoreError{Addr: platform.Vaddr(vaddr), Width: 64, Cause: err}
}
