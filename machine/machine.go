package machine

import (
	"log"

	"github.com/davecgh/go-spew/spew"

	"rvmm/loader"
)

//
// Machine --
//
// The system execution model: one guest-physical memory arena shared by
// a fixed array of harts, plus the executable image used to (re)seed
// both. Lifecycle is create, any number of resets, one dispose.

type Machine struct {
	memory *Memory
	harts  []Hart
	exe    *loader.Executable

	disposed bool
}

// NewMachine creates a machine with the given memory size and hart
// count and brings it to the ready state (equivalent to Reset(false)).
// numHarts must be at least one; violating that is a caller bug, not an
// environmental condition. On any failure after partial allocation,
// everything already acquired is released.
func NewMachine(memorySize uint64, exe *loader.Executable, numHarts uint) (*Machine, error) {

	if numHarts < 1 {
		panic("machine: need at least one hart")
	}

	memory, err := NewMemory(memorySize)
	if err != nil {
		return nil, err
	}

	machine := &Machine{
		memory: memory,
		harts:  make([]Hart, numHarts),
		exe:    exe,
	}

	if err := machine.Reset(false); err != nil {
		if derr := machine.memory.Dispose(); derr != nil {
			log.Printf("machine: releasing memory after failed create: %v", derr)
		}
		return nil, err
	}

	log.Printf("machine: created with %d harts", numHarts)
	return machine, nil
}

// Reset re-creates every hart's initial state: id = index, pc = the
// executable's entry point, machine privilege, bare translation,
// everything else zero. Harts that previously ran at another privilege
// or translation mode are not preserved; the reset is uniform.
//
// When clearMemory is set the arena is zero-filled first. The
// executable's segments are reloaded either way, so a reset never
// leaves the entry point unexecutable -- but a Reset(false) leaves
// non-segment memory (prior heap, stacks) untouched.
func (machine *Machine) Reset(clearMemory bool) error {

	if machine.disposed {
		return MachineDisposed
	}

	if clearMemory {
		machine.memory.Reset()
	}

	for i := range machine.harts {
		machine.harts[i].reset(machine, uint64(i), machine.exe.Entry)
	}

	return machine.memory.LoadExecutable(machine.exe)
}

// Dispose releases the hart array and the memory mapping. A second
// call fails with MachineDisposed, as does any reset afterwards.
func (machine *Machine) Dispose() error {

	if machine.disposed {
		return MachineDisposed
	}
	machine.disposed = true

	machine.harts = nil
	return machine.memory.Dispose()
}

func (machine *Machine) Memory() *Memory {
	return machine.memory
}

func (machine *Machine) NumHarts() uint {
	return uint(len(machine.harts))
}

// Hart returns the hart at the given index. The pointer stays valid
// across resets and is invalidated only by Dispose.
func (machine *Machine) Hart(index uint) *Hart {
	return &machine.harts[index]
}

func (machine *Machine) Dump() {
	log.Printf(
		"machine: %d harts, %x bytes memory",
		len(machine.harts),
		machine.memory.Size())
	log.Print(spew.Sdump(machine.harts))
}
