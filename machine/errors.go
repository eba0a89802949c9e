package machine

import (
	"errors"
	"fmt"

	"rvmm/platform"
)

// Memory access errors.
var ExecutionOutOfBounds = errors.New("Memory access out of bounds!")
var TranslationUnimplemented = errors.New("Translation mode not implemented!")

// Lifecycle errors.
var MachineDisposed = errors.New("Machine already disposed!")

// A LoadError describes a failed data load: the virtual address, the
// access width in bits, and the underlying cause (one of the sentinels
// above, reachable through errors.Is).
type LoadError struct {
	Addr  platform.Vaddr
	Width uint
	Cause error
}

func (err *LoadError) Error() string {
	return fmt.Sprintf("load%d at %x: %v", err.Width, uint64(err.Addr), err.Cause)
}

func (err *LoadError) Unwrap() error {
	return err.Cause
}

// A StoreError is the store-direction counterpart of LoadError.
type StoreError struct {
	Addr  platform.Vaddr
	Width uint
	Cause error
}

func (err *StoreError) Error() string {
	return fmt.Sprintf("store%d at %x: %v", err.Width, uint64(err.Addr), err.Cause)
}

func (err *StoreError) Unwrap() error {
	return err.Cause
}
