package usermode

import (
	"errors"
	"fmt"
)

// Lifecycle errors.
var HartDisposed = errors.New("Hart already disposed!")

// An UnsupportedSyscallError reports an environment call the translator
// could not service. Name is filled in for numbers that are part of the
// known guest ABI table but not yet implemented; it is empty for
// numbers the translator does not recognize at all.
type UnsupportedSyscallError struct {
	Num  uint64
	Name string
}

func (err *UnsupportedSyscallError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("unrecognized syscall %d", err.Num)
	}
	return fmt.Sprintf("syscall %s (%d) not yet supported", err.Name, err.Num)
}
