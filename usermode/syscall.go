package usermode

import (
	"fmt"
	"io"
	"log"
	"unsafe"

	"golang.org/x/sys/unix"

	"rvmm/riscv"
)

//
// Handler --
//
// The syscall translator. The guest issues environment calls using the
// RISC-V 64-bit linux ABI: the syscall number in a7, arguments in
// a0..a5, return value written back to a0. The handler decodes that
// convention and forwards to the equivalent host operation.

type Handler struct {
	// Trace, when set, receives one line per syscall invocation and
	// one per result. Its absence changes nothing but the logging.
	Trace io.Writer

	// Abort controls the policy for syscalls the translator cannot
	// service: when true, the process terminates with a diagnostic
	// naming the syscall. Either way HandleSyscall reports an
	// UnsupportedSyscallError, so an embedder that clears Abort can
	// decide for itself.
	Abort bool

	exit func(code int)
}

func NewHandler() *Handler {
	return &Handler{
		Abort: true,
		exit:  unix.Exit,
	}
}

func (handler *Handler) trace(format string, args ...interface{}) {
	if handler.Trace != nil {
		fmt.Fprintf(handler.Trace, format+"\n", args...)
	}
}

// HandleSyscall services the environment call pending on the hart. It
// returns true when the trap was handled and the executor should keep
// stepping; other trap kinds can later return false through the same
// contract.
func (handler *Handler) HandleSyscall(hart *Hart) (bool, error) {

	num := hart.Regs[riscv.RegA7]

	switch num {

	case riscv.SysExitGroup:
		code := int(int64(hart.Regs[riscv.RegA0]))
		handler.trace("syscall: exit_group(%d)", code)
		handler.exit(code)
		return true, nil

	case riscv.SysWrite:
		fd := int(int64(hart.Regs[riscv.RegA0]))
		buf := hart.Regs[riscv.RegA1]
		count := hart.Regs[riscv.RegA2]
		handler.trace("syscall: write(%d, %x, %d)", fd, buf, count)

		// The buffer address is a host address (see Hart) and is
		// handed to the host write as-is.
		data := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(buf))), count)
		n, err := unix.Write(fd, data)
		if err != nil {
			errno, ok := err.(unix.Errno)
			if !ok {
				errno = unix.EIO
			}
			hart.Regs[riscv.RegA0] = uint64(-int64(errno))
		} else {
			hart.Regs[riscv.RegA0] = uint64(n)
		}
		handler.trace("syscall: write => %d", int64(hart.Regs[riscv.RegA0]))
		return true, nil
	}

	err := &UnsupportedSyscallError{Num: num, Name: riscv.SyscallName(num)}
	if handler.Abort {
		log.Fatalf("usermode: %v", err)
	}
	return false, err
}
