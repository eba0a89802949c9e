package riscv

// Linux syscall numbers as seen from a 64-bit RISC-V guest.
//
// These are the guest ABI's numbers, not the host's; the usermode
// syscall translator exists precisely to bridge the two.
const (
	SysGetcwd       = 17
	SysFcntl        = 25
	SysIoctl        = 29
	SysUnlinkat     = 35
	SysOpenat       = 56
	SysClose        = 57
	SysPipe2        = 59
	SysLseek        = 62
	SysRead         = 63
	SysWrite        = 64
	SysWritev       = 66
	SysReadlinkat   = 78
	SysNewfstatat   = 79
	SysFstat        = 80
	SysExit         = 93
	SysExitGroup    = 94
	SysSetTidAddr   = 96
	SysFutex        = 98
	SysNanosleep    = 101
	SysClockGettime = 113
	SysSchedYield   = 124
	SysKill         = 129
	SysRtSigaction  = 134
	SysUname        = 160
	SysGetrlimit    = 163
	SysGettimeofday = 169
	SysGetpid       = 172
	SysGettid       = 178
	SysBrk          = 214
	SysMunmap       = 215
	SysClone        = 220
	SysMmap         = 222
	SysMadvise      = 233
	SysPrlimit64    = 261
	SysGetrandom    = 278
)

var syscallNames = map[uint64]string{
	SysGetcwd:       "getcwd",
	SysFcntl:        "fcntl",
	SysIoctl:        "ioctl",
	SysUnlinkat:     "unlinkat",
	SysOpenat:       "openat",
	SysClose:        "close",
	SysPipe2:        "pipe2",
	SysLseek:        "lseek",
	SysRead:         "read",
	SysWrite:        "write",
	SysWritev:       "writev",
	SysReadlinkat:   "readlinkat",
	SysNewfstatat:   "newfstatat",
	SysFstat:        "fstat",
	SysExit:         "exit",
	SysExitGroup:    "exit_group",
	SysSetTidAddr:   "set_tid_address",
	SysFutex:        "futex",
	SysNanosleep:    "nanosleep",
	SysClockGettime: "clock_gettime",
	SysSchedYield:   "sched_yield",
	SysKill:         "kill",
	SysRtSigaction:  "rt_sigaction",
	SysUname:        "uname",
	SysGetrlimit:    "getrlimit",
	SysGettimeofday: "gettimeofday",
	SysGetpid:       "getpid",
	SysGettid:       "gettid",
	SysBrk:          "brk",
	SysMunmap:       "munmap",
	SysClone:        "clone",
	SysMmap:         "mmap",
	SysMadvise:      "madvise",
	SysPrlimit64:    "prlimit64",
	SysGetrandom:    "getrandom",
}

// SyscallName returns the name for a guest syscall number, or the empty
// string if the number is not part of the known table.
func SyscallName(num uint64) string {
	return syscallNames[num]
}
