package usermode

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// Syscall-capable code normally receives its hart explicitly. The
// binding below exists for host plumbing that cannot be threaded a hart
// argument: it associates the calling OS thread with exactly one live
// hart, for the duration of a Bind/release pair.
//
// Discipline: Bind before any syscall-capable code runs on the thread,
// call the returned release when done, and never read another thread's
// binding. Binding a thread that already has a hart is a caller bug.

var currentMu sync.Mutex
var current = make(map[int]*Hart)

// Bind pins the calling goroutine to its OS thread and installs hart as
// that thread's current hart. The returned func removes the binding and
// unpins the thread.
func Bind(hart *Hart) (release func()) {

	runtime.LockOSThread()
	tid := unix.Gettid()

	currentMu.Lock()
	defer currentMu.Unlock()

	if _, ok := current[tid]; ok {
		runtime.UnlockOSThread()
		panic("usermode: thread already has a bound hart")
	}
	current[tid] = hart

	return func() {
		currentMu.Lock()
		delete(current, tid)
		currentMu.Unlock()
		runtime.UnlockOSThread()
	}
}

// Current returns the hart bound to the calling thread, or nil. Only
// meaningful between Bind and its release on the same thread.
func Current() *Hart {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current[unix.Gettid()]
}
