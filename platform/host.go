package platform

import (
	"log"

	"golang.org/x/sys/unix"
)

// PageSize is the host page granularity. Mappings created through this
// package are always multiples of it.
var PageSize = uint(unix.Getpagesize())

// AllocPages creates an anonymous, private, read/write host mapping of
// the given size. The returned memory is zero-filled by the host.
func AllocPages(size uint64) ([]byte, error) {

	mmap, err := unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		log.Printf("platform: mmap of %x bytes failed: %v", size, err)
		return nil, err
	}

	return mmap, nil
}

// ReleasePages unmaps a mapping returned by AllocPages. It must be
// called exactly once per mapping.
func ReleasePages(mmap []byte) error {
	return unix.Munmap(mmap)
}
