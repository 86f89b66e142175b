//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve obtains a zeroed contiguous region of n bytes from the host via an
// anonymous private mapping. The returned release function returns the pages
// to the host; the slice must not be used after release.
func Reserve(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("arena: non-positive size %d", n)
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("arena: mmap %d bytes: %w", n, err)
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
