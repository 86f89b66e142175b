//go:build !unix

// Package arena reserves the contiguous backing memory for a block pool from
// the host environment.
package arena

import "fmt"

// Reserve obtains a zeroed contiguous region of n bytes from the Go heap when
// anonymous mappings are not available.
func Reserve(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("arena: non-positive size %d", n)
	}
	data := make([]byte, n)
	return data, func() error { return nil }, nil
}
