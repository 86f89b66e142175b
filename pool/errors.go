package pool

import "errors"

var (
	// ErrInvalidParam indicates a nil pool, a zero or oversized request, or a
	// ref that does not map to any block in the arena. Never mutates.
	ErrInvalidParam = errors.New("pool: invalid parameter")

	// ErrCorrupted indicates an internal-consistency violation: a double
	// free, a count mismatch found by Validate, a smashed block header, or a
	// destroy attempted with allocations outstanding. Never mutates.
	ErrCorrupted = errors.New("pool: corrupted")

	// ErrNoSpace indicates that no free block satisfies the request. Not a
	// hard failure; callers may free a block and retry.
	ErrNoSpace = errors.New("pool: no free block large enough")

	// ErrArena indicates that the backing arena could not be reserved from
	// the host environment at pool creation.
	ErrArena = errors.New("pool: arena reservation failed")
)
