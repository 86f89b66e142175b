package format

// Alignment utilities for the block pool arena layout.
// Block capacities are rounded up to the platform alignment granularity so
// every data region starts on an aligned boundary.

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for block capacities chosen at pool creation.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// Align8I32 returns n aligned up to the next 8-byte boundary.
// int32 version for use in pool bookkeeping code to avoid G115 warnings.
func Align8I32(n int32) int32 {
	return (n + AlignmentMask) & ^AlignmentMask
}
