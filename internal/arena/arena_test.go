package arena

import "testing"

func TestReserveRejectsNonPositiveSizes(t *testing.T) {
	for _, n := range []int{0, -1, -4096} {
		if _, _, err := Reserve(n); err == nil {
			t.Fatalf("Reserve(%d): expected error, got nil", n)
		}
	}
}

func TestReserveReturnsZeroedRegion(t *testing.T) {
	const n = 4096
	data, release, err := Reserve(n)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if len(data) != n {
		t.Fatalf("len mismatch: got %d want %d", len(data), n)
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: 0x%x", i, b)
		}
	}
	// Region must be writable.
	data[0] = 0xAA
	data[n-1] = 0x55
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	// Releasing twice is a defined no-op.
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}
