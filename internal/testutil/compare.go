package testutil

import (
	"fmt"
	"testing"
)

// Pixel is a sample type produced by the add kernels.
type Pixel interface {
	~uint8 | ~uint16
}

// FirstMismatch reports the first index at which got and want differ.
// ok is true when the slices have equal length and identical contents.
// On a length mismatch the returned index is the shorter length.
func FirstMismatch[T Pixel](got, want []T) (index int, ok bool) {
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			return i, false
		}
	}
	if len(got) != len(want) {
		return n, false
	}
	return 0, true
}

// RequireSliceEqual fails t unless got and want are identical.
func RequireSliceEqual[T Pixel](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if i, ok := FirstMismatch(got, want); !ok {
		t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Pixel](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
