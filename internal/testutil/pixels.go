package testutil

import "math/rand"

// DeterministicGray generates n pseudo-random 8-bit pixels with a fixed seed.
func DeterministicGray(seed int64, n int) []uint8 {
	out := make([]uint8, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}

// Fill returns n pixels all set to value.
func Fill(value uint8, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns n pixels counting up from start, wrapping at 256.
func Ramp(start uint8, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = start + uint8(i)
	}
	return out
}

// AllPairs returns two 65536-pixel buffers that together enumerate every
// (a, b) operand pair exactly once: a[i] = i/256, b[i] = i%256.
func AllPairs() (a, b []uint8) {
	a = make([]uint8, 256*256)
	b = make([]uint8, 256*256)
	for i := range a {
		a[i] = uint8(i >> 8)
		b[i] = uint8(i)
	}
	return a, b
}
