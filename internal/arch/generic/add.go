package generic

// AddSaturating performs element-wise saturating addition:
// dst[i] = min(a[i] + b[i], 255).
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func AddSaturating(dst, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	for i := range dst {
		sum := uint(a[i]) + uint(b[i])
		if sum > 255 {
			sum = 255
		}
		dst[i] = uint8(sum)
	}
}

// AddWidening performs element-wise widening addition:
// dst[i] = uint16(a[i]) + uint16(b[i]).
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func AddWidening(dst []uint16, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("imgadd: slice length mismatch")
	}
	for i := range dst {
		dst[i] = uint16(a[i]) + uint16(b[i])
	}
}
