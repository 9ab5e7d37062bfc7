package imgadd

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-imgadd/internal/testutil"
)

func saturatingRef(dst, a, b []uint8) {
	for i := range dst {
		sum := int(a[i]) + int(b[i])
		if sum > 255 {
			sum = 255
		}
		dst[i] = uint8(sum)
	}
}

func wideningRef(dst []uint16, a, b []uint8) {
	for i := range dst {
		dst[i] = uint16(a[i]) + uint16(b[i])
	}
}

func TestAddConcreteScenario(t *testing.T) {
	a := []uint8{10, 250, 0, 255}
	b := []uint8{20, 10, 0, 1}

	sat := make([]uint8, 4)
	AddSaturating(sat, a, b, 4, 1)
	testutil.RequireSliceEqual(t, sat, []uint8{30, 255, 0, 255})

	wide := make([]uint16, 4)
	AddWidening(wide, a, b, 4, 1)
	testutil.RequireSliceEqual(t, wide, []uint16{30, 260, 0, 256})
}

func TestAddAllPairs(t *testing.T) {
	a, b := testutil.AllPairs()

	sat := make([]uint8, len(a))
	wantSat := make([]uint8, len(a))
	AddSaturating(sat, a, b, 256, 256)
	saturatingRef(wantSat, a, b)
	testutil.RequireSliceEqual(t, sat, wantSat)

	wide := make([]uint16, len(a))
	wantWide := make([]uint16, len(a))
	AddWidening(wide, a, b, 256, 256)
	wideningRef(wantWide, a, b)
	testutil.RequireSliceEqual(t, wide, wantWide)
}

func TestAddSizes(t *testing.T) {
	dims := []struct{ w, h int }{
		{1, 1}, {3, 5}, {15, 1}, {16, 1}, {17, 1}, {4, 8}, {31, 1}, {32, 1},
		{33, 1}, {8, 8}, {10, 10}, {7, 13}, {64, 3}, {640, 480},
	}

	for _, d := range dims {
		n := d.w * d.h
		t.Run(itoa(d.w)+"x"+itoa(d.h), func(t *testing.T) {
			a := testutil.DeterministicGray(int64(n), n)
			b := testutil.DeterministicGray(int64(n)+1, n)

			sat := make([]uint8, n)
			wantSat := make([]uint8, n)
			AddSaturating(sat, a, b, d.w, d.h)
			saturatingRef(wantSat, a, b)
			testutil.RequireSliceEqual(t, sat, wantSat)

			wide := make([]uint16, n)
			wantWide := make([]uint16, n)
			AddWidening(wide, a, b, d.w, d.h)
			wideningRef(wantWide, a, b)
			testutil.RequireSliceEqual(t, wide, wantWide)
		})
	}
}

func TestAddAllMax(t *testing.T) {
	const w, h = 37, 3

	a := testutil.Fill(255, w*h)
	b := testutil.Fill(255, w*h)

	sat := make([]uint8, w*h)
	AddSaturating(sat, a, b, w, h)
	for i, v := range sat {
		if v != 255 {
			t.Fatalf("AddSaturating[%d] = %d, want 255", i, v)
		}
	}

	wide := make([]uint16, w*h)
	AddWidening(wide, a, b, w, h)
	for i, v := range wide {
		if v != 510 {
			t.Fatalf("AddWidening[%d] = %d, want 510", i, v)
		}
	}
}

func TestAddAllZero(t *testing.T) {
	const w, h = 33, 2

	a := make([]uint8, w*h)
	b := make([]uint8, w*h)

	sat := testutil.Fill(9, w*h)
	AddSaturating(sat, a, b, w, h)
	for i, v := range sat {
		if v != 0 {
			t.Fatalf("AddSaturating[%d] = %d, want 0", i, v)
		}
	}

	wide := make([]uint16, w*h)
	for i := range wide {
		wide[i] = 9
	}
	AddWidening(wide, a, b, w, h)
	for i, v := range wide {
		if v != 0 {
			t.Fatalf("AddWidening[%d] = %d, want 0", i, v)
		}
	}
}

func TestAddEmptyImage(t *testing.T) {
	dims := []struct{ w, h int }{{0, 0}, {0, 10}, {10, 0}}

	for _, d := range dims {
		// nil buffers are fine when there are no pixels.
		AddSaturating(nil, nil, nil, d.w, d.h)
		AddWidening(nil, nil, nil, d.w, d.h)

		dst := []uint8{7}
		AddSaturating(dst, []uint8{1}, []uint8{1}, d.w, d.h)
		if dst[0] != 7 {
			t.Fatalf("%dx%d: AddSaturating touched dst", d.w, d.h)
		}

		wide := []uint16{7}
		AddWidening(wide, []uint8{1}, []uint8{1}, d.w, d.h)
		if wide[0] != 7 {
			t.Fatalf("%dx%d: AddWidening touched dst", d.w, d.h)
		}
	}

	AddSaturatingBlock(nil, nil, nil)
	AddWideningBlock(nil, nil, nil)
}

// TestAddOnlyWritesImage uses oversized buffers and checks that nothing past
// width*height is written and that the inputs are left alone.
func TestAddOnlyWritesImage(t *testing.T) {
	const guard = 0xA5

	for _, n := range []int{1, 15, 16, 17, 31, 32, 33, 64} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.DeterministicGray(int64(n)*7, n+32)
			b := testutil.DeterministicGray(int64(n)*11, n+32)
			aCopy := append([]uint8(nil), a...)
			bCopy := append([]uint8(nil), b...)

			sat := testutil.Fill(guard, n+32)
			AddSaturating(sat, a, b, n, 1)
			for i := n; i < len(sat); i++ {
				if sat[i] != guard {
					t.Fatalf("AddSaturating wrote past image at %d", i)
				}
			}

			wide := make([]uint16, n+32)
			for i := range wide {
				wide[i] = guard
			}
			AddWidening(wide, a, b, 1, n)
			for i := n; i < len(wide); i++ {
				if wide[i] != guard {
					t.Fatalf("AddWidening wrote past image at %d", i)
				}
			}

			testutil.RequireSliceEqual(t, a, aCopy)
			testutil.RequireSliceEqual(t, b, bCopy)
		})
	}
}

func TestAddBlock(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.DeterministicGray(int64(n)+100, n)
			b := testutil.DeterministicGray(int64(n)+200, n)

			sat := make([]uint8, n)
			wantSat := make([]uint8, n)
			AddSaturatingBlock(sat, a, b)
			saturatingRef(wantSat, a, b)
			testutil.RequireSliceEqual(t, sat, wantSat)

			wide := make([]uint16, n)
			wantWide := make([]uint16, n)
			AddWideningBlock(wide, a, b)
			wideningRef(wantWide, a, b)
			testutil.RequireSliceEqual(t, wide, wantWide)
		})
	}
}

func TestAddPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"negative width", func() { AddSaturating(nil, nil, nil, -1, 4) }},
		{"negative height", func() { AddWidening(nil, nil, nil, 4, -1) }},
		{"overflow", func() { AddSaturating(nil, nil, nil, math.MaxInt, 2) }},
		{"short a", func() { AddSaturating(make([]uint8, 8), make([]uint8, 7), make([]uint8, 8), 4, 2) }},
		{"short b", func() { AddWidening(make([]uint16, 8), make([]uint8, 8), make([]uint8, 7), 2, 4) }},
		{"short dst", func() { AddWidening(make([]uint16, 7), make([]uint8, 8), make([]uint8, 8), 8, 1) }},
		{"nil a", func() { AddSaturating(make([]uint8, 1), nil, make([]uint8, 1), 1, 1) }},
		{"block mismatch", func() { AddSaturatingBlock(make([]uint8, 5), make([]uint8, 5), make([]uint8, 6)) }},
		{"widening block mismatch", func() { AddWideningBlock(make([]uint16, 4), make([]uint8, 5), make([]uint8, 5)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func sizeStr(n int) string {
	return "n=" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}
