package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cwbudde/algo-imgadd/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath"
)

type kernelKind string

const (
	kernelSaturating kernelKind = "saturating"
	kernelWidening   kernelKind = "widening"
)

func parseKernels(s string) ([]kernelKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "saturating":
		return []kernelKind{kernelSaturating}, nil
	case "widening":
		return []kernelKind{kernelWidening}, nil
	case "both", "":
		return []kernelKind{kernelSaturating, kernelWidening}, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q (want saturating, widening or both)", s)
	}
}

// timing summarizes per-run cost in nanoseconds per pixel.
type timing struct {
	MeanNsPerPixel  float64
	WorstNsPerPixel float64
}

// MegapixelsPerSecond converts the mean cost to throughput.
func (t timing) MegapixelsPerSecond() float64 {
	if t.MeanNsPerPixel <= 0 {
		return 0
	}
	return 1e3 / t.MeanNsPerPixel
}

// summarize reduces per-run samples (ns/pixel, all non-negative).
func summarize(samples []float64) timing {
	if len(samples) == 0 {
		return timing{}
	}
	return timing{
		MeanNsPerPixel:  vecmath.Sum(samples) / float64(len(samples)),
		WorstNsPerPixel: vecmath.MaxAbs(samples),
	}
}

type result struct {
	strategy string
	kernel   kernelKind
	mismatch int // first differing index, -1 if identical to the reference
	timing   timing
}

// testImages returns two deterministic images of n pixels.
func testImages(n int) (a, b []uint8) {
	rng := rand.New(rand.NewSource(1))
	a = make([]uint8, n)
	b = make([]uint8, n)
	for i := range a {
		a[i] = uint8(rng.Intn(256))
		b[i] = uint8(rng.Intn(256))
	}
	return a, b
}

func measureAll(entries []registry.OpEntry, ref *registry.OpEntry, kernels []kernelKind, size, runs int) []result {
	a, b := testImages(size)

	var results []result
	for _, e := range entries {
		for _, k := range kernels {
			results = append(results, measure(e, ref, k, a, b, runs))
		}
	}
	return results
}

func measure(e registry.OpEntry, ref *registry.OpEntry, k kernelKind, a, b []uint8, runs int) result {
	r := result{strategy: e.Name, kernel: k, mismatch: -1}
	n := len(a)

	var run func()
	switch k {
	case kernelSaturating:
		want := make([]uint8, n)
		got := make([]uint8, n)
		ref.AddSaturating(want, a, b)
		e.AddSaturating(got, a, b)
		r.mismatch = firstMismatch(got, want)
		run = func() { e.AddSaturating(got, a, b) }
	case kernelWidening:
		want := make([]uint16, n)
		got := make([]uint16, n)
		ref.AddWidening(want, a, b)
		e.AddWidening(got, a, b)
		r.mismatch = firstMismatch(got, want)
		run = func() { e.AddWidening(got, a, b) }
	}

	if n == 0 {
		return r
	}

	samples := make([]float64, runs)
	for i := range samples {
		start := time.Now()
		run()
		samples[i] = float64(time.Since(start).Nanoseconds()) / float64(n)
	}
	r.timing = summarize(samples)

	return r
}

func firstMismatch[T uint8 | uint16](got, want []T) int {
	for i := range got {
		if got[i] != want[i] {
			return i
		}
	}
	return -1
}
