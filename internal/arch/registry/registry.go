// Package registry lists the pixel-add kernel variants built into this module.
//
// Every arch package (generic, sse2, avx2) registers one entry from its init
// function. The public imgadd kernels never consult the registry: they are
// bound to exactly one variant at build time. The registry exists so tests
// can cross-check all variants against each other and so tools can report
// which variant a CPU could run.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// AddSaturatingFn computes dst[i] = min(a[i]+b[i], 255).
type AddSaturatingFn func(dst, a, b []uint8)

// AddWideningFn computes dst[i] = uint16(a[i]) + uint16(b[i]).
type AddWideningFn func(dst []uint16, a, b []uint8)

// OpEntry is one registered kernel variant.
type OpEntry struct {
	// Name identifies the variant ("generic", "sse2", "avx2").
	Name string

	// BuildTag is the build tag that compiles this variant into imgadd.
	// Empty for the default scalar variant.
	BuildTag string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// LaneWidth is the number of 8-bit pixels processed per vector step.
	LaneWidth int

	// Priority orders variants in Lookup. Higher wins.
	//   - generic: 0
	//   - sse2:    10
	//   - avx2:    20
	Priority int

	AddSaturating AddSaturatingFn
	AddWidening   AddWideningFn
}

// OpRegistry stores the registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry the arch packages register with.
var Global = &OpRegistry{}

// Register adds a variant. It is called from init functions.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant the given features can run,
// or nil if none can.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Get returns the variant registered under name, or nil.
func (r *OpRegistry) Get(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// ListEntries returns a copy of all entries, sorted by priority (descending).
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Insertion sort; there are at most three entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
