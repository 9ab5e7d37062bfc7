// Command imgaddinfo reports the pixel-add strategies built into imgadd,
// checks them against the scalar reference and measures their throughput.
//
// Usage:
//
//	imgaddinfo [flags] [strategy-name ...]
//
// Without arguments it checks every strategy the CPU can run.
//
// Examples:
//
//	imgaddinfo -list
//	imgaddinfo avx2
//	imgaddinfo -size 1048576 -runs 20 sse2 avx2
//	imgaddinfo -kernel widening
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-imgadd/imgadd"
	"github.com/cwbudde/algo-imgadd/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	size := flag.Int("size", 640*480, "image size in pixels")
	runs := flag.Int("runs", 10, "timed runs per strategy")
	kernel := flag.String("kernel", "both", "kernel to check: saturating, widening or both")
	list := flag.Bool("list", false, "list strategies and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imgaddinfo [flags] [strategy-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Checks imgadd strategies against the scalar reference and reports throughput.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, checks every strategy this CPU can run.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  imgaddinfo -list\n")
		fmt.Fprintf(os.Stderr, "  imgaddinfo avx2\n")
		fmt.Fprintf(os.Stderr, "  imgaddinfo -size 1048576 -runs 20 sse2 avx2\n")
	}
	flag.Parse()

	features := cpu.DetectFeatures()

	if *list {
		printList(registry.Global.ListEntries(), features, imgadd.Strategy())
		return
	}

	kernels, err := parseKernels(*kernel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *size < 0 || *runs < 1 {
		fmt.Fprintf(os.Stderr, "error: -size must be >= 0 and -runs >= 1\n")
		os.Exit(1)
	}

	entries := resolveEntries(registry.Global.ListEntries(), flag.Args(), features)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching strategies\n")
		os.Exit(1)
	}

	ref := registry.Global.Get("generic")
	if ref == nil {
		fmt.Fprintf(os.Stderr, "error: scalar reference not registered\n")
		os.Exit(1)
	}

	results := measureAll(entries, ref, kernels, *size, *runs)
	if !printResults(results, *size) {
		os.Exit(1)
	}
}

// resolveEntries picks the strategies named on the command line, or every
// runnable one when names is empty. Unknown names and strategies the CPU
// cannot run are skipped with a warning.
func resolveEntries(all []registry.OpEntry, names []string, features cpu.Features) []registry.OpEntry {
	byName := make(map[string]registry.OpEntry, len(all))
	for _, e := range all {
		byName[e.Name] = e
	}

	if len(names) == 0 {
		for _, e := range all {
			names = append(names, e.Name)
		}
	}

	var result []registry.OpEntry
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if seen[name] {
			continue
		}
		seen[name] = true

		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown strategy %q (use -list to see available)\n", name)
			continue
		}
		if !cpu.Supports(features, e.SIMDLevel) {
			fmt.Fprintf(os.Stderr, "warning: CPU cannot run %q (needs %s), skipping\n", name, e.SIMDLevel)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printList(entries []registry.OpEntry, features cpu.Features, compiled imgadd.StrategyInfo) {
	best := ""
	for _, e := range entries {
		if cpu.Supports(features, e.SIMDLevel) {
			best = e.Name
			break
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Strategy\tLanes\tSIMD\tBuild tag\tCPU\tNotes\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t----\t---------\t---\t-----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		tag := e.BuildTag
		if tag == "" {
			tag = "(default)"
		}
		runnable := "no"
		if cpu.Supports(features, e.SIMDLevel) {
			runnable = "yes"
		}

		var notes []string
		if e.Name == compiled.Name {
			notes = append(notes, "compiled in")
		}
		if e.Name == best {
			notes = append(notes, "best for this CPU")
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			e.Name, e.LaneWidth, e.SIMDLevel, tag, runnable, strings.Join(notes, ", "),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printResults writes the result table and reports whether every strategy
// matched the reference.
func printResults(results []result, size int) bool {
	allOK := true

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Strategy\tKernel\tPixels\tMatch\tMean [ns/px]\tWorst [ns/px]\tThroughput [MPx/s]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}
	if _, err := fmt.Fprintf(tw, "--------\t------\t------\t-----\t------------\t-------------\t------------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}

	for _, r := range results {
		match := "ok"
		if r.mismatch >= 0 {
			match = fmt.Sprintf("FAIL@%d", r.mismatch)
			allOK = false
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.4f\t%.4f\t%.1f\n",
			r.strategy,
			r.kernel,
			size,
			match,
			r.timing.MeanNsPerPixel,
			r.timing.WorstNsPerPixel,
			r.timing.MegapixelsPerSecond(),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return false
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	return allOK
}
