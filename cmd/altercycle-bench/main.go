// altercycle-bench measures altercycle operations against plain slices and
// the standard library's container/ring across a range of ring sizes.
package main

import (
	"container/ring"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/mobiusdev/altercycle"
)

// BenchResult is one timed run.
type BenchResult struct {
	Name     string        `json:"name"`
	Size     int           `json:"size"`
	Duration time.Duration `json:"duration_ns"`
	Ops      int           `json:"ops,omitempty"`
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		return fmt.Sprintf("%-32s n=%-8d %12v  (%d ops, %.2f ops/sec)",
			r.Name, r.Size, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	return fmt.Sprintf("%-32s n=%-8d %12v", r.Name, r.Size, r.Duration.Round(time.Microsecond))
}

var (
	flagSizes         []int
	flagWorkers       int
	flagPatternLength int
	flagJSON          string
)

func main() {
	root := &cobra.Command{
		Use:   "altercycle-bench",
		Short: "Benchmark altercycle against slice and container/ring baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.Flags().IntSliceVar(&flagSizes, "sizes", []int{100, 1000, 10000}, "ring sizes to benchmark")
	root.Flags().IntVar(&flagWorkers, "workers", 4, "worker count for parallel traversal")
	root.Flags().IntVar(&flagPatternLength, "pattern-length", 4, "window length for pattern search")
	root.Flags().StringVar(&flagJSON, "json", "", "write results as JSON to this file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("AlterCycle Benchmark")
	fmt.Println("====================")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	var results []BenchResult
	for _, size := range flagSizes {
		data := generateData(size)
		results = append(results,
			benchAppend(data),
			benchSliceAppend(data),
			benchRingAppend(data),
			benchTraversal(data),
			benchPatterns(data),
			benchParallel(data),
		)
	}

	fmt.Println()
	for _, r := range results {
		fmt.Println(r)
	}

	if flagJSON != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		if err := os.WriteFile(flagJSON, data, 0o644); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		fmt.Printf("\nResults written to %s\n", flagJSON)
	}
	return nil
}

// generateData builds a repeating A,B,C,D payload, the same workload the
// pattern search benchmarks expect to find recurrences in.
func generateData(size int) []string {
	pattern := []string{"A", "B", "C", "D"}
	data := make([]string, size)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}
	return data
}

func buildCycle(data []string) *altercycle.Cycle[string] {
	c := altercycle.New[string]()
	for _, v := range data {
		c.Append(v)
	}
	return c
}

func benchAppend(data []string) BenchResult {
	start := time.Now()
	buildCycle(data)
	return BenchResult{Name: "altercycle append", Size: len(data), Duration: time.Since(start), Ops: len(data)}
}

func benchSliceAppend(data []string) BenchResult {
	start := time.Now()
	var s []string
	for _, v := range data {
		s = append(s, v)
	}
	_ = s
	return BenchResult{Name: "slice append", Size: len(data), Duration: time.Since(start), Ops: len(data)}
}

func benchRingAppend(data []string) BenchResult {
	start := time.Now()
	r := ring.New(len(data))
	for _, v := range data {
		r.Value = v
		r = r.Next()
	}
	return BenchResult{Name: "container/ring fill", Size: len(data), Duration: time.Since(start), Ops: len(data)}
}

func benchTraversal(data []string) BenchResult {
	c := buildCycle(data)
	start := time.Now()
	count := 0
	for range c.All() {
		count++
	}
	return BenchResult{Name: "altercycle traversal", Size: len(data), Duration: time.Since(start), Ops: count}
}

func benchPatterns(data []string) BenchResult {
	c := buildCycle(data)
	start := time.Now()
	patterns := c.FindPatterns(flagPatternLength)
	return BenchResult{Name: "altercycle pattern search", Size: len(data), Duration: time.Since(start), Ops: len(patterns)}
}

func benchParallel(data []string) BenchResult {
	c := buildCycle(data)
	start := time.Now()
	c.ProcessParallel(func(string, int) {}, flagWorkers)
	return BenchResult{Name: "altercycle parallel traverse", Size: len(data), Duration: time.Since(start), Ops: len(data)}
}
