// Package main parses `go test -bench` output into a JSON summary and
// optionally compares it against a saved baseline, flagging regressions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"time"
)

// BenchmarkResult represents a single benchmark result
type BenchmarkResult struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Operations  int     `json:"operations"`
	NsPerOp     float64 `json:"ns_per_op"`
	BytesPerOp  int     `json:"bytes_per_op,omitempty"`
	AllocsPerOp int     `json:"allocs_per_op,omitempty"`
}

// BenchmarkSummary represents the complete benchmark output
type BenchmarkSummary struct {
	Timestamp string            `json:"timestamp"`
	GoVersion string            `json:"go_version"`
	Results   []BenchmarkResult `json:"results"`
}

// Comparison represents a comparison between two benchmark results
type Comparison struct {
	Name           string  `json:"name"`
	BaseNsPerOp    float64 `json:"base_ns_per_op"`
	CurrentNsPerOp float64 `json:"current_ns_per_op"`
	PercentChange  float64 `json:"percent_change"`
	IsRegression   bool    `json:"is_regression"`
}

// regressionThreshold is the ns/op slowdown, in percent, above which a
// benchmark counts as a regression.
const regressionThreshold = 10.0

var benchLineRegex = regexp.MustCompile(
	`Benchmark(\w+)(?:-\d+)?\s+(\d+)\s+(\d+\.?\d*)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

func main() {
	baselinePath := flag.String("baseline", "", "baseline summary JSON to compare against")
	outPath := flag.String("out", "benchmark_summary.json", "where to write the JSON summary")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [-baseline baseline.json] [-out summary.json] <bench-output.txt>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error reading benchmark output: %v\n", err)
		os.Exit(1)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
	}

	for _, matches := range benchLineRegex.FindAllStringSubmatch(string(data), -1) {
		name := matches[1]
		ops, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		result := BenchmarkResult{
			Name:       name,
			Category:   categoryFor(ops),
			Operations: ops,
			NsPerOp:    nsPerOp,
		}
		if matches[4] != "" {
			result.BytesPerOp, _ = strconv.Atoi(matches[4])
		}
		if matches[5] != "" {
			result.AllocsPerOp, _ = strconv.Atoi(matches[5])
		}
		summary.Results = append(summary.Results, result)
	}

	if len(summary.Results) == 0 {
		fmt.Println("No benchmark results found in input")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding summary: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		fmt.Printf("Error writing summary: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d results to %s\n", len(summary.Results), *outPath)

	if *baselinePath == "" {
		return
	}

	comparisons, err := compare(*baselinePath, summary)
	if err != nil {
		fmt.Printf("Error comparing against baseline: %v\n", err)
		os.Exit(1)
	}

	regressions := 0
	for _, c := range comparisons {
		marker := " "
		if c.IsRegression {
			marker = "!"
			regressions++
		}
		fmt.Printf("%s %-30s %10.1f -> %10.1f ns/op (%+.1f%%)\n",
			marker, c.Name, c.BaseNsPerOp, c.CurrentNsPerOp, c.PercentChange)
	}

	if regressions > 0 {
		fmt.Printf("%d benchmark(s) regressed more than %.0f%%\n", regressions, regressionThreshold)
		os.Exit(1)
	}
	fmt.Println("No regressions against baseline")
}

// categoryFor separates the narrative scale benchmarks, which force a
// single iteration, from the standard per-op ones.
func categoryFor(ops int) string {
	if ops == 1 {
		return "scale"
	}
	return "standard"
}

func compare(baselinePath string, current BenchmarkSummary) ([]Comparison, error) {
	data, err := os.ReadFile(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	var baseline BenchmarkSummary
	if err := json.Unmarshal(data, &baseline); err != nil {
		return nil, fmt.Errorf("failed to parse baseline: %w", err)
	}

	base := make(map[string]BenchmarkResult, len(baseline.Results))
	for _, r := range baseline.Results {
		base[r.Name] = r
	}

	var comparisons []Comparison
	for _, r := range current.Results {
		b, ok := base[r.Name]
		if !ok || b.NsPerOp == 0 {
			continue
		}
		change := (r.NsPerOp - b.NsPerOp) / b.NsPerOp * 100
		comparisons = append(comparisons, Comparison{
			Name:           r.Name,
			BaseNsPerOp:    b.NsPerOp,
			CurrentNsPerOp: r.NsPerOp,
			PercentChange:  change,
			IsRegression:   change > regressionThreshold,
		})
	}
	return comparisons, nil
}
