package chainmap_test

import (
	"fmt"
	"runtime"

	"golang.org/x/exp/rand"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics"`
}

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

const benchSeed = 0x5eed

// generateUUIDKeys returns n UUID-shaped string keys from a seeded source,
// so repeated runs hash the same population.
func generateUUIDKeys(n int) []string {
	rng := rand.New(rand.NewSource(benchSeed))
	keys := make([]string, n)
	buf := make([]byte, 16)
	for i := range keys {
		rng.Read(buf)
		// Version 4, RFC 4122 variant.
		buf[6] = (buf[6] & 0x0F) | 0x40
		buf[8] = (buf[8] & 0x3F) | 0x80
		keys[i] = fmt.Sprintf("%x-%x-%x-%x-%x",
			buf[0:4], buf[4:6], buf[6:8], buf[8:10], buf[10:16])
	}
	return keys
}

// shuffledIndices returns the order used for random-access lookup passes.
func shuffledIndices(n int) []int {
	rng := rand.New(rand.NewSource(benchSeed + 1))
	return rng.Perm(n)
}
