// This file generates the pool sizes swept by a calibration.

package calibration

import "slices"

// ─────────────────────────────────────────────────────────────────────────────
// Adaptive Worker Count Generation
// ─────────────────────────────────────────────────────────────────────────────

// GenerateWorkerCounts returns the pool sizes to test on a machine with
// numCPU usable CPUs: every power of two below numCPU, then numCPU itself.
//
// The rationale:
//   - Single-core: only the one-worker pool makes sense
//   - Powers of two expose where scaling flattens out
//   - numCPU is always tested since it is the default pool size
func GenerateWorkerCounts(numCPU int) []int {
	if numCPU < 1 {
		numCPU = 1
	}
	counts := []int{}
	for w := 1; w < numCPU; w *= 2 {
		counts = append(counts, w)
	}
	return append(counts, numCPU)
}

// GenerateQuickWorkerCounts returns a smaller set: one worker, half the CPUs
// and all of them.
func GenerateQuickWorkerCounts(numCPU int) []int {
	if numCPU <= 1 {
		return []int{1}
	}
	counts := []int{1, numCPU / 2, numCPU}
	slices.Sort(counts)
	return slices.Compact(counts)
}
