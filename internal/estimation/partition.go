package estimation

import (
	apperrors "github.com/agbru/picalc/internal/errors"
)

// Plan is the partition of a run into pool chunks plus a remainder.
type Plan struct {
	// Total is the number of units partitioned.
	Total uint64
	// Chunks holds one equally sized unit per pool worker.
	Chunks []WorkUnit
	// Remainder holds the Total mod W leftover units. It may be empty.
	Remainder WorkUnit
}

// ChunkSize returns the size of every pool chunk.
func (p Plan) ChunkSize() uint64 {
	if len(p.Chunks) == 0 {
		return 0
	}
	return p.Chunks[0].Count
}

// LargestChunk returns chunk size plus remainder: the worst case for a
// single execution context.
func (p Plan) LargestChunk() uint64 {
	return p.ChunkSize() + p.Remainder.Count
}

// Units returns the pool chunks followed by the remainder, in ascending order.
func (p Plan) Units() []WorkUnit {
	units := make([]WorkUnit, 0, len(p.Chunks)+1)
	units = append(units, p.Chunks...)
	return append(units, p.Remainder)
}

// Partition divides n units across workers into equal chunks of n/workers
// units and one remainder of n%workers units. Ranges are contiguous,
// ascending from 0 and together cover exactly [0, n).
func Partition(n uint64, workers int, params Params) (Plan, error) {
	if workers < 1 {
		return Plan{}, apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	w := uint64(workers)
	size := n / w

	chunks := make([]WorkUnit, workers)
	for k := range chunks {
		chunks[k] = WorkUnit{Index: k, Start: uint64(k) * size, Count: size, Params: params}
	}

	return Plan{
		Total:  n,
		Chunks: chunks,
		Remainder: WorkUnit{
			Index:  workers,
			Start:  w * size,
			Count:  n % w,
			Params: params,
		},
	}, nil
}
