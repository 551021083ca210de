package estimation

import (
	"math"
	"math/big"
	"math/rand/v2"
	"time"
)

// CountInside draws n points (x, y) uniformly from [0, 1)² and returns how
// many satisfy x² + y² < 1.
//
// When reseed is non-zero, src is reseeded from entropy before every trial
// whose local index is a multiple of reseed, the first trial included. The
// reseeding only ever touches src, which belongs to the calling worker.
func CountInside(src *rand.PCG, n, reseed uint64, entropy Entropy) uint64 {
	if entropy == nil {
		entropy = CryptoEntropy
	}
	rng := rand.New(src)

	var hits uint64
	for i := uint64(0); i < n; i++ {
		if reseed > 0 && i%reseed == 0 {
			src.Seed(entropy())
		}
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y < 1 {
			hits++
		}
	}
	return hits
}

// MonteCarlo estimates pi from the fraction of random points of the unit
// square that fall inside the quarter circle.
type MonteCarlo struct {
	// Entropy feeds re-seeding. Nil means crypto/rand.
	Entropy Entropy
}

// Name returns the registry key of the method.
func (MonteCarlo) Name() string { return "montecarlo" }

// Description returns a human-readable label.
func (MonteCarlo) Description() string { return "Monte Carlo (quarter circle sampling)" }

// Units returns n unchanged: any trial count is valid.
func (MonteCarlo) Units(n uint64) uint64 { return n }

// Sample counts the hits of one unit on the unit's private stream.
func (m MonteCarlo) Sample(unit WorkUnit) PartialResult {
	start := time.Now()
	hits := CountInside(NewStream(unit.Params.Seed, unit.Index), unit.Count, unit.Params.Reseed, m.Entropy)
	return PartialResult{
		Index:   unit.Index,
		Start:   unit.Start,
		Count:   unit.Count,
		Hits:    hits,
		Elapsed: time.Since(start),
	}
}

// Combine returns 4 × hits / total.
func (MonteCarlo) Combine(hits uint64, _ float64, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 4 * (float64(hits) / float64(total))
}

// Exact returns 4 × hits / total as an exact rational.
func (MonteCarlo) Exact(hits, total uint64) *big.Rat {
	if total == 0 {
		return new(big.Rat)
	}
	r := new(big.Rat).SetFrac(new(big.Int).SetUint64(hits), new(big.Int).SetUint64(total))
	return r.Mul(r, big.NewRat(4, 1))
}

// StandardError returns the binomial one-sigma error of the estimate.
func (MonteCarlo) StandardError(hits, total uint64) float64 {
	if total == 0 {
		return 0
	}
	p := float64(hits) / float64(total)
	return 4 * math.Sqrt(p*(1-p)/float64(total))
}

// LocalEstimate returns the estimate implied by a single partial result.
func (m MonteCarlo) LocalEstimate(p PartialResult) float64 {
	return m.Combine(p.Hits, 0, p.Count)
}
