package estimation

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Entropy returns a fresh pair of PCG seed words from an external source.
type Entropy func() (uint64, uint64)

// randRead is crypto/rand.Read, replaced in tests.
var randRead = crand.Read

// CryptoEntropy draws seed words from crypto/rand. A failed read panics:
// inside a worker the dispatcher reports it as a worker fault.
func CryptoEntropy() (uint64, uint64) {
	var b [16]byte
	if _, err := randRead(b[:]); err != nil {
		panic(fmt.Sprintf("estimation: reading entropy: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
}

// DrawSeed returns a global seed taken from crypto/rand.
func DrawSeed() uint64 {
	hi, lo := CryptoEntropy()
	return hi ^ lo
}

// NewStream returns the private generator of the unit with the given index.
// Two units of the same run never share a stream, and the same
// (seed, index) pair always yields the same sequence.
func NewStream(seed uint64, index int) *rand.PCG {
	return rand.NewPCG(seed, splitmix64(uint64(index)))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
