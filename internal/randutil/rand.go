// Package randutil derives reproducible random sources from integer seeds.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand derived from seed. The same seed always
// yields the same shuffles and computer decisions.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Seed returns seed unchanged when it is non-zero, otherwise a fresh
// non-zero seed so that an unseeded game can still be replayed from its log.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var buf [8]byte
	for seed == 0 {
		if _, err := crand.Read(buf[:]); err != nil {
			return rand.Int64N(1<<62) + 1
		}
		seed = int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	}
	return seed
}

// Derive returns the seed for the n-th independent stream below base, used by
// the simulator to give every game its own source.
func Derive(base int64, n int) int64 {
	return int64(splitmix(uint64(base)+uint64(n)*goldenRatio64) >> 1)
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
