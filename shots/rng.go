// Package shots - deterministic per-shot randomness.
//
// Every shot gets its own math/rand stream derived from (base seed, shot
// index), so shot k is reproducible in isolation and shots never advance a
// shared source.
//
// Goals:
//   - Determinism: same base seed ⇒ identical histogram across platforms.
//   - Independence: neighboring shot indices must land in unrelated parts
//     of the seed space, so per-shot outcomes do not correlate.
//   - No time-based sources hidden anywhere.
package shots

import "math/rand"

// deriveSeed mixes the base seed and a shot index into a decorrelated
// 64-bit seed via a SplitMix64-style finalizer. The constants are the
// canonical SplitMix64 multipliers (Vigna 2014); small input changes
// produce large, well-distributed output changes.
func deriveSeed(base int64, shot uint64) int64 {
	var x uint64
	x = uint64(base) ^ (shot + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shotRand builds the deterministic stream for one shot.
func shotRand(base int64, shot uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base, shot)))
}
