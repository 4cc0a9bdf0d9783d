// Package randutil derives non-deterministic seeds for the fast PRNGs used
// throughout the solver. It exists only to isolate the one place the
// engine touches a true entropy source; every other package gets its
// randomness from an explicit, caller-supplied seed.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// HardwareSeed returns a 64-bit seed drawn from the OS entropy source,
// diffused through a splitmix64-style mix step. If the OS source is
// unavailable it falls back to the current time, which is adequate for a
// non-reproducible seed but never used when the caller wants determinism.
func HardwareSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return mix(uint64(time.Now().UnixNano()) + goldenRatio64)
	}
	return mix(binary.LittleEndian.Uint64(buf[:]))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
