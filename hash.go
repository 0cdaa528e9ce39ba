package atomicmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc turns a key into the seed of its probe sequence.
// It must be pure: the same key always yields the same seed.
type HashFunc func(key uint64) uint64

// Mix is the MurmurHash3 64-bit finalizer (fmix64). Every input bit affects
// every output bit, so sequential keys land far apart in the table.
func Mix(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33

	return key
}

// XXHash hashes the little-endian bytes of key with xxh64. It is slower than
// Mix but useful when keys are adversarial for the finalizer.
func XXHash(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)

	return xxhash.Sum64(buf[:])
}
