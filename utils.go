package atomicmap

import (
	"math/bits"
	"unsafe"
)

const minCapacity = 2

// IsPowerOf2 reports whether v is 2^n for some n >= 0.
func IsPowerOf2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// Returns the smallest valid capacity that is >= v.
func NextPowerOf2(v uint64) uint64 {
	if v <= minCapacity {
		return minCapacity
	}

	return uint64(1) << min(bits.Len64(v-1), 63)
}

// Estimates the largest Map capacity whose slots fit in the given memory
// size in bytes. Returns 0 if not even the minimal table fits.
func CapacityFromSize(size uintptr) int {
	sizeOfSlot := 2 * unsafe.Sizeof(uint64(0))
	slots := uint64(size / sizeOfSlot)
	if slots < minCapacity {
		return 0
	}

	return int(uint64(1) << (bits.Len64(slots) - 1))
}
