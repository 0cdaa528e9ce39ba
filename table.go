package atomicmap

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// table is the slot-claiming core shared by Map and Set.
//
// Each slot's key starts at 0 (empty) and moves exactly once to a non-zero
// key through a CAS. It never goes back, so a key observed in a slot stays
// there for the table's lifetime. The header fields are written once in init
// and only read afterwards.
type table struct {
	_ cpu.CacheLinePad

	keys     []atomic.Uint64
	mask     uint64
	hashFunc HashFunc

	_ cpu.CacheLinePad
}

func (t *table) init(capacity int, opts ...Option) error {
	if capacity < minCapacity || !IsPowerOf2(uint64(capacity)) {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	t.keys = make([]atomic.Uint64, capacity)
	t.mask = uint64(capacity - 1)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = Mix
	}

	return nil
}

// Capacity returns the number of slots in the table.
func (t *table) Capacity() int {
	return len(t.keys)
}

//go:inline
func checkKey(key uint64) {
	if key == 0 {
		panic(ErrInvalidKey)
	}
}

// claim returns the index of the slot owned by key, taking an empty slot if
// key has none yet. claimed is true only for the caller whose CAS won the
// slot. The probe visits every index exactly once, so ErrTableFull means
// every slot holds some other key.
func (t *table) claim(key uint64) (idx uint64, claimed bool, err error) {
	start := t.hashFunc(key)

	for p := uint64(0); p <= t.mask; p++ {
		idx = (start + p) & t.mask
		slot := &t.keys[idx]

		cur := slot.Load()
		if cur == key {
			return idx, false, nil
		}
		if cur != 0 {
			continue
		}

		if slot.CompareAndSwap(0, key) {
			return idx, true, nil
		}

		// Lost the race. The slot is non-zero now and stays so, hence this
		// load observes exactly the key that won.
		if slot.Load() == key {
			return idx, false, nil
		}
	}

	return 0, false, ErrTableFull
}

// find returns the index of the slot owned by key.
func (t *table) find(key uint64) (uint64, bool) {
	start := t.hashFunc(key)

	for p := uint64(0); p <= t.mask; p++ {
		idx := (start + p) & t.mask

		switch t.keys[idx].Load() {
		case key:
			return idx, true
		case 0:
			// Termination. Whoever claimed key walked this same sequence
			// and saw this slot taken; slots never become empty again.
			return 0, false
		}
	}

	return 0, false
}

// occupied counts claimed slots. Claims racing with the scan may or may not
// be counted.
func (t *table) occupied() int {
	var n int
	for i := range t.keys {
		if t.keys[i].Load() != 0 {
			n++
		}
	}

	return n
}

func (t *table) stats() Stats {
	size := t.occupied()

	return Stats{
		Size:       size,
		Capacity:   len(t.keys),
		LoadFactor: float32(size) / float32(len(t.keys)),
	}
}
