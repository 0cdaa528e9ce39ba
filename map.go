package atomicmap

import "sync/atomic"

// Map is a fixed-capacity, lock-free map from uint64 keys to uint64 values.
// It never grows and never forgets a key: once a key claims a slot it owns
// it until the Map is garbage collected. All methods are safe for concurrent
// use and finish in at most Capacity() probe steps.
//
// Keys and values are published by two separate atomic stores. A Get racing
// with the first Insert of a key may see the key before its value and return
// the value slot's previous content (0 for a fresh slot).
//
// Key 0 is reserved; passing it to Insert or Get panics with ErrInvalidKey.
type Map struct {
	table

	values []atomic.Uint64
}

// New returns a Map with exactly capacity slots. capacity must be a power
// of two, at least 2, otherwise ErrInvalidCapacity is returned.
func New(capacity int, opts ...Option) (*Map, error) {
	var m Map
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	m.values = make([]atomic.Uint64, capacity)

	return &m, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew(capacity int, opts ...Option) *Map {
	m, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// WithCapacity is an alias of MustNew.
func WithCapacity(capacity int, opts ...Option) *Map {
	return MustNew(capacity, opts...)
}

// Insert stores value under key, overwriting any previous value.
// Returns ErrTableFull if key is new and no slot is left for it.
// Concurrent inserts of the same key keep whichever store lands last.
func (m *Map) Insert(key, value uint64) error {
	checkKey(key)

	idx, _, err := m.claim(key)
	if err != nil {
		return err
	}

	m.values[idx].Store(value)

	return nil
}

// Get returns the value stored under key.
func (m *Map) Get(key uint64) (uint64, bool) {
	checkKey(key)

	idx, ok := m.find(key)
	if !ok {
		return 0, false
	}

	return m.values[idx].Load(), true
}

// Len returns the number of keys in the map. It is a scan, not a snapshot:
// concurrent inserts may or may not be counted.
func (m *Map) Len() int {
	return m.occupied()
}

func (m *Map) Stats() Stats {
	return m.stats()
}
