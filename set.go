package atomicmap

// Set is a fixed-capacity, lock-free set of uint64 keys, suited to
// deduplication. It shares Map's probing and never shrinks or grows.
// Key 0 is reserved and panics with ErrInvalidKey.
type Set struct {
	table
}

func NewSet(capacity int, opts ...Option) (*Set, error) {
	var s Set
	if err := s.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set.
// Returns whether this call added it; among concurrent adders of the same
// key exactly one sees true.
func (s *Set) Add(key uint64) (bool, error) {
	checkKey(key)

	_, claimed, err := s.claim(key)

	return claimed, err
}

// Checks whether a key is in the set.
func (s *Set) Has(key uint64) bool {
	checkKey(key)

	_, ok := s.find(key)

	return ok
}

func (s *Set) Len() int {
	return s.occupied()
}

func (s *Set) Stats() Stats {
	return s.stats()
}
