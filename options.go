package atomicmap

// Option configures a table at construction time.
type Option func(t *table)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *table) {
		t.hashFunc = f
	}
}
