package atomicmap

// Stats is a best-effort view of a table. Concurrent claims may or may not
// be reflected.
type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float32
}
