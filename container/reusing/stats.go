package reusing

// Stats counts the allocation-relevant events of a container. The
// counters are plain integers updated inline, so keeping them always
// on costs nothing measurable in the hot path.
type Stats struct {
	// Allocs is the number of elements physically constructed.
	Allocs uint64
	// Reuses is the number of retained slots handed back without
	// construction.
	Reuses uint64
	// Compactions is the number of move-down passes a queue has run.
	Compactions uint64
	// Released is the number of constructed elements released back to
	// the garbage collector by ReleaseCapacity, Shrink or Detach.
	Released uint64
}
