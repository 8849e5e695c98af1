package recycler

// Recycler is an interface that defines methods for recycling and managing memory usage of data structures.
type Recycler interface {
	// Shrink reports whether the container should release retained
	// capacity beyond its logical length.
	// It returns true if the container may be shrunk.
	Shrink(len_ int, cap_ int) bool
}

// Compactor decides when a queue relocates its live window back to the
// start of backing storage, turning the consumed prefix into retained
// capacity again.
type Compactor interface {
	// Compact reports whether a compaction pass should run now.
	// consumed is the number of already-popped slots in front of the
	// live window, live is the window length and cap_ is the number of
	// physically constructed slots.
	Compact(consumed int, live int, cap_ int) bool
}

// DefaultMinConsumed is the consumed-prefix size below which
// ThresholdCompactor never compacts.
const DefaultMinConsumed = 8

// ThresholdCompactor compacts once the consumed prefix reaches
// MinConsumed slots and covers at least half of backing storage.
// A lower threshold wastes less retained capacity but performs more
// move operations.
type ThresholdCompactor struct {
	MinConsumed int
}

var _ Compactor = ThresholdCompactor{}

// Compact implements Compactor.
func (c ThresholdCompactor) Compact(consumed int, live int, cap_ int) bool {
	min := c.MinConsumed
	if min <= 0 {
		min = DefaultMinConsumed
	}
	return consumed >= min && consumed*2 >= cap_
}

// DefaultCompactor is the policy queues use unless one is installed
// with WithCompactor.
var DefaultCompactor Compactor = ThresholdCompactor{MinConsumed: DefaultMinConsumed}
