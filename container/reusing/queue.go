package reusing

import (
	"slices"

	"github.com/reusing-lab/reusing/container/recycler"
	"github.com/reusing-lab/reusing/utils/xslices"
)

// Queue is a double-ended reuse container: elements are pushed at the
// back with the same reuse algorithm as Slice and popped from the
// front. The live window occupies indices [start, end) of backing
// storage; [0, start) is the consumed prefix, whose slots become
// reusable again once a compaction pass moves the window down to
// index 0. Compaction is a policy decision, see recycler.Compactor.
type Queue[T any] struct {
	items     []T
	start     int
	end       int
	compactor recycler.Compactor
	recycler  recycler.Recycler
	stats     Stats
}

// NewQueue creates an empty Queue. It does not allocate until the
// first element is pushed.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewQueueWithCapacity creates an empty Queue with space preallocated
// for cap_ elements.
func NewQueueWithCapacity[T any](cap_ int) *Queue[T] {
	if cap_ < 0 {
		cap_ = 0
	}
	return &Queue[T]{items: make([]T, 0, cap_)}
}

// QueueFromSlice wraps an existing slice without copying. The queue
// takes ownership of s; the live window starts as the whole slice.
func QueueFromSlice[T any](s []T) *Queue[T] {
	return &Queue[T]{items: s, end: len(s)}
}

// WithCompactor installs the compaction policy. The zero policy is
// recycler.DefaultCompactor.
func (q *Queue[T]) WithCompactor(c recycler.Compactor) *Queue[T] {
	q.compactor = c
	return q
}

// WithRecycler installs the policy consulted by Shrink.
func (q *Queue[T]) WithRecycler(r recycler.Recycler) *Queue[T] {
	q.recycler = r
	return q
}

// PushBackMut grows the live window by one at the back and returns a
// pointer to the element there. A retained slot is handed back without
// reinitialization, exactly as Slice.PushMut. A compaction pass may
// run first; pointers from earlier calls are invalidated.
func (q *Queue[T]) PushBackMut() *T {
	q.maybeCompact()
	if q.end < len(q.items) {
		q.stats.Reuses++
	} else {
		var zero T
		q.items = append(q.items, zero)
		q.stats.Allocs++
	}
	el := &q.items[q.end]
	q.end++
	return el
}

// PushBackWith grows the live window by one at the back, constructing
// with newFn or reinitializing a retained slot with resetFn.
func (q *Queue[T]) PushBackWith(newFn func() T, resetFn func(*T)) *T {
	q.maybeCompact()
	if q.end < len(q.items) {
		resetFn(&q.items[q.end])
		q.stats.Reuses++
	} else {
		q.items = append(q.items, newFn())
		q.stats.Allocs++
	}
	el := &q.items[q.end]
	q.end++
	return el
}

// PushBack grows the live window by one at the back, overwriting the
// retained slot with v if one exists.
func (q *Queue[T]) PushBack(v T) {
	q.maybeCompact()
	if q.end < len(q.items) {
		q.items[q.end] = v
		q.stats.Reuses++
	} else {
		q.items = append(q.items, v)
		q.stats.Allocs++
	}
	q.end++
}

// PopFront removes the front element of the live window and reports
// whether an element was removed. The element is not destroyed; its
// slot joins the consumed prefix and becomes reusable after the next
// compaction. Inspect the element with Front before popping. A
// compaction pass may run as part of the call.
func (q *Queue[T]) PopFront() bool {
	if q.start == q.end {
		return false
	}
	q.start++
	if q.start == q.end {
		// Empty window: resetting the cursors makes the whole prefix
		// reusable without a move pass.
		q.start, q.end = 0, 0
		return true
	}
	q.maybeCompact()
	return true
}

// Pop removes the back element of the live window and returns a
// pointer to it, or nil and false when the window is empty. The
// element stays constructed in its slot.
func (q *Queue[T]) Pop() (*T, bool) {
	if q.start == q.end {
		return nil, false
	}
	q.end--
	el := &q.items[q.end]
	if q.start == q.end {
		q.start, q.end = 0, 0
	}
	return el, true
}

// Front returns a pointer to the first element of the live window.
func (q *Queue[T]) Front() (*T, bool) {
	if q.start == q.end {
		return nil, false
	}
	return &q.items[q.start], true
}

// Back returns a pointer to the last element of the live window.
func (q *Queue[T]) Back() (*T, bool) {
	if q.start == q.end {
		return nil, false
	}
	return &q.items[q.end-1], true
}

// Len returns the number of elements in the live window.
func (q *Queue[T]) Len() int {
	return q.end - q.start
}

// IsEmpty reports whether the live window is empty.
func (q *Queue[T]) IsEmpty() bool {
	return q.start == q.end
}

// Cap returns the number of physically constructed slots, including
// the consumed prefix and the retained tail.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Get returns a pointer to the window element at index i, or nil and
// false when i is out of range.
func (q *Queue[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= q.end-q.start {
		return nil, false
	}
	return &q.items[q.start+i], true
}

// View returns the live window as a plain slice sharing the queue's
// storage, capacity clipped so appends through it cannot touch
// retained slots.
func (q *Queue[T]) View() []T {
	return q.items[q.start:q.end:q.end]
}

// Range calls fn for each window element in order until fn returns
// false.
func (q *Queue[T]) Range(fn func(i int, v *T) bool) {
	for i := q.start; i < q.end; i++ {
		if !fn(i-q.start, &q.items[i]) {
			return
		}
	}
}

// SearchFunc returns a pointer to the first window element satisfying
// f.
func (q *Queue[T]) SearchFunc(f func(T) bool) (*T, bool) {
	i, ok := xslices.Search(q.items[q.start:q.end], f)
	if !ok {
		return nil, false
	}
	return &q.items[q.start+i], true
}

// Clear logically removes all elements without releasing any of them.
func (q *Queue[T]) Clear() {
	q.start, q.end = 0, 0
}

// Truncate keeps the first n window elements and logically removes the
// rest. It has no effect when n is at or beyond the current length.
func (q *Queue[T]) Truncate(n int) {
	if n <= 0 {
		q.Clear()
		return
	}
	if n < q.end-q.start {
		q.end = q.start + n
	}
}

// ReleaseCapacity compacts the window to the start of storage and then
// drops constructed slots beyond the first n, releasing their memory.
// Window elements are never dropped; n is raised to Len() if below it.
func (q *Queue[T]) ReleaseCapacity(n int) {
	q.compact()
	if n < q.end {
		n = q.end
	}
	if n >= len(q.items) {
		return
	}
	var zero T
	for i := n; i < len(q.items); i++ {
		q.items[i] = zero
	}
	q.stats.Released += uint64(len(q.items) - n)
	q.items = slices.Clip(q.items[:n])
}

// Shrink releases all capacity beyond the live window, first
// consulting the installed recycler if any.
func (q *Queue[T]) Shrink() {
	if q.recycler != nil && !q.recycler.Shrink(q.end-q.start, len(q.items)) {
		return
	}
	q.ReleaseCapacity(q.end - q.start)
}

// Detach yields ownership of the window elements as a plain slice and
// resets the queue to empty. The consumed prefix and retained tail are
// released; the returned slice leaves the reuse contract entirely.
func (q *Queue[T]) Detach() []T {
	live := q.end - q.start
	if q.start > 0 {
		copy(q.items[:live], q.items[q.start:q.end])
	}
	var zero T
	for i := live; i < len(q.items); i++ {
		q.items[i] = zero
	}
	q.stats.Released += uint64(len(q.items) - live)
	out := slices.Clip(q.items[:live])
	q.items, q.start, q.end = nil, 0, 0
	return out
}

// Stats returns a snapshot of the queue's event counters.
func (q *Queue[T]) Stats() Stats {
	return q.stats
}

// maybeCompact runs a compaction pass when the installed policy asks
// for one.
func (q *Queue[T]) maybeCompact() {
	if q.start == 0 {
		return
	}
	c := q.compactor
	if c == nil {
		c = recycler.DefaultCompactor
	}
	if c.Compact(q.start, q.end-q.start, len(q.items)) {
		q.compact()
	}
}

// compact move-assigns the live window down to index 0. No element is
// constructed or destroyed; the vacated trailing slots become retained
// capacity for future back-pushes. The order of window elements is
// preserved.
func (q *Queue[T]) compact() {
	if q.start == 0 {
		return
	}
	live := q.end - q.start
	copy(q.items[:live], q.items[q.start:q.end])
	q.start, q.end = 0, live
	q.stats.Compactions++
}
