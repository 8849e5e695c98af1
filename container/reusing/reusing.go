// Package reusing provides slice-backed containers that reuse their
// elements across logical removal instead of dropping them.
//
// Both containers separate the logical length (elements the caller can
// see) from the physically constructed storage. Pop and Clear only move
// the logical cursor; the elements stay alive in their slots, so any
// memory they own (string bytes, nested slices, maps) survives and is
// handed back by the next PushMut. Hot loops that build, consume and
// discard structurally similar elements per iteration reach a
// high-water mark once and then run allocation free.
//
// The containers are not safe for concurrent use, matching the
// concurrency contract of a plain slice.
package reusing

import (
	"cmp"
	"slices"

	"github.com/reusing-lab/reusing/container/recycler"
	"github.com/reusing-lab/reusing/utils/xslices"
)

// Slice is a stack-ended reuse container over a contiguous slice.
// Every index in [0, Cap()) holds a live value; indices at and beyond
// Len() are retained elements waiting to be reused.
type Slice[T any] struct {
	items    []T
	length   int
	recycler recycler.Recycler
	stats    Stats
}

// New creates an empty Slice. It does not allocate until the first
// element is pushed.
func New[T any]() *Slice[T] {
	return &Slice[T]{}
}

// NewWithCapacity creates an empty Slice with space preallocated for
// cap_ elements. The slots are not constructed until first use.
func NewWithCapacity[T any](cap_ int) *Slice[T] {
	if cap_ < 0 {
		cap_ = 0
	}
	return &Slice[T]{items: make([]T, 0, cap_)}
}

// FromSlice wraps an existing slice without copying. The container
// takes ownership of s; the logical length starts at len(s).
func FromSlice[T any](s []T) *Slice[T] {
	return &Slice[T]{items: s, length: len(s)}
}

// WithRecycler installs the policy consulted by Shrink.
func (s *Slice[T]) WithRecycler(r recycler.Recycler) *Slice[T] {
	s.recycler = r
	return s
}

// PushMut grows the logical length by one and returns a pointer to the
// element at the new position. If a retained element exists in that
// slot it is returned as-is, with whatever contents its previous use
// left behind; the caller is expected to clear the fields it needs
// clean and then overwrite or extend them. Only when no retained slot
// exists is a new zero-valued element constructed.
//
// The returned pointer is invalidated by any later call that grows the
// container.
func (s *Slice[T]) PushMut() *T {
	if s.length < len(s.items) {
		s.stats.Reuses++
	} else {
		var zero T
		s.items = append(s.items, zero)
		s.stats.Allocs++
	}
	el := &s.items[s.length]
	s.length++
	return el
}

// PushWith grows the logical length by one, constructing the element
// with newFn when no retained slot exists and reinitializing the
// retained slot with resetFn otherwise. It returns a pointer to the
// element.
func (s *Slice[T]) PushWith(newFn func() T, resetFn func(*T)) *T {
	if s.length < len(s.items) {
		resetFn(&s.items[s.length])
		s.stats.Reuses++
	} else {
		s.items = append(s.items, newFn())
		s.stats.Allocs++
	}
	el := &s.items[s.length]
	s.length++
	return el
}

// Push grows the logical length by one, overwriting the retained slot
// with v if one exists. Overwriting discards the slot's old value, so
// PushMut or PushWith is the usual way to keep element reuse intact.
func (s *Slice[T]) Push(v T) {
	if s.length < len(s.items) {
		s.items[s.length] = v
		s.stats.Reuses++
	} else {
		s.items = append(s.items, v)
		s.stats.Allocs++
	}
	s.length++
}

// Pop shrinks the logical length by one and returns a pointer to the
// element that was removed. The element stays constructed in its slot
// and will be handed back by a future PushMut. It returns nil and
// false if the container is empty.
func (s *Slice[T]) Pop() (*T, bool) {
	if s.length == 0 {
		return nil, false
	}
	s.length--
	return &s.items[s.length], true
}

// Clear logically removes all elements without releasing any of them.
// Calling Clear on an empty container is a no-op.
func (s *Slice[T]) Clear() {
	s.length = 0
}

// Truncate keeps the first n logical elements and logically removes
// the rest. It has no effect when n is at or beyond the current
// length.
func (s *Slice[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < s.length {
		s.length = n
	}
}

// Len returns the number of logical elements.
func (s *Slice[T]) Len() int {
	return s.length
}

// IsEmpty reports whether the container holds no logical elements.
func (s *Slice[T]) IsEmpty() bool {
	return s.length == 0
}

// Cap returns the number of physically constructed slots, including
// retained ones.
func (s *Slice[T]) Cap() int {
	return len(s.items)
}

// Get returns a pointer to the logical element at index i, or nil and
// false when i is out of the logical range.
func (s *Slice[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= s.length {
		return nil, false
	}
	return &s.items[i], true
}

// First returns a pointer to the first logical element.
func (s *Slice[T]) First() (*T, bool) {
	return s.Get(0)
}

// Last returns a pointer to the last logical element.
func (s *Slice[T]) Last() (*T, bool) {
	return s.Get(s.length - 1)
}

// View returns the logical elements as a plain slice sharing the
// container's storage. Indexing past the view panics like ordinary
// slice indexing. The view's capacity is clipped so appends through it
// cannot touch retained slots.
func (s *Slice[T]) View() []T {
	return s.items[:s.length:s.length]
}

// Range calls fn for each logical element in order until fn returns
// false.
func (s *Slice[T]) Range(fn func(i int, v *T) bool) {
	for i := 0; i < s.length; i++ {
		if !fn(i, &s.items[i]) {
			return
		}
	}
}

// SortFunc sorts the logical elements in place using cmp. Retained
// elements keep their slots.
func (s *Slice[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(s.items[:s.length], cmp)
}

// Sort sorts the logical elements of s in ascending order. Retained
// elements keep their slots.
func Sort[T cmp.Ordered](s *Slice[T]) {
	slices.Sort(s.items[:s.length])
}

// SearchFunc returns a pointer to the first logical element satisfying
// f.
func (s *Slice[T]) SearchFunc(f func(T) bool) (*T, bool) {
	i, ok := xslices.Search(s.items[:s.length], f)
	if !ok {
		return nil, false
	}
	return &s.items[i], true
}

// ReleaseCapacity drops retained elements beyond the first n physical
// slots, releasing their memory to the garbage collector. Logical
// elements are never dropped; n is raised to Len() if below it. This
// is the only operation besides Detach that destroys elements.
func (s *Slice[T]) ReleaseCapacity(n int) {
	if n < s.length {
		n = s.length
	}
	if n >= len(s.items) {
		return
	}
	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.stats.Released += uint64(len(s.items) - n)
	s.items = slices.Clip(s.items[:n])
}

// Shrink releases all retained capacity beyond the logical length,
// first consulting the installed recycler if any.
func (s *Slice[T]) Shrink() {
	if s.recycler != nil && !s.recycler.Shrink(s.length, len(s.items)) {
		return
	}
	s.ReleaseCapacity(s.length)
}

// Detach yields ownership of the logical elements as a plain slice and
// resets the container to empty. Retained elements beyond the logical
// length are released; the returned slice leaves the reuse contract
// entirely.
func (s *Slice[T]) Detach() []T {
	out := s.items
	var zero T
	for i := s.length; i < len(out); i++ {
		out[i] = zero
	}
	s.stats.Released += uint64(len(out) - s.length)
	out = slices.Clip(out[:s.length])
	s.items = nil
	s.length = 0
	return out
}

// Stats returns a snapshot of the container's event counters.
func (s *Slice[T]) Stats() Stats {
	return s.stats
}
