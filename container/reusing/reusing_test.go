package reusing

import (
	"slices"
	"strings"
	"testing"
)

func TestPushMutHandsBackSameSlots(t *testing.T) {
	s := New[[]byte]()

	// Reach the high-water mark first so storage stops moving.
	for n_ := 0; n_ < 5; n_++ {
		s.PushMut()
	}
	s.Clear()

	ptrs := make([]*[]byte, 0, 5)
	for i := 0; i < 5; i++ {
		p := s.PushMut()
		*p = append((*p)[:0], byte('a'+i))
		ptrs = append(ptrs, p)
	}
	s.Clear()

	for i := 0; i < 5; i++ {
		p := s.PushMut()
		if p != ptrs[i] {
			t.Fatalf("slot %d: got a different backing slot after clear", i)
		}
		if len(*p) != 1 || (*p)[0] != byte('a'+i) {
			t.Fatalf("slot %d: retained contents lost, got %q", i, *p)
		}
	}

	st := s.Stats()
	if st.Allocs != 5 {
		t.Fatalf("Allocs = %d, want 5", st.Allocs)
	}
	if st.Reuses != 10 {
		t.Fatalf("Reuses = %d, want 10", st.Reuses)
	}
}

func TestSteadyStateIsAllocationFree(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	s := New[[]byte]()
	fill := func() {
		s.Clear()
		for _, w := range words {
			b := s.PushMut()
			*b = append((*b)[:0], w...)
		}
	}
	// Two warmup rounds: first constructs the slots, second lets the
	// inner byte buffers reach their final capacity.
	fill()
	fill()

	if n := testing.AllocsPerRun(100, fill); n != 0 {
		t.Fatalf("steady-state allocations per cycle = %v, want 0", n)
	}
}

func TestPushOverwritesRetainedSlot(t *testing.T) {
	s := New[string]()
	s.Push("old")
	s.Clear()
	s.Push("new")

	v, ok := s.Get(0)
	if !ok || *v != "new" {
		t.Fatalf("Get(0) = %v, %v, want new", v, ok)
	}
	if st := s.Stats(); st.Allocs != 1 || st.Reuses != 1 {
		t.Fatalf("stats = %+v, want 1 alloc and 1 reuse", st)
	}
}

func TestPushWithResetsOnlyRetainedSlots(t *testing.T) {
	var news, resets int
	newFn := func() []int {
		news++
		return make([]int, 0, 4)
	}
	resetFn := func(v *[]int) {
		resets++
		*v = (*v)[:0]
	}

	s := New[[]int]()
	for n_ := 0; n_ < 3; n_++ {
		v := s.PushWith(newFn, resetFn)
		*v = append(*v, 1)
	}
	s.Clear()
	for n_ := 0; n_ < 3; n_++ {
		s.PushWith(newFn, resetFn)
	}

	if news != 3 || resets != 3 {
		t.Fatalf("news = %d resets = %d, want 3 and 3", news, resets)
	}
	v, _ := s.Get(0)
	if len(*v) != 0 {
		t.Fatalf("reset slot still holds %v", *v)
	}
}

func TestPopRetainsElement(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")

	v, ok := s.Pop()
	if !ok || *v != "b" {
		t.Fatalf("Pop = %v, %v, want b", v, ok)
	}
	if s.Len() != 1 || s.Cap() != 2 {
		t.Fatalf("Len = %d Cap = %d, want 1 and 2", s.Len(), s.Cap())
	}

	// The popped element must come back intact on the next push.
	p := s.PushMut()
	if *p != "b" {
		t.Fatalf("retained slot holds %q, want b", *p)
	}

	s.Clear()
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty container reported success")
	}
	if st := s.Stats(); st.Released != 0 {
		t.Fatalf("Released = %d after pops and clears, want 0", st.Released)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)

	s.Clear()
	first := *s
	s.Clear()
	if s.Len() != first.Len() || s.Cap() != first.Cap() {
		t.Fatal("second Clear changed the container")
	}
}

func TestVisibilityStopsAtLogicalLength(t *testing.T) {
	s := New[int]()
	for i := 0; i < 3; i++ {
		s.Push(i)
	}
	s.Pop()

	if _, ok := s.Get(2); ok {
		t.Fatal("Get reached a retained element")
	}
	if _, ok := s.Get(-1); ok {
		t.Fatal("Get accepted a negative index")
	}
	if v, ok := s.Get(1); !ok || *v != 1 {
		t.Fatalf("Get(1) = %v, %v", v, ok)
	}

	if got := len(s.View()); got != 2 {
		t.Fatalf("View length = %d, want 2", got)
	}
	var seen int
	s.Range(func(i int, v *int) bool {
		seen++
		return true
	})
	if seen != 2 {
		t.Fatalf("Range visited %d elements, want 2", seen)
	}

	if v, ok := s.First(); !ok || *v != 0 {
		t.Fatalf("First = %v, %v", v, ok)
	}
	if v, ok := s.Last(); !ok || *v != 1 {
		t.Fatalf("Last = %v, %v", v, ok)
	}
}

func TestRangeStopsEarly(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	var visited int
	s.Range(func(i int, v *int) bool {
		visited++
		return *v < 2
	})
	if visited != 2 {
		t.Fatalf("Range visited %d elements, want 2", visited)
	}
}

func TestTruncateShortensLogicallyOnly(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c", "d"})
	s.Truncate(2)
	if s.Len() != 2 || s.Cap() != 4 {
		t.Fatalf("Len = %d Cap = %d, want 2 and 4", s.Len(), s.Cap())
	}
	s.Truncate(10)
	if s.Len() != 2 {
		t.Fatal("Truncate past the length changed it")
	}
	s.Truncate(-1)
	if s.Len() != 0 {
		t.Fatal("negative Truncate did not clear")
	}
}

func TestSortFuncLeavesRetainedSlotsAlone(t *testing.T) {
	s := New[int]()
	for _, v := range []int{3, 1, 9} {
		s.Push(v)
	}
	s.Pop() // 9 becomes retained

	s.SortFunc(func(a, b int) int { return a - b })
	if got := s.View(); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("sorted view = %v", got)
	}

	p := s.PushMut()
	if *p != 9 {
		t.Fatalf("retained slot holds %d after sort, want 9", *p)
	}

	s2 := FromSlice([]string{"b", "c", "a"})
	Sort(s2)
	if got := s2.View(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("Sort = %v", got)
	}
}

func TestSearchFunc(t *testing.T) {
	s := FromSlice([]string{"one", "two", "three"})
	v, ok := s.SearchFunc(func(w string) bool { return strings.HasPrefix(w, "tw") })
	if !ok || *v != "two" {
		t.Fatalf("SearchFunc = %v, %v", v, ok)
	}
	s.Truncate(1)
	if _, ok := s.SearchFunc(func(w string) bool { return w == "two" }); ok {
		t.Fatal("SearchFunc found a logically removed element")
	}
}

func TestReleaseCapacityDropsRetainedTail(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	s.Truncate(1)

	s.ReleaseCapacity(2)
	if s.Cap() != 2 {
		t.Fatalf("Cap = %d, want 2", s.Cap())
	}
	if st := s.Stats(); st.Released != 3 {
		t.Fatalf("Released = %d, want 3", st.Released)
	}

	// Never below the logical length.
	s.ReleaseCapacity(0)
	if s.Cap() != 1 || s.Len() != 1 {
		t.Fatalf("Cap = %d Len = %d, want 1 and 1", s.Cap(), s.Len())
	}
	if v, ok := s.Get(0); !ok || *v != 1 {
		t.Fatalf("logical element lost: %v, %v", v, ok)
	}
}

type denyRecycler struct{}

func (denyRecycler) Shrink(len_ int, cap_ int) bool { return false }

type allowRecycler struct{}

func (allowRecycler) Shrink(len_ int, cap_ int) bool { return cap_ > len_ }

func TestShrinkConsultsRecycler(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}).WithRecycler(denyRecycler{})
	s.Truncate(1)
	s.Shrink()
	if s.Cap() != 3 {
		t.Fatalf("denied shrink still released capacity, Cap = %d", s.Cap())
	}

	s = FromSlice([]int{1, 2, 3}).WithRecycler(allowRecycler{})
	s.Truncate(1)
	s.Shrink()
	if s.Cap() != 1 {
		t.Fatalf("allowed shrink kept capacity, Cap = %d", s.Cap())
	}
}

func TestDetachYieldsLogicalElements(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")
	s.Pop() // c retained

	out := s.Detach()
	if !slices.Equal(out, []string{"a", "b"}) {
		t.Fatalf("Detach = %v", out)
	}
	if s.Len() != 0 || s.Cap() != 0 {
		t.Fatalf("container not reset: Len = %d Cap = %d", s.Len(), s.Cap())
	}
	if st := s.Stats(); st.Released != 1 {
		t.Fatalf("Released = %d, want 1", st.Released)
	}

	// The container starts over; the detached slice is untouched.
	s.Push("x")
	if out[0] != "a" {
		t.Fatal("detached slice changed after container reuse")
	}
}

func TestNewWithCapacityDoesNotConstruct(t *testing.T) {
	s := NewWithCapacity[int](16)
	if s.Len() != 0 || s.Cap() != 0 {
		t.Fatalf("Len = %d Cap = %d, want 0 and 0", s.Len(), s.Cap())
	}
	s.Push(1)
	if st := s.Stats(); st.Allocs != 1 {
		t.Fatalf("Allocs = %d, want 1", st.Allocs)
	}
}

func BenchmarkSliceReuseCycle(b *testing.B) {
	s := New[[]byte]()
	payload := []string{"alpha", "beta", "gamma", "delta"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for _, w := range payload {
			p := s.PushMut()
			*p = append((*p)[:0], w...)
		}
	}
}
