package reusing

import (
	"github.com/reusing-lab/reusing/metrics"
)

// Event label values published by Publisher.
const (
	EventAlloc      = "alloc"
	EventReuse      = "reuse"
	EventCompaction = "compaction"
	EventRelease    = "release"
)

// Size label values published by Publisher.
const (
	SizeLogical  = "logical"
	SizePhysical = "physical"
)

// StatsSource is the read surface Publisher samples. Slice and Queue
// both implement it.
type StatsSource interface {
	Stats() Stats
	Len() int
	Cap() int
}

// Publisher periodically pushes a container's counters into metric
// vectors. The expected label sets are (container, event) for the
// counter and (container, kind) for the gauge. Publishing is pulled
// out of the containers themselves so the hot path never touches a
// metrics vector.
type Publisher struct {
	name string
	src  StatsSource
	ops  metrics.Counter
	size metrics.Gauge
	last Stats
}

// NewPublisher creates a Publisher reporting src under the container
// label name. Either metric may be nil to skip it.
func NewPublisher(name string, src StatsSource, ops metrics.Counter, size metrics.Gauge) *Publisher {
	return &Publisher{
		name: name,
		src:  src,
		ops:  ops,
		size: size,
	}
}

// Publish samples the source and reports the deltas since the last
// call to the counter and the current sizes to the gauge.
func (p *Publisher) Publish() {
	s := p.src.Stats()
	if p.ops != nil {
		p.ops.Add(float64(s.Allocs-p.last.Allocs), p.name, EventAlloc)
		p.ops.Add(float64(s.Reuses-p.last.Reuses), p.name, EventReuse)
		p.ops.Add(float64(s.Compactions-p.last.Compactions), p.name, EventCompaction)
		p.ops.Add(float64(s.Released-p.last.Released), p.name, EventRelease)
	}
	if p.size != nil {
		p.size.Set(float64(p.src.Len()), p.name, SizeLogical)
		p.size.Set(float64(p.src.Cap()), p.name, SizePhysical)
	}
	p.last = s
}
