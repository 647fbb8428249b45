package rabbitsearch

import (
	"code.hybscloud.com/lfq"
)

// defaultQueueCapacity is the physical capacity of each MPMC ring. It rounds
// up to a power of two internally (see the lfq package doc). Sized well
// above any single directory's typical fan-out so that saturation only
// happens under pathological trees; when it does happen, the caller policy
// is the fatal-resource path from spec.md §7 (never a silent stall — the
// spec requires enqueue to "never fail for out-of-memory as anything but a
// fatal error", and a full ring is that condition here).
const defaultQueueCapacity = 1 << 16

// broker owns the three MPMC queues spec.md §4.4 requires: separate
// traversal, search, and result queues. Enqueue is non-blocking; a full
// queue is reported to the caller so it can apply the fatal-resource policy
// rather than spin forever.
type broker struct {
	traverse lfq.Queue[job]
	search   lfq.Queue[job]
	result   lfq.Queue[result]
}

func newBroker(capacity int) *broker {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}

	return &broker{
		traverse: lfq.NewMPMC[job](capacity),
		search:   lfq.NewMPMC[job](capacity),
		result:   lfq.NewMPMC[result](capacity),
	}
}

// submitTraverse enqueues a traversal job. It returns false only if the
// queue is saturated (fatal-resource condition).
func (b *broker) submitTraverse(j job) bool {
	return b.traverse.Enqueue(&j) == nil
}

func (b *broker) submitSearch(j job) bool {
	return b.search.Enqueue(&j) == nil
}

func (b *broker) submitResult(r result) bool {
	return b.result.Enqueue(&r) == nil
}

// tryTraverse dequeues a traversal job, returning ok=false on empty.
func (b *broker) tryTraverse() (job, bool) {
	j, err := b.traverse.Dequeue()
	if err != nil {
		return job{}, false
	}

	return j, true
}

func (b *broker) trySearch() (job, bool) {
	j, err := b.search.Dequeue()
	if err != nil {
		return job{}, false
	}

	return j, true
}

func (b *broker) tryResult() (result, bool) {
	r, err := b.result.Dequeue()
	if err != nil {
		return result{}, false
	}

	return r, true
}

// drain signals to the underlying queues that no further producers remain,
// so consumers can fully empty them without the FAA threshold mechanism
// (see the lfq package doc's "Graceful Shutdown" section) causing spurious
// would-block returns on a queue that still holds items.
func (b *broker) drain() {
	if d, ok := b.traverse.(lfq.Drainer); ok {
		d.Drain()
	}

	if d, ok := b.search.(lfq.Drainer); ok {
		d.Drain()
	}

	if d, ok := b.result.(lfq.Drainer); ok {
		d.Drain()
	}
}
