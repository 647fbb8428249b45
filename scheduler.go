package rabbitsearch

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Scheduler owns the shared state of one search run: the arena, the
// three-queue broker, the outstanding-work counters, and the pool of
// worker goroutines. Its public contract mirrors spec.md §4.6, adapted
// from the original implementation's Scheduler<Allocator> (original_source
// bin/sched.hpp): construct, Submit the root job, Run, poll IsBusy /
// TryNextResult, StopAll, Wait.
type Scheduler struct {
	needle []byte
	logger Logger
	opts   options

	arena  Arena
	broker *broker

	directoriesOutstanding atomic.Int64
	filesOpen              atomic.Int64
	exit                   atomic.Bool

	// terminalDrain fires broker.drain() exactly once, the moment a worker
	// first observes directoriesOutstanding hitting zero: at that point no
	// worker will ever submit another TraverseDirectory or SearchFile job,
	// so it is safe to tell the lfq queues their producers are done (see
	// the Drainer wiring on the result queue in Wait/StopAll below for the
	// other half of this).
	terminalDrain sync.Once

	// fatal carries a worker goroutine's *FatalError panic back to whoever
	// is waiting on this Scheduler. It is sized to opts.workers so no
	// worker ever blocks trying to report one.
	fatal chan *FatalError

	wg sync.WaitGroup
}

// NewScheduler constructs a Scheduler over needle. It does not start any
// worker goroutines; call Submit then Run.
func NewScheduler(needle []byte, opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if o.target >= o.max {
		panic("rabbitsearch: target must be less than max")
	}

	if o.simd != nil {
		SetISA(*o.simd)
	}

	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)

	return &Scheduler{
		needle: needleCopy,
		logger: o.logger,
		opts:   o,
		broker: newBroker(o.queueCap),
		fatal:  make(chan *FatalError, o.workers),
	}
}

// Submit seeds the initial TraverseDirectory job rooted at root. It must be
// called before Run, exactly once, with parent set to nil (the search
// root has no FsNode parent).
func (s *Scheduler) Submit(root dirHandle) {
	s.directoriesOutstanding.Add(1)

	if !s.broker.submitTraverse(traverseJob(nil, root)) {
		fatalf(s.logger, "submit-root", errQueueSaturated)
	}
}

// Run spawns opts.workers worker goroutines and returns immediately; it
// does not block until they finish (use [Scheduler.Wait] for that).
//
// A worker's fatalf panic (arena/queue exhaustion) is recovered here rather
// than left to crash the process: it is reported through [Scheduler.Err]
// instead, so a driver blocked in Wait/StopAll observes it after every
// worker has actually stopped rather than via an unrecoverable crash on a
// goroutine the driver never runs on.
func (s *Scheduler) Run() {
	s.wg.Add(s.opts.workers)

	for i := 0; i < s.opts.workers; i++ {
		w := &Worker{sched: s}

		go func() {
			defer s.wg.Done()
			defer s.recoverWorkerPanic()
			w.run()
		}()
	}
}

func (s *Scheduler) recoverWorkerPanic() {
	r := recover()
	if r == nil {
		return
	}

	var fatal *FatalError
	if !errors.As(asError(r), &fatal) {
		panic(r)
	}

	s.exit.Store(true)

	select {
	case s.fatal <- fatal:
	default:
	}
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("%v", r)
}

// Err returns the first *FatalError a worker panicked with, or nil if none
// has (yet). It never blocks; callers should check it after [Scheduler.Wait]
// or [Scheduler.StopAll] returns.
func (s *Scheduler) Err() error {
	select {
	case fatal := <-s.fatal:
		return fatal
	default:
		return nil
	}
}

// beginDrain tells the underlying queues their producers are done, exactly
// once, the first time a worker observes the traversal frontier has fully
// drained (see [Worker.run]).
func (s *Scheduler) beginDrain() {
	s.terminalDrain.Do(s.broker.drain)
}

// IsBusy reports whether any directory traversal remains outstanding. A
// driver typically loops draining TryNextResult while IsBusy is true, then
// performs one final drain after it goes false (spec.md §4.6): some
// results may have been enqueued between the last IsBusy read and loop
// exit.
func (s *Scheduler) IsBusy() bool {
	return s.directoriesOutstanding.Load() > 0
}

// TryNextResult performs a non-blocking dequeue of the result queue.
func (s *Scheduler) TryNextResult() (Result, bool) {
	r, ok := s.broker.tryResult()
	if !ok {
		return Result{}, false
	}

	return Result{Node: r.node}, true
}

// StopAll sets the exit flag, causing every worker to return at its next
// main-loop check, then joins them. Open file descriptors held by jobs
// still queued at cancellation are leaked until process exit (spec.md §5
// "Cancellation") — acceptable for a one-shot CLI.
func (s *Scheduler) StopAll() {
	s.exit.Store(true)
	s.wg.Wait()
	s.broker.drain()
}

// Wait blocks until every worker has returned because the traversal
// frontier drained naturally (as opposed to StopAll's forced exit). It
// drains the underlying queues once more after every worker has stopped,
// since the result queue keeps receiving matches for as long as any worker
// is still servicing its drainSearchJobs tail.
func (s *Scheduler) Wait() {
	s.wg.Wait()
	s.broker.drain()
}

// emitResult publishes a match. Fatal if the result queue is saturated:
// per the error taxonomy (spec.md §7), a full unbounded-in-spec queue is a
// fatal-resource condition, not a dropped result.
func (s *Scheduler) emitResult(node *FsNode) {
	if !s.broker.submitResult(result{node: node}) {
		fatalf(s.logger, "submit-result", errQueueSaturated)
	}
}

// Close releases the arena's reference to its node chain. It must only be
// called after Wait/StopAll has returned and every Result has been
// consumed by the caller — see [Arena.Destroy].
func (s *Scheduler) Close() {
	s.arena.Destroy()
}
