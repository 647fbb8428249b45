package rabbitsearch

// worker.go implements the adaptive fetch-and-service loop from spec.md
// §4.5. It is a direct generalization of the original implementation's
// Worker<Scheduler>::Run (original_source bin/sched.hpp): the leaky-bucket
// idle counter is replaced by this spec's directories_outstanding
// termination rule, but the shape — check exit, fetch, dispatch by job
// kind, backoff on miss — is the same loop.

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Worker runs spec.md §4.5's main loop against a shared [Scheduler]. It
// holds no state of its own beyond the loop's backoff counter; every
// resource (arena, queues, counters) lives on the Scheduler and is safe
// for concurrent use by every worker.
type Worker struct {
	sched *Scheduler
}

func (w *Worker) run() {
	backoff := iox.Backoff{}

	for {
		if w.sched.exit.Load() {
			return
		}

		if w.sched.directoriesOutstanding.Load() == 0 {
			w.sched.beginDrain()
			w.drainSearchJobs()

			return
		}

		if w.tryDoJob() {
			backoff.Reset()
			continue
		}

		backoff.Wait()
	}
}

// drainSearchJobs runs after Invariant I3 holds (no worker will ever
// enqueue a new job again): it services whatever SearchFile jobs are still
// queued, spin-waiting briefly between empty dequeues since a sibling
// worker may still be in the middle of publishing one.
func (w *Worker) drainSearchJobs() {
	idle := 0

	for idle < drainIdleLimit {
		if w.sched.exit.Load() {
			return
		}

		j, ok := w.sched.broker.trySearch()
		if !ok {
			spin.Pause()
			idle++

			continue
		}

		idle = 0
		w.service(j)
	}
}

// drainIdleLimit bounds how many consecutive empty dequeues
// drainSearchJobs tolerates before concluding the search queue is truly
// exhausted. It is generous because a sibling worker publishing its last
// SearchFile job races with this worker's queue read.
const drainIdleLimit = 4096

// tryDoJob implements the target/max backpressure policy of spec.md §4.5:
// above target, prefer draining (SearchFile) over discovering (Traverse);
// at or below target, prefer discovering over draining; above max, refuse
// new opens entirely (TraverseDirectory can open more files, so it is
// gated the same way SearchFile is).
func (w *Worker) tryDoJob() bool {
	f := w.sched.filesOpen.Load()
	t := int64(w.sched.opts.target)
	m := int64(w.sched.opts.max)

	if f > t {
		if j, ok := w.sched.broker.trySearch(); ok {
			w.service(j)
			return true
		}

		if f < m {
			if j, ok := w.sched.broker.tryTraverse(); ok {
				w.service(j)
				return true
			}
		}

		return false
	}

	if j, ok := w.sched.broker.tryTraverse(); ok {
		w.service(j)
		return true
	}

	if j, ok := w.sched.broker.trySearch(); ok {
		w.service(j)
		return true
	}

	return false
}

func (w *Worker) service(j job) {
	switch j.kind {
	case jobTraverseDirectory:
		w.serviceTraverseDirectory(j.traverse)
	case jobSearchFile:
		w.serviceSearchFile(j.search)
	}
}

// serviceTraverseDirectory implements spec.md §4.5's "Servicing
// TraverseDirectory" step: enumerate dh to exhaustion, allocating one
// FsNode per entry and dispatching by entry type, then close dh and
// decrement directoriesOutstanding exactly once.
func (w *Worker) serviceTraverseDirectory(t traverseDirectoryJob) {
	defer func() {
		_ = t.dh.close()
		w.sched.directoriesOutstanding.Add(-1)
		metricsJobCompleted()
	}()

	metricsDirectoryVisited()

	for {
		entries, err := t.dh.readdir()
		if err != nil {
			if !isEOF(err) {
				w.sched.logger.Warnf("readdir: %v", err)
			}

			return
		}

		for _, e := range entries {
			w.dispatchEntry(t, e)
		}
	}
}

func (w *Worker) dispatchEntry(t traverseDirectoryJob, e dirEntry) {
	typ := e.typ

	if typ == direntUnknown && w.sched.opts.statFallback {
		resolved, err := t.dh.statUnknown(e.name)
		if err != nil {
			w.sched.logger.Warnf("stat %s: %v", string(e.name), err)
			return
		}

		typ = resolved
	}

	switch typ {
	case direntDirectory:
		w.dispatchDirectory(t, e)
	case direntRegular:
		w.dispatchFile(t, e)
	case direntSymlink:
		// Non-goal: symbolic-link traversal (spec.md §1). Skipped silently.
	case direntUnknown:
		w.sched.logger.Warnf("skipping %s: unknown entry type (DT_UNKNOWN)", string(e.name))
	default:
		w.sched.logger.Warnf("skipping %s: unsupported entry type", string(e.name))
	}
}

func (w *Worker) dispatchDirectory(t traverseDirectoryJob, e dirEntry) {
	child, err := t.dh.openChildDir(e.name)
	if err != nil {
		w.sched.logger.Warnf("openat %s: %v", string(e.name), err)
		return
	}

	node := w.sched.arena.New(e.name, t.parent)

	w.sched.directoriesOutstanding.Add(1)

	if !w.sched.broker.submitTraverse(traverseJob(node, child)) {
		fatalf(w.sched.logger, "submit-traverse", errQueueSaturated)
	}

	metricsJobSubmitted()
}

func (w *Worker) dispatchFile(t traverseDirectoryJob, e dirEntry) {
	fh, err := t.dh.openChildFile(e.name)
	if err != nil {
		w.sched.logger.Warnf("openat %s: %v", string(e.name), err)
		return
	}

	node := w.sched.arena.New(e.name, t.parent)

	w.sched.filesOpen.Add(1)

	if !w.sched.broker.submitSearch(searchJob(node, fh)) {
		fatalf(w.sched.logger, "submit-search", errQueueSaturated)
	}

	metricsJobSubmitted()
}
