// Package rabbitsearch provides a parallel recursive substring search core.
//
// Given a root directory and a byte needle, [Scheduler] enumerates every
// regular file reachable by recursive directory traversal, searches each
// file's contents for the needle, and emits the path of every matching file
// on its result stream.
//
// # Symlinks
//
// Symbolic links are never followed. A symlink to a file or a directory is
// skipped entirely: it is neither recursed into nor scanned.
//
// # File types
//
// Only regular files are scanned. Directories, symlinks, and other
// non-regular file types (FIFOs, sockets, devices) are skipped.
//
// # Architecture
//
// The core is a work-stealing pipeline built from four pieces:
//
//	┌─────────────────────────────────────────────────────────────────────────┐
//	│ PIPELINE                                                                │
//	├─────────────────────────────────────────────────────────────────────────┤
//	│                                                                         │
//	│  Search(root, needle) ──► Scheduler.Submit(root)                        │
//	│    │                                                                    │
//	│    ▼                                                                    │
//	│  traverseQueue ──► [Worker...N] ──► one FsNode per directory entry      │
//	│                        │               (allocated from the Arena)      │
//	│                        ├─► subdirectory  → new traverseJob             │
//	│                        └─► regular file  → searchQueue                 │
//	│                                              │                         │
//	│                                              ▼                         │
//	│                                        [Worker...N] ──► scanner.Find   │
//	│                                              │                         │
//	│                                              ▼ (on match)              │
//	│                                          resultQueue ──► driver drains │
//	│                                                                        │
//	└─────────────────────────────────────────────────────────────────────────┘
//
// Workers are adaptive: each iteration of the loop in [Worker] chooses
// whether to service a traversal job or a search job based on the current
// number of open file descriptors, trading fan-out (discovering new files)
// against drain (finishing files already open). See [WithTarget] and [WithMax].
//
// # Termination
//
// [Scheduler.IsBusy] reports whether any traversal work remains outstanding.
// A driver typically loops draining [Scheduler.TryNextResult] while IsBusy
// is true, then performs one final drain after it goes false, because a
// result may be enqueued between the last IsBusy read and loop exit.
//
// # Panics
//
// Allocation failure in the [Arena] and worker-thread creation failure are
// treated as fatal: they are logged and then panic with a *[FatalError].
// [Scheduler.Run] does not recover these; callers that want a clean process
// exit should recover at their own top level (see cmd/rbs for the reference
// driver).
package rabbitsearch
