package rabbitsearch

import "sync/atomic"

// FsNode is a directory-entry record: a base name plus an optional parent
// link. FsNodes form an inverse tree rooted at the search path — each node
// points to its parent, never the reverse — and are never mutated after
// publication (spec invariant: the parent link becomes observable only
// after the name bytes have been written).
//
// FsNode is allocated from an [Arena] and is never individually freed; a
// [Result] holds a bare *FsNode and remains valid for as long as the arena
// that produced it is reachable.
type FsNode struct {
	// name is the entry's base name. It is never longer than the
	// platform's NAME_MAX (typically 255 bytes) and never contains a path
	// separator.
	name []byte

	// parent is nil only for the root FsNode passed to the first
	// traversal job.
	parent *FsNode

	// previous links this node into the arena's append-only stack. It is
	// arena-private; callers of Arena.Allocate never see it.
	previous *FsNode
}

// Name returns the entry's base name.
func (n *FsNode) Name() []byte { return n.name }

// Parent returns the entry's parent FsNode, or nil at the root.
func (n *FsNode) Parent() *FsNode { return n.parent }

// Arena is a lock-free, append-only allocator of [FsNode] values.
//
// Push is a CAS loop over a singly-linked stack: each allocation is one
// heap-allocated node whose previous pointer is set to the current tail
// before the tail is swung to point at it. This is the algorithm
// spec.md §4.1 describes, realized directly rather than via a batching
// slab, because a [Result] must be able to hold a bare pointer into the
// arena for the whole lifetime of a search — there is no reclamation, ever,
// short of the whole arena becoming unreachable.
//
// The zero value is a ready-to-use, empty Arena.
type Arena struct {
	tail atomic.Pointer[FsNode]
}

// Allocate reserves a new, unpublished FsNode. The caller must populate
// Name and Parent (via Publish) before any other goroutine can observe the
// node; until Publish is called the node is not linked into the arena and
// is safe to mutate freely from the allocating goroutine.
func (a *Arena) Allocate(name []byte, parent *FsNode) *FsNode {
	// Copy the name: callers pass slices that may point into a reusable
	// readdir buffer.
	owned := make([]byte, len(name))
	copy(owned, name)

	return &FsNode{name: owned, parent: parent}
}

// Publish makes node visible to any goroutine that later walks the arena's
// chain (path reconstruction never actually walks the chain itself — it
// walks node.parent — but Publish is still what makes a freshly allocated
// node part of the arena's reachable set for as long as the Arena is
// reachable, and gives the release/acquire pairing spec.md §5 requires: the
// name and parent fields above are written before the CAS below is
// attempted, and the CAS's release ordering on success ensures a consumer
// that later loads a.tail with acquire ordering observes those writes).
func (a *Arena) Publish(node *FsNode) {
	for {
		old := a.tail.Load()
		node.previous = old

		if a.tail.CompareAndSwap(old, node) {
			return
		}
	}
}

// New allocates and immediately publishes a node in one call — the common
// case for traversal servicing, where a node's fields are fully known at
// allocation time.
func (a *Arena) New(name []byte, parent *FsNode) *FsNode {
	node := a.Allocate(name, parent)
	a.Publish(node)

	return node
}

// Destroy releases the arena's reference to its node chain. It must not be
// called while any worker holds an outstanding *FsNode it intends to
// dereference later — in practice that means after Scheduler.Wait returns
// and every Result has been drained. Go's garbage collector reclaims the
// chain once nothing (no Result, no in-flight path reconstruction) still
// references any node in it; Destroy exists to make that moment explicit
// and to match the spec's "destroyed only with the arena at shutdown"
// lifecycle rather than to perform manual bookkeeping.
func (a *Arena) Destroy() {
	a.tail.Store(nil)
}
