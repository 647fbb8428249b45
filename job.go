package rabbitsearch

// jobKind discriminates the two Job shapes. A job owns the OS resource it
// names; servicing a job releases that resource exactly once (spec
// invariant I4).
type jobKind uint8

const (
	jobTraverseDirectory jobKind = iota
	jobSearchFile
)

// traverseDirectoryJob is the obligation to enumerate dh, closing it on
// completion. parent is the FsNode representing this directory; nil only at
// the search root.
type traverseDirectoryJob struct {
	parent *FsNode
	dh     dirHandle
}

// searchFileJob is the obligation to scan fd's content for the needle and
// close fd when done.
type searchFileJob struct {
	node *FsNode
	fh   fileHandle
}

// job is the tagged variant over the two job shapes described in spec.md
// §4.3. It is a small, trivially copyable value: it holds only handles and
// pointers, never the resource itself, so ownership of the underlying OS
// resource transfers by value-copy of the job into a queue.
type job struct {
	kind     jobKind
	traverse traverseDirectoryJob
	search   searchFileJob
}

func traverseJob(parent *FsNode, dh dirHandle) job {
	return job{kind: jobTraverseDirectory, traverse: traverseDirectoryJob{parent: parent, dh: dh}}
}

func searchJob(node *FsNode, fh fileHandle) job {
	return job{kind: jobSearchFile, search: searchFileJob{node: node, fh: fh}}
}

// result is a non-owning reference to an FsNode whose file matched. Because
// the arena outlives all workers and the result consumer, the reference is
// safe for the whole search lifetime (invariant I1).
type result struct {
	node *FsNode
}

// Result is the publicly visible form of result, returned by
// [Scheduler.TryNextResult].
type Result struct {
	Node *FsNode
}
