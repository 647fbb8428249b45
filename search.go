package rabbitsearch

// Search opens root as a directory, constructs a [Scheduler] over needle,
// submits the initial traversal job, and starts the worker pool. It
// returns immediately; the caller drains results with
// [Scheduler.TryNextResult] while [Scheduler.IsBusy] is true, then once
// more after it goes false, and finally calls [Scheduler.Wait] followed by
// [Scheduler.Close].
//
// This is the entry point cmd/rbs uses; it exists as a package-level
// convenience so a caller embedding this package as a library does not
// need to know about the platform-specific dirHandle backends.
func Search(root string, needle []byte, opts ...Option) (*Scheduler, error) {
	dh, err := openRootDir(root)
	if err != nil {
		return nil, &IOError{Path: root, Op: "open", Err: err}
	}

	sched := NewScheduler(needle, opts...)
	sched.Submit(dh)
	sched.Run()

	return sched, nil
}
