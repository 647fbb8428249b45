package rabbitsearch

import (
	"golang.org/x/sys/unix"
)

// maxMappableSize bounds how large a file this worker will attempt to
// mmap before preferring the chunked-read fallback (SPEC_FULL.md §12.2).
// It is deliberately generous — mmap is cheap even for large files on a
// 64-bit address space — and exists mainly to bound worst-case address
// space commitment when many large files are open concurrently.
const maxMappableSize = 4 << 30 // 4 GiB

// serviceSearchFile implements spec.md §4.5's "Servicing SearchFile" step:
// fstat, skip zero-length files, mmap read-only private, scan, and always
// unmap/close/decrement regardless of match outcome.
//
// It returns whether the file matched. Any I/O failure is logged and
// treated as no-match, per the error taxonomy in spec.md §7.
func (w *Worker) serviceSearchFile(j searchFileJob) bool {
	defer func() {
		_ = j.fh.close()
		w.sched.filesOpen.Add(-1)
		metricsJobCompleted()
	}()

	size, err := j.fh.size()
	if err != nil {
		w.sched.logger.Warnf("fstat %s: %v", PathString(j.node), err)
		return false
	}

	if size == 0 {
		return false
	}

	metricsFileScanned(size)

	if size > maxMappableSize {
		return w.serviceSearchFileChunked(j, size)
	}

	data, err := unix.Mmap(int(j.fh.fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		w.sched.logger.Warnf("mmap %s: %v", PathString(j.node), err)
		return w.serviceSearchFileChunked(j, size)
	}

	defer func() { _ = unix.Munmap(data) }()

	matched := Find(data, w.sched.needle)
	if matched {
		metricsFileMatched()
		w.sched.emitResult(j.node)
	}

	return matched
}
