package rabbitsearch

import (
	"errors"
	"io"
)

// chunkedReadSize is the buffer size used by the chunked-read fallback.
// Chosen to be a few pages, matching the teacher's defaultReadBufSize-class
// heuristics (fileproc uses 512B/32KiB tiers for similar reasons).
const chunkedReadSize = 256 * 1024

// serviceSearchFileChunked implements the SPEC_FULL.md §12.2 fallback:
// stream the file in fixed-size chunks, each chunk re-scanned together with
// an overlap window equal to len(needle)-1 bytes carried over from the
// previous chunk, so a needle occurrence straddling a chunk boundary is
// never missed. It is used when mmap fails or the file exceeds
// maxMappableSize.
func (w *Worker) serviceSearchFileChunked(j searchFileJob, size int64) bool {
	overlap := 0
	if n := len(w.sched.needle); n > 1 {
		overlap = n - 1
	}

	buf := make([]byte, chunkedReadSize+overlap)
	carry := 0
	fileOff := 0

	for fileOff < int(size) {
		n, err := j.fh.readAt(buf[carry:], fileOff)
		if n == 0 {
			if err != nil && !isEOF(err) {
				w.sched.logger.Warnf("read %s: %v", PathString(j.node), err)
			}

			return false
		}

		fileOff += n

		window := buf[:carry+n]
		if Find(window, w.sched.needle) {
			metricsFileMatched()
			w.sched.emitResult(j.node)
			return true
		}

		if fileOff >= int(size) {
			return false
		}

		// Carry the trailing `overlap` bytes into the next read so a
		// match spanning the boundary is not missed.
		copy(buf[:overlap], window[len(window)-overlap:])
		carry = overlap
	}

	return false
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
