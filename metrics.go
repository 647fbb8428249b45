package rabbitsearch

import "fmt"

// Metrics is the opt-in counter set from SPEC_FULL.md §12.3, adapted from
// original_source/src/job_q.c's RABBITSEARCH_METRICS_ENABLE-gated
// num_submitted counter. Outside a binary built with -tags
// rabbitsearch_metrics every field stays zero: metrics_disabled.go's
// no-op increment functions make that the zero-overhead default, mirroring
// the teacher's iohooks.go/iohooks_stub.go build-tag pair.
type Metrics struct {
	JobsSubmitted      int64
	JobsCompleted      int64
	DirectoriesVisited int64
	FilesScanned       int64
	FilesMatched       int64
	BytesScanned       int64
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"submitted=%d completed=%d dirs=%d files=%d matched=%d bytes=%d",
		m.JobsSubmitted, m.JobsCompleted, m.DirectoriesVisited, m.FilesScanned, m.FilesMatched, m.BytesScanned,
	)
}

// Metrics returns a snapshot of the process-global counters. Meaningful
// only in binaries built with -tags rabbitsearch_metrics; otherwise every
// field is zero.
func (s *Scheduler) Metrics() Metrics {
	return currentMetrics()
}
