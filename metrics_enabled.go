//go:build rabbitsearch_metrics

package rabbitsearch

import "sync/atomic"

var (
	metricJobsSubmitted      atomic.Int64
	metricJobsCompleted      atomic.Int64
	metricDirectoriesVisited atomic.Int64
	metricFilesScanned       atomic.Int64
	metricFilesMatched       atomic.Int64
	metricBytesScanned       atomic.Int64
)

func currentMetrics() Metrics {
	return Metrics{
		JobsSubmitted:      metricJobsSubmitted.Load(),
		JobsCompleted:      metricJobsCompleted.Load(),
		DirectoriesVisited: metricDirectoriesVisited.Load(),
		FilesScanned:       metricFilesScanned.Load(),
		FilesMatched:       metricFilesMatched.Load(),
		BytesScanned:       metricBytesScanned.Load(),
	}
}

func metricsJobSubmitted()     { metricJobsSubmitted.Add(1) }
func metricsJobCompleted()     { metricJobsCompleted.Add(1) }
func metricsDirectoryVisited() { metricDirectoriesVisited.Add(1) }

func metricsFileScanned(size int64) {
	metricFilesScanned.Add(1)
	metricBytesScanned.Add(size)
}

func metricsFileMatched() { metricFilesMatched.Add(1) }
