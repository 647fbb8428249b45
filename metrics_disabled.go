//go:build !rabbitsearch_metrics

package rabbitsearch

func currentMetrics() Metrics { return Metrics{} }

func metricsJobSubmitted()          {}
func metricsJobCompleted()          {}
func metricsDirectoryVisited()      {}
func metricsFileScanned(size int64) { _ = size }
func metricsFileMatched()           {}
