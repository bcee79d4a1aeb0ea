package engine

import (
	"log/slog"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests atomic.Int64
	SearchErrors   atomic.Int64
	VideosScanned  atomic.Int64
}

// IncrSearchRequest increments the search request counter.
func IncrSearchRequest() { metrics.SearchRequests.Add(1) }

// IncrSearchError increments the failed-search counter.
func IncrSearchError() { metrics.SearchErrors.Add(1) }

// AddVideosScanned adds n to the scanned-candidates counter.
func AddVideosScanned(n int) { metrics.VideosScanned.Add(int64(n)) }

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"search_requests": metrics.SearchRequests.Load(),
		"search_errors":   metrics.SearchErrors.Load(),
		"videos_scanned":  metrics.VideosScanned.Load(),
	}
}

// LogMetrics writes the run counters to the structured log.
func LogMetrics() {
	m := GetMetrics()
	slog.Info("run metrics",
		slog.Int64("search_requests", m["search_requests"]),
		slog.Int64("search_errors", m["search_errors"]),
		slog.Int64("videos_scanned", m["videos_scanned"]),
	)
}
