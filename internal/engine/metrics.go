package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the service.
var metrics struct {
	MatchRequests       atomic.Int64
	SimilarityRequests  atomic.Int64
	RankRequests        atomic.Int64
	ExtractRequests     atomic.Int64
	ExtractErrors       atomic.Int64
	JobWrites           atomic.Int64
	ProfileWrites       atomic.Int64
	ApplicationWrites   atomic.Int64
	CacheHits           atomic.Int64
	CacheMisses         atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"match_requests":      metrics.MatchRequests.Load(),
		"similarity_requests": metrics.SimilarityRequests.Load(),
		"rank_requests":       metrics.RankRequests.Load(),
		"extract_requests":    metrics.ExtractRequests.Load(),
		"extract_errors":      metrics.ExtractErrors.Load(),
		"job_writes":          metrics.JobWrites.Load(),
		"profile_writes":      metrics.ProfileWrites.Load(),
		"application_writes":  metrics.ApplicationWrites.Load(),
		"cache_hits":          metrics.CacheHits.Load(),
		"cache_misses":        metrics.CacheMisses.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"match_requests", "similarity_requests", "rank_requests",
		"extract_requests", "extract_errors",
		"job_writes", "profile_writes", "application_writes",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sub-packages.
func IncrMatchRequests()      { metrics.MatchRequests.Add(1) }
func IncrSimilarityRequests() { metrics.SimilarityRequests.Add(1) }
func IncrRankRequests()       { metrics.RankRequests.Add(1) }
func IncrExtractRequests()    { metrics.ExtractRequests.Add(1) }
func IncrExtractErrors()      { metrics.ExtractErrors.Add(1) }
func IncrJobWrites()          { metrics.JobWrites.Add(1) }
func IncrProfileWrites()      { metrics.ProfileWrites.Add(1) }
func IncrApplicationWrites()  { metrics.ApplicationWrites.Add(1) }
func IncrCacheHits()          { metrics.CacheHits.Add(1) }
func IncrCacheMisses()        { metrics.CacheMisses.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
