package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches by outcome and match stage",
		},
		[]string{"status", "stage"}, // ok|no_query|no_match, direct|fuzzy|none
	)

	searchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Match-and-rank duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	imageFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_fetches_total",
			Help:      "Remote image fetches by result",
		},
		[]string{"result"}, // ok|error
	)

	imageCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_cache_total",
			Help:      "Image cache hits and misses",
		},
		[]string{"result"}, // hit|miss
	)
)

// ObserveSearch records one search outcome.
func ObserveSearch(status string, fuzzy bool, results int, elapsed time.Duration) {
	stage := "none"
	switch {
	case status != "ok":
	case fuzzy:
		stage = "fuzzy"
	default:
		stage = "direct"
	}
	searchesTotal.WithLabelValues(status, stage).Inc()
	searchDuration.Observe(elapsed.Seconds())
	searchResults.Observe(float64(results))
}

// ObserveImageFetch records a remote fetch; err nil means success.
func ObserveImageFetch(err error) {
	if err != nil {
		imageFetchesTotal.WithLabelValues("error").Inc()
		return
	}
	imageFetchesTotal.WithLabelValues("ok").Inc()
}

// ObserveImageCache records a cache lookup.
func ObserveImageCache(hit bool) {
	if hit {
		imageCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	imageCacheTotal.WithLabelValues("miss").Inc()
}
