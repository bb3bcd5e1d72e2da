// Package metrics defines the process-wide Prometheus collectors shared by
// the Riot client, harvest pipeline and prediction handlers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_upstream_requests_total",
		Help: "Total number of requests issued to the Riot API, by endpoint",
	}, []string{"endpoint"})

	UpstreamRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_upstream_rate_limited_total",
		Help: "Total number of 429 responses received from the Riot API",
	})

	UpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_upstream_errors_total",
		Help: "Total number of non-2xx, non-429 responses from the Riot API",
	})

	MatchesHarvested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_matches_harvested_total",
		Help: "Total number of matches that passed validation during harvesting",
	})

	MatchesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_matches_skipped_total",
		Help: "Total number of matches skipped during harvesting, by reason",
	}, []string{"reason"})

	PredictionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_predictions_total",
		Help: "Total number of live-game win probabilities served",
	})
)
