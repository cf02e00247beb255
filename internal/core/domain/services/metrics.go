package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeMatched      = "matched"
	outcomeNoRoute      = "no_route"
	outcomeRemoteFailed = "remote_failed"
	outcomeStoreFailed  = "store_failed"
	outcomeInvalidInput = "invalid_input"
)

var (
	// RoutingResolutionsTotal counts resolutions by outcome and by the fallback
	// step that decided them.
	RoutingResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_resolutions_total",
			Help: "Total number of action resolutions",
		},
		[]string{"outcome", "step"},
	)

	// RoutingGatewayCallsTotal counts parent lookups against the location service.
	RoutingGatewayCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_gateway_calls_total",
			Help: "Total number of location group parent lookups",
		},
		[]string{"result"},
	)

	// RoutingResolutionDuration tracks end-to-end resolution latency.
	RoutingResolutionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routing_resolution_duration_seconds",
			Help:    "Duration of action resolutions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(RoutingResolutionsTotal)
	prometheus.MustRegister(RoutingGatewayCallsTotal)
	prometheus.MustRegister(RoutingResolutionDuration)
}
