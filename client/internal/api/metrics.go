package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pujadesk_client",
			Name:      "requests_total",
			Help:      "Completed HTTP requests by method and status class.",
		},
		[]string{"method", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pujadesk_client",
			Name:      "request_failures_total",
			Help:      "Failed HTTP requests by notice kind.",
		},
		[]string{"kind"},
	)
)
