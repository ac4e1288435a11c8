package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var retriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "pujadesk_client",
		Name:      "retries_total",
		Help:      "Attempts re-issued by the Retry helper.",
	},
)
