package appstate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "pujadesk_ui",
		Name:      "notifications_total",
		Help:      "Notifications pushed to the UI store by type.",
	},
	[]string{"type"},
)
