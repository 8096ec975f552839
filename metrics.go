package recipeshelf

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var syncFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "recipeshelf",
		Name:      "sync_failures_total",
		Help:      "Sync operations that returned an error.",
	},
	[]string{"op"},
)
