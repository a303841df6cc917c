package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ParcelsByStatus is refreshed periodically by the status metrics task.
var ParcelsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "parcels_by_status",
		Help: "Number of parcels per lifecycle status",
	},
	[]string{"status"},
)
