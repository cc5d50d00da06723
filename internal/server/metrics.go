package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_analyses_total",
			Help: "Total number of contract analyses persisted, by tier.",
		},
		[]string{"tier"},
	)
	degradedAnalysesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contract_analyses_degraded_total",
			Help: "Total number of analyses that fell back to the salvage path.",
		},
	)
	rejectedUploadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contract_uploads_rejected_total",
			Help: "Total number of uploads rejected before analysis.",
		},
	)
)

func init() {
	prometheus.MustRegister(analysesTotal, degradedAnalysesTotal, rejectedUploadsTotal)
}
