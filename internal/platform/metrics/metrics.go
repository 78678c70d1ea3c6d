package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestLatency      *prometheus.HistogramVec
	ScreeningsStarted   prometheus.Counter
	WorkflowTransitions *prometheus.CounterVec
	TransitionsRejected *prometheus.CounterVec
	EnhancedDDTriggered prometheus.Counter
	ShipmentEscalations prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "complyd_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		ScreeningsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "complyd_screenings_started_total",
			Help: "Total number of screening records created",
		}),
		WorkflowTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_workflow_transitions_total",
			Help: "Workflow transitions by target state",
		}, []string{"target"}),
		TransitionsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_workflow_transitions_rejected_total",
			Help: "Rejected workflow transitions by reason code",
		}, []string{"code"}),
		EnhancedDDTriggered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "complyd_enhanced_dd_triggered_total",
			Help: "Times enhanced due diligence became required",
		}),
		ShipmentEscalations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "complyd_shipment_escalations_total",
			Help: "Shipment recomputes that crossed the escalation threshold",
		}),
	}
}
