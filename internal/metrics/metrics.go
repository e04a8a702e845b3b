package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venturelens_reports_computed_total",
			Help: "Feasibility reports computed, by verdict band",
		},
		[]string{"verdict"},
	)

	EnvScoresComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venturelens_environment_scores_computed_total",
			Help: "Environment scores computed, by verdict band",
		},
		[]string{"verdict"},
	)

	ReportsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "venturelens_reports_saved_total",
			Help: "Reports saved to user dashboards",
		},
	)

	ReportExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venturelens_report_exports_total",
			Help: "Report exports generated, by format",
		},
		[]string{"format"},
	)

	FeedbackReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "venturelens_feedback_received_total",
			Help: "Feedback entries received",
		},
	)
)
