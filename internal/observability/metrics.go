package observability

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeDegraded = "degraded"
)

var (
	// ExternalCalls counts calls to third-party providers by outcome
	ExternalCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketing_external_calls_total",
			Help: "Total calls to external providers",
		},
		[]string{"provider", "operation", "outcome"},
	)

	// ExternalCallDuration records provider latency in seconds
	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketing_external_call_duration_seconds",
			Help:    "Latency of external provider calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "operation"},
	)

	// AnalysisRuns counts orchestrator runs per analysis kind
	AnalysisRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketing_analysis_runs_total",
			Help: "Total analysis runs by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// DegradedMetrics counts runs whose SEO metrics fell back to unknown values
	DegradedMetrics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketing_metrics_degraded_total",
			Help: "Total analysis runs that continued without provider SEO metrics",
		},
		[]string{"kind"},
	)
)

// ObserveExternalCall records one provider call.
func ObserveExternalCall(provider, operation, outcome string, started time.Time) {
	ExternalCalls.WithLabelValues(provider, operation, outcome).Inc()
	ExternalCallDuration.WithLabelValues(provider, operation).Observe(time.Since(started).Seconds())
}

// ObserveAnalysisRun records the outcome of one orchestrator run.
func ObserveAnalysisRun(kind string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	AnalysisRuns.WithLabelValues(kind, outcome).Inc()
}

// ObserveDegradedMetrics records one run that fell back to unknown SEO metrics.
func ObserveDegradedMetrics(kind string) {
	DegradedMetrics.WithLabelValues(kind).Inc()
	AnalysisRuns.WithLabelValues(kind, OutcomeDegraded).Inc()
}

// MetricsHandler exposes the default registry for scraping.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// MetricsAuth only lets through requests carrying "Bearer <token>".
func MetricsAuth(token string) gin.HandlerFunc {
	expected := []byte(token)
	return func(c *gin.Context) {
		provided, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
