package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

var (
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_reports_total",
		Help: "Reports accepted by the consolidation engine",
	}, []string{"category", "outcome"})

	escalationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_severity_escalations_total",
		Help: "Severity escalations caused by merged reports",
	}, []string{"category", "severity"})

	votesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_votes_total",
		Help: "Verification votes by choice and result",
	}, []string{"choice", "result"})

	claimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_claims_total",
		Help: "Responder claim attempts",
	}, []string{"result"})

	webhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_webhook_deliveries_total",
		Help: "Webhook delivery results",
	}, []string{"result"})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})

	activeIncidents = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "incidents_active",
		Help: "Open incidents by category and severity",
	}, []string{"category", "severity"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func ObserveReport(outcome *models.SubmitOutcome, category models.Category) {
	kind := "merged"
	if outcome.IsNew {
		kind = "new"
	}
	reportsTotal.WithLabelValues(string(category), kind).Inc()
	if outcome.Escalated {
		escalationsTotal.WithLabelValues(string(category), string(outcome.Severity)).Inc()
	}
}

func ObserveVote(choice models.Choice, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "duplicate"
	}
	votesTotal.WithLabelValues(string(choice), result).Inc()
}

func ObserveClaim(granted bool) {
	result := "granted"
	if !granted {
		result = "denied"
	}
	claimsTotal.WithLabelValues(result).Inc()
}

// ObserveWebhook подходит как колбэк webhook.Worker
func ObserveWebhook(delivered bool) {
	result := "delivered"
	if !delivered {
		result = "failed"
	}
	webhookDeliveries.WithLabelValues(result).Inc()
}

func ObserveRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}

// SetActiveIncidents заменяет значения датчика целиком
func SetActiveIncidents(counts []models.SeverityCount) {
	activeIncidents.Reset()
	for _, c := range counts {
		activeIncidents.WithLabelValues(string(c.Category), string(c.Severity)).Set(float64(c.Count))
	}
}

// GinMiddleware длительность запросов по шаблону маршрута
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
