package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

func TestObserveReport(t *testing.T) {
	before := testutil.ToFloat64(reportsTotal.WithLabelValues("fire", "merged"))
	beforeEsc := testutil.ToFloat64(escalationsTotal.WithLabelValues("fire", "critical"))

	ObserveReport(&models.SubmitOutcome{IsNew: false, Escalated: true, Severity: models.SeverityCritical}, models.CategoryFire)

	assert.Equal(t, before+1, testutil.ToFloat64(reportsTotal.WithLabelValues("fire", "merged")))
	assert.Equal(t, beforeEsc+1, testutil.ToFloat64(escalationsTotal.WithLabelValues("fire", "critical")))
}

func TestSetActiveIncidents(t *testing.T) {
	SetActiveIncidents([]models.SeverityCount{
		{Category: models.CategoryFire, Severity: models.SeverityCritical, Count: 3},
		{Category: models.CategoryCrime, Severity: models.SeveritySerious, Count: 1},
	})
	assert.Equal(t, 3.0, testutil.ToFloat64(activeIncidents.WithLabelValues("fire", "critical")))
	assert.Equal(t, 2, testutil.CollectAndCount(activeIncidents))

	SetActiveIncidents(nil)
	assert.Equal(t, 0, testutil.CollectAndCount(activeIncidents))
}
