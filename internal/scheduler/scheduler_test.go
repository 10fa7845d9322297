package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

type counterFunc func(ctx context.Context) ([]models.SeverityCount, error)

func (f counterFunc) CountActiveBySeverity(ctx context.Context) ([]models.SeverityCount, error) {
	return f(ctx)
}

func newTestScheduler() *Scheduler {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return New(l, time.Second)
}

func TestAddActiveIncidentsRefresh_InvalidSpec(t *testing.T) {
	s := newTestScheduler()
	err := s.AddActiveIncidentsRefresh("every now and then", counterFunc(nil))
	assert.Error(t, err)
}

func TestRefreshActiveIncidents(t *testing.T) {
	s := newTestScheduler()

	var deadlineSet bool
	s.RefreshActiveIncidents(context.Background(), counterFunc(func(ctx context.Context) ([]models.SeverityCount, error) {
		_, deadlineSet = ctx.Deadline()
		return []models.SeverityCount{{Category: models.CategoryFire, Severity: models.SeverityCritical, Count: 1}}, nil
	}))
	assert.True(t, deadlineSet)

	// ошибка источника не паникует и не сбрасывает датчик
	s.RefreshActiveIncidents(context.Background(), counterFunc(func(context.Context) ([]models.SeverityCount, error) {
		return nil, errors.New("db down")
	}))
}

func TestScheduler_StartStop(t *testing.T) {
	s := newTestScheduler()
	assert.NoError(t, s.AddActiveIncidentsRefresh("@every 1h", counterFunc(func(context.Context) ([]models.SeverityCount, error) {
		return nil, nil
	})))
	s.Start()
	s.Stop()
}
