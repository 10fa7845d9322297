package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/metrics"
	"github.com/shenikar/geo_incident_consensus/internal/models"
)

// ActiveCounter источник числа открытых инцидентов
type ActiveCounter interface {
	CountActiveBySeverity(ctx context.Context) ([]models.SeverityCount, error)
}

// Scheduler периодические фоновые задачи сервиса
type Scheduler struct {
	c       *cron.Cron
	logger  *logrus.Logger
	timeout time.Duration
}

func New(logger *logrus.Logger, timeout time.Duration) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	return &Scheduler{c: c, logger: logger, timeout: timeout}
}

// AddActiveIncidentsRefresh обновляет датчик incidents_active по расписанию schedule
func (s *Scheduler) AddActiveIncidentsRefresh(schedule string, counter ActiveCounter) error {
	if _, err := s.c.AddFunc(schedule, func() { s.RefreshActiveIncidents(context.Background(), counter) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return nil
}

// RefreshActiveIncidents один прогон обновления датчика
func (s *Scheduler) RefreshActiveIncidents(ctx context.Context, counter ActiveCounter) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	counts, err := counter.CountActiveBySeverity(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to refresh active incidents gauge")
		return
	}
	metrics.SetActiveIncidents(counts)
	s.logger.WithField("groups", len(counts)).Debug("Active incidents gauge refreshed")
}

func (s *Scheduler) Start() { s.c.Start() }

// Stop ждёт завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
}
