package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/metrics"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/severity"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

// SubmitReport относит отчёт к существующему инциденту поблизости или создаёт новый.
// Поиск кандидата и запись выполняются в одной SERIALIZABLE транзакции.
func (s *incidentService) SubmitReport(ctx context.Context, sub models.ReportSubmission) (*models.SubmitOutcome, error) {
	log := s.log("SubmitReport", logrus.Fields{
		"reporter_id": sub.ReporterID,
		"category":    sub.Category,
	})
	log.Info("Attempting to submit a report")

	if err := validateSubmission(&sub); err != nil {
		log.WithError(err).Warn("Report rejected by validation")
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now().UTC()
	level := s.classifier.Classify(sub.Description, sub.Category)
	point := geo.Point{Latitude: sub.Latitude, Longitude: sub.Longitude}

	var outcome models.SubmitOutcome
	err := s.repo.WithinSerializableTx(ctx, func(ctx context.Context) error {
		outcome = models.SubmitOutcome{}

		candidates, err := s.repo.FindMergeCandidates(ctx, sub.Category, now.Add(-s.cfg.MergeWindow))
		if err != nil {
			return err
		}

		report := &models.Report{
			ReporterID:  sub.ReporterID,
			Description: sub.Description,
			Severity:    level,
			MediaRef:    sub.MediaRef,
			CreatedAt:   now,
		}

		target := pickMergeTarget(candidates, point, s.cfg.MergeRadiusMeters)
		if target == nil {
			incident := &models.Incident{
				Category:      sub.Category,
				Description:   sub.Description,
				Latitude:      sub.Latitude,
				Longitude:     sub.Longitude,
				Severity:      level,
				SeverityColor: level.Color(),
				Status:        models.StatusUnverified,
				CreatedBy:     sub.ReporterID,
				CreatedAt:     now,
			}
			if err := s.repo.CreateIncident(ctx, incident); err != nil {
				return err
			}
			report.IncidentID = incident.ID
			if err := s.repo.CreateReport(ctx, report); err != nil {
				return err
			}
			outcome = models.SubmitOutcome{
				IncidentID:    incident.ID,
				ReportID:      report.ID,
				Severity:      level,
				SeverityColor: level.Color(),
				Status:        incident.Status,
				IsNew:         true,
			}
			return nil
		}

		report.IncidentID = target.ID
		if err := s.repo.CreateReport(ctx, report); err != nil {
			return err
		}

		// только повышение: более лёгкий отчёт не понижает тяжесть инцидента
		current := severity.Max(target.Severity, level)
		escalated := current != target.Severity
		if escalated {
			if err := s.repo.EscalateSeverity(ctx, target.ID, current); err != nil {
				return err
			}
		}

		outcome = models.SubmitOutcome{
			IncidentID:    target.ID,
			ReportID:      report.ID,
			Severity:      current,
			SeverityColor: current.Color(),
			Status:        target.Status,
			Escalated:     escalated,
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to consolidate report")
		return nil, fmt.Errorf("service: could not submit report: %w", err)
	}

	log = log.WithFields(logrus.Fields{
		"incident_id": outcome.IncidentID,
		"is_new":      outcome.IsNew,
		"severity":    outcome.Severity,
	})

	event := &webhook.IncidentEvent{
		Type:     webhook.EventIncidentMerged,
		Category: sub.Category,
		Severity: outcome.Severity,
		Status:   outcome.Status,
	}
	switch {
	case outcome.IsNew:
		event.Type = webhook.EventIncidentCreated
	case outcome.Escalated:
		event.Type = webhook.EventIncidentEscalated
	}
	s.afterChange(ctx, log, outcome.IncidentID, event)
	metrics.ObserveReport(&outcome, sub.Category)

	log.Info("Report consolidated successfully")
	return &outcome, nil
}

// pickMergeTarget ближайший кандидат в радиусе; при равенстве раньше созданный, затем меньший id
func pickMergeTarget(candidates []*models.Incident, point geo.Point, radius float64) *models.Incident {
	var (
		best     *models.Incident
		bestDist float64
	)
	for _, c := range candidates {
		if c.Status.IsClosed() {
			continue
		}
		d := geo.Distance(point, geo.Point{Latitude: c.Latitude, Longitude: c.Longitude})
		if d > radius {
			continue
		}
		if best == nil || d < bestDist ||
			(d == bestDist && (c.CreatedAt.Before(best.CreatedAt) ||
				(c.CreatedAt.Equal(best.CreatedAt) && c.ID < best.ID))) {
			best, bestDist = c, d
		}
	}
	return best
}

func validateSubmission(sub *models.ReportSubmission) error {
	sub.Description = strings.TrimSpace(sub.Description)
	switch {
	case sub.ReporterID <= 0:
		return apperror.Validation("reporter_id is required")
	case sub.Category == "":
		return apperror.Validation("category is required")
	case !sub.Category.Valid():
		return apperror.Validation("unknown category %q", sub.Category)
	case sub.Description == "":
		return apperror.Validation("description is required")
	case !(geo.Point{Latitude: sub.Latitude, Longitude: sub.Longitude}).Valid():
		return apperror.Validation("coordinates are out of range")
	}
	return nil
}
