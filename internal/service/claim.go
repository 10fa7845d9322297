package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/metrics"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
)

// Claim закрепляет инцидент за ответчиком одной условной записью в хранилище.
// Занятый другим ответчиком инцидент даёт false без ошибки.
func (s *incidentService) Claim(ctx context.Context, incidentID, responderID int64) (bool, error) {
	log := s.log("Claim", logrus.Fields{
		"incident_id":  incidentID,
		"responder_id": responderID,
	})
	log.Info("Attempting to claim incident")

	if incidentID <= 0 || responderID <= 0 {
		return false, apperror.Validation("incident_id and responder_id are required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.participants.GetResponder(ctx, responderID); err != nil {
		log.WithError(err).Warn("Claim by unknown responder")
		return false, fmt.Errorf("service: could not claim incident: %w", err)
	}

	granted, err := s.repo.ClaimIncident(ctx, incidentID, responderID, s.now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to claim incident")
		return false, fmt.Errorf("service: could not claim incident: %w", err)
	}
	metrics.ObserveClaim(granted)

	if !granted {
		log.Warn("Incident already claimed by another responder")
		return false, nil
	}

	s.afterChange(ctx, log, incidentID, &webhook.IncidentEvent{
		Type:        webhook.EventIncidentClaimed,
		ResponderID: &responderID,
	})
	log.Info("Incident claimed successfully")
	return true, nil
}

// SetStatus выставляет статус жизненного цикла; resolved_at есть только у resolved
func (s *incidentService) SetStatus(ctx context.Context, incidentID int64, status models.Status) error {
	log := s.log("SetStatus", logrus.Fields{"incident_id": incidentID, "status": status})
	log.Info("Attempting to set incident status")

	if !status.ResponderSettable() {
		return apperror.Validation("status must be one of in_progress, resolved, false")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var resolvedAt *time.Time
	if status == models.StatusResolved {
		t := s.now().UTC()
		resolvedAt = &t
	}

	if err := s.repo.SetStatus(ctx, incidentID, status, resolvedAt); err != nil {
		log.WithError(err).Error("Failed to set incident status")
		return fmt.Errorf("service: could not set status: %w", err)
	}

	s.afterChange(ctx, log, incidentID, &webhook.IncidentEvent{Type: webhook.EventStatusChanged, Status: status})
	log.Info("Incident status updated successfully")
	return nil
}

func (s *incidentService) SetPriority(ctx context.Context, incidentID int64, priority models.Priority) error {
	log := s.log("SetPriority", logrus.Fields{"incident_id": incidentID, "priority": priority})
	log.Info("Attempting to set incident priority")

	if !priority.Valid() {
		return apperror.Validation("priority must be one of low, medium, high, critical")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.SetPriority(ctx, incidentID, priority); err != nil {
		log.WithError(err).Error("Failed to set incident priority")
		return fmt.Errorf("service: could not set priority: %w", err)
	}

	s.afterChange(ctx, log, incidentID, nil)
	log.Info("Incident priority updated successfully")
	return nil
}

// UpdateResponderNote заметка и ETA для заявителя; пустые поля не затирают прежние значения
func (s *incidentService) UpdateResponderNote(ctx context.Context, incidentID int64, note, eta *string) error {
	log := s.log("UpdateResponderNote", logrus.Fields{"incident_id": incidentID})
	log.Info("Attempting to update responder note")

	note, eta = trimmedOrNil(note), trimmedOrNil(eta)
	if note == nil && eta == nil {
		return apperror.Validation("note or eta is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.SetResponderUpdate(ctx, incidentID, note, eta); err != nil {
		log.WithError(err).Error("Failed to update responder note")
		return fmt.Errorf("service: could not update responder note: %w", err)
	}

	s.afterChange(ctx, log, incidentID, nil)
	log.Info("Responder note updated successfully")
	return nil
}

// AppendNote добавляет сообщение в журнал инцидента; записи не редактируются
func (s *incidentService) AppendNote(ctx context.Context, note *models.Note) error {
	log := s.log("AppendNote", logrus.Fields{
		"incident_id": note.IncidentID,
		"sender_type": note.SenderType,
		"sender_id":   note.SenderID,
	})
	log.Info("Attempting to append note")

	note.Message = strings.TrimSpace(note.Message)
	switch {
	case !note.SenderType.Valid():
		return apperror.Validation("sender_type must be responder or reporter")
	case note.SenderID <= 0:
		return apperror.Validation("sender_id is required")
	case note.Message == "":
		return apperror.Validation("message is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var err error
	if note.SenderType == models.SenderResponder {
		_, err = s.participants.GetResponder(ctx, note.SenderID)
	} else {
		_, err = s.participants.GetUser(ctx, note.SenderID)
	}
	if err != nil {
		log.WithError(err).Warn("Note from unknown sender")
		return fmt.Errorf("service: could not append note: %w", err)
	}

	note.CreatedAt = s.now().UTC()
	if err := s.repo.CreateNote(ctx, note); err != nil {
		log.WithError(err).Error("Failed to append note")
		return fmt.Errorf("service: could not append note: %w", err)
	}

	log.WithField("note_id", note.ID).Info("Note appended successfully")
	return nil
}

// ListNotes журнал инцидента в порядке добавления
func (s *incidentService) ListNotes(ctx context.Context, incidentID int64) ([]*models.Note, error) {
	log := s.log("ListNotes", logrus.Fields{"incident_id": incidentID})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.repo.GetIncident(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to get incident for notes")
		return nil, fmt.Errorf("service: could not list notes: %w", err)
	}

	notes, err := s.repo.ListNotes(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list notes")
		return nil, fmt.Errorf("service: could not list notes: %w", err)
	}
	return notes, nil
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
