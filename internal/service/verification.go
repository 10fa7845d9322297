package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/metrics"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
)

// CastVote записывает голос и заново выводит статус доверия из всех голосов инцидента.
// Статус переписывается, только пока инцидент находится в состоянии доверия.
func (s *incidentService) CastVote(ctx context.Context, incidentID, voterID int64, choice models.Choice) (*models.VoteOutcome, error) {
	log := s.log("CastVote", logrus.Fields{
		"incident_id": incidentID,
		"voter_id":    voterID,
		"choice":      choice,
	})
	log.Info("Attempting to cast a vote")

	switch {
	case incidentID <= 0:
		return nil, apperror.Validation("incident_id is required")
	case voterID <= 0:
		return nil, apperror.Validation("voter_id is required")
	case !choice.Valid():
		return nil, apperror.Validation("choice must be one of yes, no, not_sure")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		outcome   models.VoteOutcome
		oldStatus models.Status
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		// блокировка строки упорядочивает голоса по одному инциденту
		incident, err := s.repo.LockIncident(ctx, incidentID)
		if err != nil {
			return err
		}
		oldStatus = incident.Status

		voted, err := s.repo.HasVote(ctx, incidentID, voterID)
		if err != nil {
			return err
		}
		if voted {
			return apperror.ErrDuplicateVote
		}

		if err := s.repo.CreateVote(ctx, &models.Vote{
			IncidentID: incidentID,
			VoterID:    voterID,
			Choice:     choice,
			CreatedAt:  s.now().UTC(),
		}); err != nil {
			return err
		}

		tally, err := s.repo.TallyVotes(ctx, incidentID)
		if err != nil {
			return err
		}

		status := incident.Status
		if status.IsTrust() {
			status = tally.Status()
			if status != incident.Status {
				if err := s.repo.SetTrustStatus(ctx, incidentID, status); err != nil {
					return err
				}
			}
		}

		outcome = models.VoteOutcome{Accepted: true, Tally: tally, Status: status}
		return nil
	})
	if err != nil {
		if apperror.IsDuplicateVote(err) {
			metrics.ObserveVote(choice, false)
			log.Warn("Duplicate vote rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to cast vote")
		return nil, fmt.Errorf("service: could not cast vote: %w", err)
	}

	var event *webhook.IncidentEvent
	if outcome.Status != oldStatus {
		event = &webhook.IncidentEvent{Type: webhook.EventStatusChanged, Status: outcome.Status}
	}
	s.afterChange(ctx, log, incidentID, event)
	metrics.ObserveVote(choice, true)

	log.WithFields(logrus.Fields{
		"yes":    outcome.Tally.Yes,
		"no":     outcome.Tally.No,
		"status": outcome.Status,
	}).Info("Vote recorded successfully")
	return &outcome, nil
}
