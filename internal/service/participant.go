package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/models"
)

const responderApproved = "approved"

// CreateUser заводит идентичность заявителя или голосующего
func (s *incidentService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	log := s.log("CreateUser", nil)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user := &models.User{Name: name}
	if err := s.participants.CreateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return user, nil
}

// RegisterResponder регистрирует ответчика; модерация не моделируется, статус сразу approved
func (s *incidentService) RegisterResponder(ctx context.Context, responder *models.Responder) error {
	log := s.log("RegisterResponder", logrus.Fields{"role": responder.Role})
	log.Info("Attempting to register responder")

	responder.Name = strings.TrimSpace(responder.Name)
	if responder.Name == "" {
		return apperror.Validation("name is required")
	}
	if !responder.Role.Valid() {
		return apperror.Validation("role must be one of medical, police, fire, traffic, disaster")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	responder.Status = responderApproved
	if err := s.participants.CreateResponder(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to register responder")
		return fmt.Errorf("service: could not register responder: %w", err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder registered successfully")
	return nil
}

func (s *incidentService) GetResponder(ctx context.Context, id int64) (*models.Responder, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	responder, err := s.participants.GetResponder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	return responder, nil
}
