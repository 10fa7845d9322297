package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/models"
)

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (name) VALUES ($1) RETURNING id, created_at;`
	if err := r.q(ctx).QueryRow(ctx, query, user.Name).Scan(&user.ID, &user.CreatedAt); err != nil {
		return mapError(err, "failed to create user")
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, created_at FROM users WHERE id = $1;`
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, mapError(err, "failed to get user")
	}
	return user, nil
}

// CreateResponder регистрирует ответчика сразу одобренным
func (r *Repository) CreateResponder(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (name, role, proof_ref, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.q(ctx).QueryRow(ctx, query,
		responder.Name,
		responder.Role,
		responder.ProofRef,
		responder.Status,
	).Scan(&responder.ID, &responder.CreatedAt)
	if err != nil {
		return mapError(err, "failed to create responder")
	}
	return nil
}

func (r *Repository) GetResponder(ctx context.Context, id int64) (*models.Responder, error) {
	responder := &models.Responder{}
	query := `SELECT id, name, role, proof_ref, status, created_at FROM responders WHERE id = $1;`
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&responder.ID,
		&responder.Name,
		&responder.Role,
		&responder.ProofRef,
		&responder.Status,
		&responder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrResponderNotFound
		}
		return nil, mapError(err, "failed to get responder")
	}
	return responder, nil
}
