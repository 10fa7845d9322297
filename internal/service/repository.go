package service

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

// TxManager выполняет fn в транзакции; репозиторий берёт её из ctx
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	TxManager

	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	LockIncident(ctx context.Context, id int64) (*models.Incident, error)
	FindMergeCandidates(ctx context.Context, category models.Category, since time.Time) ([]*models.Incident, error)
	EscalateSeverity(ctx context.Context, id int64, severity models.Severity) error
	ListOpen(ctx context.Context, box geo.Box) ([]*models.Incident, error)
	ListFeed(ctx context.Context, categories []models.Category) ([]*models.FeedIncident, error)

	SetStatus(ctx context.Context, id int64, status models.Status, resolvedAt *time.Time) error
	SetTrustStatus(ctx context.Context, id int64, status models.Status) error
	SetPriority(ctx context.Context, id int64, priority models.Priority) error
	SetResponderUpdate(ctx context.Context, id int64, note, eta *string) error
	ClaimIncident(ctx context.Context, id, responderID int64, at time.Time) (bool, error)
	GetClaimView(ctx context.Context, id int64) (*models.ClaimView, error)

	CountByStatusSince(ctx context.Context, since time.Time) ([]models.StatusCount, error)
	CountActiveBySeverity(ctx context.Context) ([]models.SeverityCount, error)

	CreateReport(ctx context.Context, report *models.Report) error
	ListReports(ctx context.Context, incidentID int64) ([]*models.Report, error)

	HasVote(ctx context.Context, incidentID, voterID int64) (bool, error)
	CreateVote(ctx context.Context, vote *models.Vote) error
	TallyVotes(ctx context.Context, incidentID int64) (models.Tally, error)
	VoteSummary(ctx context.Context, incidentID int64) (models.VoteSummary, error)

	CreateNote(ctx context.Context, note *models.Note) error
	ListNotes(ctx context.Context, incidentID int64) ([]*models.Note, error)
}

// ParticipantRepository заявители и ответчики
type ParticipantRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateResponder(ctx context.Context, responder *models.Responder) error
	GetResponder(ctx context.Context, id int64) (*models.Responder, error)
}
