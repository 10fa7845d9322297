package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/cache"
	"github.com/shenikar/geo_incident_consensus/internal/config"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/severity"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

// IncidentService определяет контракт бизнес-логики: консолидация отчётов,
// проверка сообществом и работа ответчиков
type IncidentService interface {
	SubmitReport(ctx context.Context, sub models.ReportSubmission) (*models.SubmitOutcome, error)
	CastVote(ctx context.Context, incidentID, voterID int64, choice models.Choice) (*models.VoteOutcome, error)

	Claim(ctx context.Context, incidentID, responderID int64) (bool, error)
	SetStatus(ctx context.Context, incidentID int64, status models.Status) error
	SetPriority(ctx context.Context, incidentID int64, priority models.Priority) error
	UpdateResponderNote(ctx context.Context, incidentID int64, note, eta *string) error
	AppendNote(ctx context.Context, note *models.Note) error
	ListNotes(ctx context.Context, incidentID int64) ([]*models.Note, error)

	Nearby(ctx context.Context, point geo.Point, radiusMeters float64) ([]*models.NearbyIncident, error)
	GetIncidentDetail(ctx context.Context, incidentID int64) (*models.IncidentDetail, error)
	ResponderFeed(ctx context.Context, responderID int64) ([]*models.FeedIncident, error)
	UserStatus(ctx context.Context, incidentID int64) (*models.ClaimView, error)
	GetStats(ctx context.Context) ([]models.StatusCount, error)

	CreateUser(ctx context.Context, name string) (*models.User, error)
	RegisterResponder(ctx context.Context, responder *models.Responder) error
	GetResponder(ctx context.Context, id int64) (*models.Responder, error)
}

type incidentService struct {
	repo         IncidentRepository
	participants ParticipantRepository
	classifier   severity.Classifier
	cache        cache.Cache
	publisher    webhook.Publisher
	logger       *logrus.Logger
	cfg          *config.Config
	now          func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	participants ParticipantRepository,
	classifier severity.Classifier,
	detailCache cache.Cache,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:         repo,
		participants: participants,
		classifier:   classifier,
		cache:        detailCache,
		publisher:    publisher,
		logger:       logger,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *incidentService) log(method string, fields logrus.Fields) *logrus.Entry {
	entry := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  method,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	return entry
}

// withTimeout ограничивает время работы с хранилищем
func (s *incidentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}

// afterChange сбрасывает кэш карточки и публикует событие; сбои только логируются.
// Вызывается после фиксации транзакции.
func (s *incidentService) afterChange(ctx context.Context, log *logrus.Entry, incidentID int64, event *webhook.IncidentEvent) {
	key := cache.IncidentKey(incidentID)
	if err := s.cache.Bump(ctx, key); err != nil {
		log.WithError(err).Warn("Failed to bump incident cache generation")
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if event == nil {
		return
	}
	event.IncidentID = incidentID
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, *event); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}
}
