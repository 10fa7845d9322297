package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/cache"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

// Nearby открытые инциденты в радиусе от точки, ближайшие первыми.
// radiusMeters == 0 означает радиус по умолчанию.
func (s *incidentService) Nearby(ctx context.Context, point geo.Point, radiusMeters float64) ([]*models.NearbyIncident, error) {
	log := s.log("Nearby", logrus.Fields{
		"latitude":  point.Latitude,
		"longitude": point.Longitude,
		"radius_m":  radiusMeters,
	})

	if !point.Valid() {
		return nil, apperror.Validation("coordinates are out of range")
	}
	if radiusMeters == 0 {
		radiusMeters = s.cfg.NearbyDefaultRadiusMeters
	}
	if radiusMeters < 0 || radiusMeters > s.cfg.NearbyMaxRadiusMeters {
		return nil, apperror.Validation("radius must be between 0 and %.0f meters", s.cfg.NearbyMaxRadiusMeters)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	open, err := s.repo.ListOpen(ctx, geo.BoundingBox(point, radiusMeters))
	if err != nil {
		log.WithError(err).Error("Failed to list open incidents")
		return nil, fmt.Errorf("service: could not list nearby incidents: %w", err)
	}

	result := make([]*models.NearbyIncident, 0)
	for _, incident := range open {
		d := geo.Distance(point, geo.Point{Latitude: incident.Latitude, Longitude: incident.Longitude})
		if d <= radiusMeters {
			result = append(result, &models.NearbyIncident{Incident: *incident, DistanceMeters: d})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})

	log.WithField("count", len(result)).Debug("Nearby incidents fetched")
	return result, nil
}

// GetIncidentDetail карточка инцидента: отчёты, подсчёт голосов, имена проголосовавших
func (s *incidentService) GetIncidentDetail(ctx context.Context, incidentID int64) (*models.IncidentDetail, error) {
	log := s.log("GetIncidentDetail", logrus.Fields{"incident_id": incidentID})
	log.Info("Fetching incident detail")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := cache.IncidentKey(incidentID)
	// поколение читается до загрузки: изменение во время загрузки его увеличит
	gen, err := s.cache.Generation(ctx, key)
	cacheable := err == nil
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache generation")
	} else if detail, ok := s.cachedDetail(ctx, log, key, gen); ok {
		log.Debug("Incident detail served from cache")
		return detail, nil
	}

	var (
		incident *models.Incident
		reports  []*models.Report
		summary  models.VoteSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incident, err = s.repo.GetIncident(gctx, incidentID)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = s.repo.ListReports(gctx, incidentID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.repo.VoteSummary(gctx, incidentID)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperror.IsNotFound(err) {
			log.Warn("Incident not found")
		} else {
			log.WithError(err).Error("Failed to load incident detail")
		}
		return nil, fmt.Errorf("service: could not get incident detail: %w", err)
	}

	detail := &models.IncidentDetail{
		Incident: *incident,
		Reports:  reports,
		Summary:  summary,
	}
	// отчёты идут от новых к старым; первый отчёт принадлежит автору инцидента
	if n := len(reports); n > 0 {
		detail.Reporter = reports[n-1].ReporterName
	}

	if cacheable {
		if raw, err := json.Marshal(detailEntry{Generation: gen, Detail: detail}); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cfg.CacheTTL); err != nil {
				log.WithError(err).Warn("Failed to cache incident detail")
			}
		}
	}

	return detail, nil
}

// detailEntry карточка в кэше вместе с поколением, при котором её загрузили
type detailEntry struct {
	Generation int64                  `json:"generation"`
	Detail     *models.IncidentDetail `json:"detail"`
}

// cachedDetail отдаёт запись только если её поколение совпадает с текущим
func (s *incidentService) cachedDetail(ctx context.Context, log *logrus.Entry, key string, gen int64) (*models.IncidentDetail, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var entry detailEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Detail == nil {
		log.Warn("Corrupted incident cache entry, reloading")
		return nil, false
	}
	if entry.Generation != gen {
		log.WithField("cached_generation", entry.Generation).Debug("Stale incident cache entry, reloading")
		return nil, false
	}
	return entry.Detail, true
}

// ResponderFeed открытые инциденты категорий, которые обслуживает роль ответчика
func (s *incidentService) ResponderFeed(ctx context.Context, responderID int64) ([]*models.FeedIncident, error) {
	log := s.log("ResponderFeed", logrus.Fields{"responder_id": responderID})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	responder, err := s.participants.GetResponder(ctx, responderID)
	if err != nil {
		log.WithError(err).Warn("Failed to get responder")
		return nil, fmt.Errorf("service: could not build responder feed: %w", err)
	}

	categories := responder.Role.Categories()
	if len(categories) == 0 {
		return []*models.FeedIncident{}, nil
	}

	feed, err := s.repo.ListFeed(ctx, categories)
	if err != nil {
		log.WithError(err).Error("Failed to list responder feed")
		return nil, fmt.Errorf("service: could not build responder feed: %w", err)
	}
	log.WithFields(logrus.Fields{"role": responder.Role, "count": len(feed)}).Debug("Responder feed built")
	return feed, nil
}

// UserStatus состояние работы над инцидентом для заявителя
func (s *incidentService) UserStatus(ctx context.Context, incidentID int64) (*models.ClaimView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	view, err := s.repo.GetClaimView(ctx, incidentID)
	if err != nil {
		s.log("UserStatus", logrus.Fields{"incident_id": incidentID}).WithError(err).Warn("Failed to get claim view")
		return nil, fmt.Errorf("service: could not get user status: %w", err)
	}
	return view, nil
}

// GetStats число инцидентов по статусам за последние StatsTimeWindowMinutes минут
func (s *incidentService) GetStats(ctx context.Context) ([]models.StatusCount, error) {
	log := s.log("GetStats", logrus.Fields{"window_minutes": s.cfg.StatsTimeWindowMinutes})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	since := s.now().UTC().Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)
	counts, err := s.repo.CountByStatusSince(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return counts, nil
}
