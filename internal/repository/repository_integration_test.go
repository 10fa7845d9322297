//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/cache"
	"github.com/shenikar/geo_incident_consensus/internal/config"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/service"
	"github.com/shenikar/geo_incident_consensus/internal/severity"
	"github.com/shenikar/geo_incident_consensus/internal/webhook"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
	"github.com/shenikar/geo_incident_consensus/pkg/postgres"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "incidents",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/incidents?sslmode=disable", host, port.Port())
	_, err = postgres.MigrateUp("file://../../migrations", dsn)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewRepository(pool)
}

func seedIncident(t *testing.T, repo *Repository) (*models.User, *models.Incident) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Name: "reporter"}
	require.NoError(t, repo.CreateUser(ctx, user))

	incident := &models.Incident{
		Category:      models.CategoryFire,
		Description:   "small fire in kitchen",
		Latitude:      10,
		Longitude:     20,
		Severity:      models.SeverityCritical,
		SeverityColor: models.SeverityCritical.Color(),
		Status:        models.StatusUnverified,
		CreatedBy:     user.ID,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateIncident(ctx, incident))
	return user, incident
}

func TestRepository_ConcurrentClaimGrantsExactlyOne(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	_, incident := seedIncident(t, repo)

	responders := make([]*models.Responder, 2)
	for i := range responders {
		responders[i] = &models.Responder{Name: fmt.Sprintf("unit-%d", i), Role: models.RoleFire, Status: "approved"}
		require.NoError(t, repo.CreateResponder(ctx, responders[i]))
	}

	var (
		wg      sync.WaitGroup
		results = make([]bool, len(responders))
		errs    = make([]error, len(responders))
		start   = make(chan struct{})
	)
	for i, rs := range responders {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			<-start
			results[i], errs[i] = repo.ClaimIncident(ctx, incident.ID, id, time.Now().UTC())
		}(i, rs.ID)
	}
	close(start)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, results[0], results[1], "exactly one claim must win")

	winner := responders[0].ID
	if results[1] {
		winner = responders[1].ID
	}

	got, err := repo.GetIncident(ctx, incident.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ClaimedBy)
	assert.Equal(t, winner, *got.ClaimedBy)
	assert.NotNil(t, got.ClaimedAt)
	assert.Equal(t, models.StatusInProgress, got.Status)

	// повторный захват победителем успешен
	again, err := repo.ClaimIncident(ctx, incident.ID, winner, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, again)

	_, err = repo.ClaimIncident(ctx, 999999, winner, time.Now().UTC())
	assert.True(t, apperror.IsNotFound(err))
}

func TestRepository_DuplicateVoteRejectedByConstraint(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	user, incident := seedIncident(t, repo)

	vote := &models.Vote{IncidentID: incident.ID, VoterID: user.ID, Choice: models.ChoiceYes, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateVote(ctx, vote))

	err := repo.CreateVote(ctx, &models.Vote{IncidentID: incident.ID, VoterID: user.ID, Choice: models.ChoiceNo, CreatedAt: time.Now().UTC()})
	assert.True(t, apperror.IsDuplicateVote(err))

	tally, err := repo.TallyVotes(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{Yes: 1}, tally)

	summary, err := repo.VoteSummary(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Verifier{{Name: "reporter", Choice: models.ChoiceYes}}, summary.Verifiers)
}

func TestRepository_MergeCandidatesAndFeed(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	user, incident := seedIncident(t, repo)

	report := &models.Report{
		IncidentID:  incident.ID,
		ReporterID:  user.ID,
		Description: incident.Description,
		Severity:    incident.Severity,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.CreateReport(ctx, report))

	candidates, err := repo.FindMergeCandidates(ctx, models.CategoryFire, time.Now().Add(-15*time.Minute))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, incident.ID, candidates[0].ID)

	feed, err := repo.ListFeed(ctx, models.RoleFire.Categories())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].RelatedReports)

	resolvedAt := time.Now().UTC()
	require.NoError(t, repo.SetStatus(ctx, incident.ID, models.StatusResolved, &resolvedAt))

	candidates, err = repo.FindMergeCandidates(ctx, models.CategoryFire, time.Now().Add(-15*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRepository_MergeCandidatesSkipIncidentsOutsideWindow(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	user, fresh := seedIncident(t, repo)

	stale := &models.Incident{
		Category:      models.CategoryFire,
		Description:   "old fire",
		Latitude:      10,
		Longitude:     20,
		Severity:      models.SeverityCritical,
		SeverityColor: models.SeverityCritical.Color(),
		Status:        models.StatusUnverified,
		CreatedBy:     user.ID,
		CreatedAt:     time.Now().UTC().Add(-20 * time.Minute),
	}
	require.NoError(t, repo.CreateIncident(ctx, stale))

	candidates, err := repo.FindMergeCandidates(ctx, models.CategoryFire, time.Now().UTC().Add(-15*time.Minute))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, fresh.ID, candidates[0].ID)

	// вне окна слияния инцидент по-прежнему виден в поиске рядом
	open, err := repo.ListOpen(ctx, geo.BoundingBox(geo.Point{Latitude: 10, Longitude: 20}, 100))
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestRepository_ListOpenFiltersByBox(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	user, near := seedIncident(t, repo)

	far := &models.Incident{
		Category:      models.CategoryCrime,
		Description:   "theft across town",
		Latitude:      10.05,
		Longitude:     20,
		Severity:      models.SeverityMinor,
		SeverityColor: models.SeverityMinor.Color(),
		Status:        models.StatusUnverified,
		CreatedBy:     user.ID,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateIncident(ctx, far))

	open, err := repo.ListOpen(ctx, geo.BoundingBox(geo.Point{Latitude: 10, Longitude: 20}, 1000))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, near.ID, open[0].ID)

	open, err = repo.ListOpen(ctx, geo.BoundingBox(geo.Point{Latitude: 10, Longitude: 20}, 10000))
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestService_ConcurrentSubmitReportsConsolidate(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cfg := &config.Config{
		MergeRadiusMeters:         200,
		MergeWindow:               15 * time.Minute,
		NearbyDefaultRadiusMeters: 500,
		NearbyMaxRadiusMeters:     50000,
		StoreTimeout:              10 * time.Second,
		CacheTTL:                  time.Minute,
	}
	svc := service.NewIncidentService(repo, repo, severity.NewDefault(), cache.NewLocalCache(time.Minute, time.Minute), webhook.NopPublisher{}, logger, cfg)

	const reporters = 4
	users := make([]*models.User, reporters)
	for i := range users {
		users[i] = &models.User{Name: fmt.Sprintf("witness-%d", i)}
		require.NoError(t, repo.CreateUser(ctx, users[i]))
	}

	var (
		wg       sync.WaitGroup
		outcomes = make([]*models.SubmitOutcome, reporters)
		errs     = make([]error, reporters)
		start    = make(chan struct{})
	)
	for i, u := range users {
		wg.Add(1)
		go func(i int, reporterID int64) {
			defer wg.Done()
			<-start
			outcomes[i], errs[i] = svc.SubmitReport(ctx, models.ReportSubmission{
				Category:    models.CategoryAccident,
				Description: "two cars collided",
				Latitude:    10.0001,
				Longitude:   20.0001,
				ReporterID:  reporterID,
			})
		}(i, u.ID)
	}
	close(start)
	wg.Wait()

	// проигравшие в сериализации получают STORE_UNAVAILABLE и ничего не пишут
	var incidentID int64
	accepted := 0
	for i, err := range errs {
		if err != nil {
			assert.True(t, apperror.IsStoreUnavailable(err), "unexpected error: %v", err)
			continue
		}
		accepted++
		if incidentID == 0 {
			incidentID = outcomes[i].IncidentID
		}
		assert.Equal(t, incidentID, outcomes[i].IncidentID)
	}
	require.Positive(t, accepted)

	incidents, err := repo.FindMergeCandidates(ctx, models.CategoryAccident, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, incidentID, incidents[0].ID)

	reports, err := repo.ListReports(ctx, incidentID)
	require.NoError(t, err)
	assert.Len(t, reports, accepted)
}

func TestRepository_WithinTxRollsBack(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	user, incident := seedIncident(t, repo)

	boom := fmt.Errorf("boom")
	err := repo.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.CreateNote(ctx, &models.Note{
			IncidentID: incident.ID,
			SenderType: models.SenderReporter,
			SenderID:   user.ID,
			Message:    "rolled back",
			CreatedAt:  time.Now().UTC(),
		}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	notes, err := repo.ListNotes(ctx, incident.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	err = repo.CreateReport(ctx, &models.Report{IncidentID: 424242, ReporterID: user.ID, Description: "x", Severity: models.SeverityMinor, CreatedAt: time.Now()})
	assert.True(t, apperror.IsNotFound(err))
}
