package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/config"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/internal/service/mocks"
	"github.com/shenikar/geo_incident_consensus/internal/storage"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

func testConfig() *config.Config {
	return &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
		RateLimitLimit:         100,
		RateLimitPeriod:        time.Minute,
	}
}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	return newTestHandlerWithConfig(t, testConfig())
}

func newTestHandlerWithConfig(t *testing.T, cfg *config.Config) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	media, err := storage.NewUploadStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	handler := NewHandler(mockService, media, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateUser_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateUser(gomock.Any(), "Alice").
		Return(&models.User{ID: 5, Name: "Alice"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/users", jsonBody(t, CreateUserRequest{Name: "Alice"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
}

func TestSubmitReport_JSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitReport(gomock.Any(), models.ReportSubmission{
			Category:    models.CategoryFire,
			Description: "smoke from the roof",
			Latitude:    55.75,
			Longitude:   37.61,
			ReporterID:  3,
		}).
		Return(&models.SubmitOutcome{
			IncidentID:    10,
			ReportID:      20,
			Severity:      models.SeveritySerious,
			SeverityColor: "orange",
			Status:        models.StatusUnverified,
			IsNew:         true,
		}, nil)

	req := SubmitReportRequest{
		Category:    "fire",
		Description: "smoke from the roof",
		Latitude:    floatPtr(55.75),
		Longitude:   floatPtr(37.61),
		ReporterID:  3,
	}
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", jsonBody(t, req))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.IncidentID)
	assert.True(t, resp.IsNewIncident)
	assert.Equal(t, "orange", resp.SeverityColor)
}

func TestSubmitReport_ZeroCoordinatesAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).
		Return(&models.SubmitOutcome{IncidentID: 1, ReportID: 1, Status: models.StatusUnverified}, nil)

	req := SubmitReportRequest{Category: "other", Description: "x", Latitude: floatPtr(0), Longitude: floatPtr(0), ReporterID: 1}
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", jsonBody(t, req))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name string
		req  SubmitReportRequest
	}{
		{"missing coordinates", SubmitReportRequest{Category: "fire", Description: "x", ReporterID: 1}},
		{"latitude out of range", SubmitReportRequest{Category: "fire", Description: "x", Latitude: floatPtr(91), Longitude: floatPtr(0), ReporterID: 1}},
		{"unknown category", SubmitReportRequest{Category: "flood", Description: "x", Latitude: floatPtr(1), Longitude: floatPtr(1), ReporterID: 1}},
		{"missing reporter", SubmitReportRequest{Category: "fire", Description: "x", Latitude: floatPtr(1), Longitude: floatPtr(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/reports", jsonBody(t, tt.req))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitReport_MultipartWithMedia(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub models.ReportSubmission) (*models.SubmitOutcome, error) {
			require.NotNil(t, sub.MediaRef)
			assert.Contains(t, *sub.MediaRef, ".png")
			assert.Equal(t, models.CategoryAccident, sub.Category)
			assert.Equal(t, 10.5, sub.Latitude)
			return &models.SubmitOutcome{IncidentID: 2, ReportID: 3, Status: models.StatusUnverified}, nil
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("category", "accident"))
	require.NoError(t, mw.WriteField("description", "two cars"))
	require.NoError(t, mw.WriteField("latitude", "10.5"))
	require.NoError(t, mw.WriteField("longitude", "20.5"))
	require.NoError(t, mw.WriteField("reporter_id", "4"))
	part, err := mw.CreateFormFile("media", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{7}, 300)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/reports", &body, map[string]string{"Content-Type": mw.FormDataContentType()})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitReport_MultipartRejectsUnknownMedia(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("category", "fire"))
	require.NoError(t, mw.WriteField("description", "flames"))
	require.NoError(t, mw.WriteField("latitude", "1"))
	require.NoError(t, mw.WriteField("longitude", "1"))
	require.NoError(t, mw.WriteField("reporter_id", "1"))
	part, err := mw.CreateFormFile("media", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text is not media"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/reports", &body, map[string]string{"Content-Type": mw.FormDataContentType()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestSubmitReport_StoreUnavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", apperror.Wrap(context.DeadlineExceeded, apperror.ErrCodeStoreUnavailable, "store unavailable")))

	req := SubmitReportRequest{Category: "fire", Description: "x", Latitude: floatPtr(1), Longitude: floatPtr(1), ReporterID: 1}
	w := makeRequest(router, http.MethodPost, "/api/v1/reports", jsonBody(t, req))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "STORE_UNAVAILABLE")
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestSubmitReport_FailedSubmissionRemovesMedia(t *testing.T) {
	h, mockService, router := newTestHandler(t)

	var saved string
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub models.ReportSubmission) (*models.SubmitOutcome, error) {
			require.NotNil(t, sub.MediaRef)
			saved = *sub.MediaRef
			_, err := h.media.Path(saved)
			require.NoError(t, err)
			return nil, fmt.Errorf("service: %w", apperror.ErrUserNotFound)
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("category", "fire"))
	require.NoError(t, mw.WriteField("description", "smoke"))
	require.NoError(t, mw.WriteField("latitude", "3"))
	require.NoError(t, mw.WriteField("longitude", "4"))
	require.NoError(t, mw.WriteField("reporter_id", "99"))
	part, err := mw.CreateFormFile("media", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{2}, 32)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/reports", &body, map[string]string{"Content-Type": mw.FormDataContentType()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotEmpty(t, saved)
	_, err = h.media.Path(saved)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetNearby_Success(t *testing.T) {
	h, mockService, router := newTestHandler(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	mockService.EXPECT().
		Nearby(gomock.Any(), geo.Point{Latitude: 55.75, Longitude: 37.61}, 500.0).
		Return([]*models.NearbyIncident{{
			Incident:       models.Incident{ID: 1, Category: models.CategoryFire, Severity: models.SeverityCritical, CreatedAt: now.Add(-10 * time.Minute)},
			DistanceMeters: 120,
		}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=55.75&lon=37.61&radius=500", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NearbyIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 120.0, resp[0].DistanceMeters)
	assert.Equal(t, "10 minutes ago", resp[0].TimeAgo)
	assert.Equal(t, "red", resp[0].SeverityColor)
}

func TestGetNearby_DefaultRadius(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Nearby(gomock.Any(), gomock.Any(), 0.0).Return([]*models.NearbyIncident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=1&lon=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetNearby_InvalidQuery(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, url := range []string{
		"/api/v1/incidents/nearby?lon=2",
		"/api/v1/incidents/nearby?lat=abc&lon=2",
		"/api/v1/incidents/nearby?lat=1&lon=200",
		"/api/v1/incidents/nearby?lat=1&lon=2&radius=-5",
	} {
		w := makeRequest(router, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	media := "abc.png"

	mockService.EXPECT().GetIncidentDetail(gomock.Any(), int64(7)).Return(&models.IncidentDetail{
		Incident: models.Incident{ID: 7, Category: models.CategoryMedical, Severity: models.SeverityMinor},
		Reports:  []*models.Report{{ID: 1, ReporterName: "Bob", Severity: models.SeverityMinor, MediaRef: &media}},
		Summary:  models.VoteSummary{Tally: models.Tally{Yes: 2}, Verifiers: []models.Verifier{{Name: "Ann", Choice: models.ChoiceYes}, {Name: "Cid", Choice: models.ChoiceYes}}},
		Reporter: "Bob",
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Incident.ID)
	assert.Equal(t, "Bob", resp.ReporterName)
	assert.Equal(t, 2, resp.Verification.Yes)
	require.Len(t, resp.Verification.Verifiers, 2)
	assert.Equal(t, VerifierResponse{Name: "Ann", Choice: "yes"}, resp.Verification.Verifiers[0])
	require.Len(t, resp.Reports, 1)
	require.NotNil(t, resp.Reports[0].MediaURL)
	assert.Equal(t, "/api/v1/uploads/abc.png", *resp.Reports[0].MediaURL)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetIncidentDetail(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncidentDetail(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("service: could not get incident: %w", apperror.ErrIncidentNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestCastVote_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CastVote(gomock.Any(), int64(4), int64(9), models.ChoiceYes).
		Return(&models.VoteOutcome{Accepted: true, Tally: models.Tally{Yes: 3}, Status: models.StatusVerified}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/4/votes", jsonBody(t, VoteRequest{VoterID: 9, Choice: "yes"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "verified", resp.IncidentStatus)
	assert.Equal(t, 3, resp.Yes)
}

func TestCastVote_Duplicate(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CastVote(gomock.Any(), int64(4), int64(9), models.ChoiceNo).
		Return(nil, fmt.Errorf("service: could not cast vote: %w", apperror.ErrDuplicateVote))

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/4/votes", jsonBody(t, VoteRequest{VoterID: 9, Choice: "no"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_VOTE")
}

func TestCastVote_InvalidChoice(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CastVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/4/votes", jsonBody(t, VoteRequest{VoterID: 9, Choice: "maybe"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVote_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitLimit = 2
	_, mockService, router := newTestHandlerWithConfig(t, cfg)

	mockService.EXPECT().CastVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.VoteOutcome{Accepted: true, Status: models.StatusUnverified}, nil).Times(2)

	var last *httptest.ResponseRecorder
	for i := int64(1); i <= 3; i++ {
		last = makeRequest(router, http.MethodPost, "/api/v1/incidents/4/votes", jsonBody(t, VoteRequest{VoterID: i, Choice: "yes"}))
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
}

func TestGetUserStatus_Claimed(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	name := "Unit 12"
	priority := models.PriorityHigh

	mockService.EXPECT().UserStatus(gomock.Any(), int64(3)).Return(&models.ClaimView{
		Status:        models.StatusInProgress,
		Claimed:       true,
		ResponderName: &name,
		Priority:      &priority,
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/3/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Claimed)
	assert.Equal(t, "in_progress", resp.Status)
	require.NotNil(t, resp.Priority)
	assert.Equal(t, "high", *resp.Priority)
}

func TestNotes_AddAndList(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AppendNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Note) error {
			assert.Equal(t, int64(2), n.IncidentID)
			assert.Equal(t, models.SenderReporter, n.SenderType)
			n.ID = 11
			return nil
		})
	mockService.EXPECT().ListNotes(gomock.Any(), int64(2)).
		Return([]*models.Note{{ID: 11, IncidentID: 2, SenderType: models.SenderReporter, SenderID: 1, Message: "still burning"}}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/2/notes",
		jsonBody(t, NoteRequest{SenderType: "reporter", SenderID: 1, Message: "still burning"}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/incidents/2/notes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "still burning", resp[0].Message)
}

func TestClaimIncident_Granted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Claim(gomock.Any(), int64(8), int64(2)).Return(true, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/8/claim", jsonBody(t, ClaimRequest{ResponderID: 2}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incident_id":8,"granted":true}`, w.Body.String())
}

func TestClaimIncident_AlreadyClaimed(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Claim(gomock.Any(), int64(8), int64(3)).Return(false, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/8/claim", jsonBody(t, ClaimRequest{ResponderID: 3}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incident_id":8,"granted":false}`, w.Body.String())
}

func TestClaimIncident_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/8/claim", jsonBody(t, ClaimRequest{ResponderID: 3}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetStatus(gomock.Any(), int64(8), models.StatusResolved).Return(nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/8/status", jsonBody(t, StatusRequest{Status: "resolved"}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetStatus_TrustStatusRejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/8/status", jsonBody(t, StatusRequest{Status: "verified"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPriority_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetPriority(gomock.Any(), int64(77), models.PriorityCritical).
		Return(fmt.Errorf("service: %w", apperror.ErrIncidentNotFound))

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/77/priority", jsonBody(t, PriorityRequest{Priority: "critical"}), apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateResponderNote_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateResponderNote(gomock.Any(), int64(8), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ int64, note, _ *string) error {
			require.NotNil(t, note)
			assert.Equal(t, "on the way", *note)
			return nil
		})

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/8/responder-update", bytes.NewBufferString(`{"note":"on the way"}`), apiKeyHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterResponder_WithProof(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RegisterResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Responder) error {
			assert.Equal(t, models.RoleFire, r.Role)
			require.NotNil(t, r.ProofRef)
			r.ID = 6
			r.Status = "approved"
			return nil
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Station 4"))
	require.NoError(t, mw.WriteField("role", "fire"))
	part, err := mw.CreateFormFile("proof", "badge.png")
	require.NoError(t, err)
	_, err = part.Write(append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 64)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/responders", &body,
		map[string]string{"Content-Type": mw.FormDataContentType(), "X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ResponderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.ID)
	require.NotNil(t, resp.ProofURL)

	// загруженный документ отдаётся по ссылке
	w = makeRequest(router, http.MethodGet, *resp.ProofURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterResponder_FailedRegistrationRemovesProof(t *testing.T) {
	h, mockService, router := newTestHandler(t)

	var saved string
	mockService.EXPECT().RegisterResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Responder) error {
			require.NotNil(t, r.ProofRef)
			saved = *r.ProofRef
			return fmt.Errorf("service: %w", apperror.Wrap(context.DeadlineExceeded, apperror.ErrCodeStoreUnavailable, "store unavailable"))
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Station 9"))
	require.NoError(t, mw.WriteField("role", "medical"))
	part, err := mw.CreateFormFile("proof", "badge.png")
	require.NoError(t, err)
	_, err = part.Write(append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{3}, 16)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := makeRequest(router, http.MethodPost, "/api/v1/responders", &body,
		map[string]string{"Content-Type": mw.FormDataContentType(), "X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NotEmpty(t, saved)
	_, err = h.media.Path(saved)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetResponderFeed_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResponderFeed(gomock.Any(), int64(6)).Return([]*models.FeedIncident{
		{Incident: models.Incident{ID: 1, Category: models.CategoryFire}, RelatedReports: 3},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/responders/6/incidents", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FeedIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].RelatedReportsCount)
}

func TestGetUpload_NotFound(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/uploads/missing.png", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return([]models.StatusCount{
		{Status: models.StatusUnverified, Count: 4},
		{Status: models.StatusResolved, Count: 1},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 60, resp.WindowMinutes)
	assert.Equal(t, 4, resp.ByStatus["unverified"])
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, fmt.Errorf("boom"))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestResponderAuthMiddleware_Bearer(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetResponder(gomock.Any(), int64(1)).Return(&models.Responder{ID: 1, Role: models.RoleMedical}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/responders/1", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResponderAuthMiddleware_InvalidKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetResponder(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/responders/1", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
