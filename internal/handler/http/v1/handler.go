package v1

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/config"
	"github.com/shenikar/geo_incident_consensus/internal/service"
)

// MediaStore хранилище вложений (фото/видео к отчётам, документы ответчиков)
type MediaStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Path(name string) (string, error)
	Remove(name string) error
}

type Handler struct {
	incidentService service.IncidentService
	media           MediaStore
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	now             func() time.Time
}

func NewHandler(incidentService service.IncidentService, media MediaStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		media:           media,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		now:             time.Now,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ. Детали 5xx наружу не отдаются.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	appErr := apperror.As(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		message := "internal server error"
		if appErr.Code == apperror.ErrCodeStoreUnavailable {
			message = "service temporarily unavailable, retry later"
		}
		c.JSON(appErr.HTTPStatus, gin.H{"error": message, "code": appErr.Code})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message, "code": appErr.Code})
}

// bindJSON разбирает и валидирует тело запроса; при ошибке ответ уже записан
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, log *logrus.Entry, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		log.WithError(err).Warn("Invalid ID format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary Get incident statistics
// @Description Count of incidents per status created within the configured time window
// @Tags Incidents
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	counts, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(counts, h.cfg.StatsTimeWindowMinutes))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Download an uploaded file
// @Description Serve media attached to a report or a responder proof document
// @Tags Uploads
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "File not found"
// @Router /uploads/{name} [get]
func (h *Handler) getUpload(c *gin.Context) {
	log := h.logger.WithField("method", "getUpload")

	path, err := h.media.Path(c.Param("name"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.File(path)
}
