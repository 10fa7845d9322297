package v1

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

// @Summary Register a reporter
// @Description Create a user who can submit reports and vote
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	log := h.logger.WithField("method", "createUser")

	var input CreateUserRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, err := h.incidentService.CreateUser(c.Request.Context(), input.Name)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Submit an incident report
// @Description Classify the report and merge it into a nearby incident of the same category or open a new one.
// @Description Accepts JSON or multipart/form-data with an optional "media" file (png, jpg, gif, mp4, mov, avi).
// @Tags Reports
// @Accept json,mpfd
// @Produce json
// @Param report body SubmitReportRequest true "Report"
// @Param media formData file false "Photo or video"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Reporter not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	var input SubmitReportRequest
	multipartForm := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if multipartForm {
		if err := c.ShouldBind(&input); err != nil {
			log.WithError(err).Warn("Failed to bind form")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else if !h.bindJSON(c, log, &input) {
		return
	}

	var mediaRef *string
	if multipartForm {
		if file, err := c.FormFile("media"); err == nil {
			ref, err := h.saveMedia(c, file)
			if err != nil {
				h.respondError(c, log, err)
				return
			}
			mediaRef = &ref
		}
	}

	outcome, err := h.incidentService.SubmitReport(c.Request.Context(), DTOToSubmission(input, mediaRef))
	if err != nil {
		if mediaRef != nil {
			h.discardMedia(log, *mediaRef)
		}
		h.respondError(c, log, err)
		return
	}

	log.WithFields(logrus.Fields{
		"incident_id": outcome.IncidentID,
		"is_new":      outcome.IsNew,
	}).Info("Report accepted")
	c.JSON(http.StatusCreated, ModelToSubmitResponse(outcome))
}

func (h *Handler) saveMedia(c *gin.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.media.Save(c.Request.Context(), f)
}

// discardMedia удаляет вложение, которое не попало в хранилище вместе с записью
func (h *Handler) discardMedia(log *logrus.Entry, name string) {
	if err := h.media.Remove(name); err != nil {
		log.WithError(err).WithField("media", name).Warn("Failed to remove orphaned upload")
	}
}

// @Summary List incidents nearby
// @Description Open incidents within the radius of a point, nearest first
// @Tags Incidents
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters"
// @Success 200 {array} NearbyIncidentResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /incidents/nearby [get]
func (h *Handler) getNearby(c *gin.Context) {
	log := h.logger.WithField("method", "getNearby")

	var query NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point := geo.Point{Latitude: *query.Latitude, Longitude: *query.Longitude}
	incidents, err := h.incidentService.Nearby(c.Request.Context(), point, query.Radius)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyResponses(incidents, h.now()))
}

// @Summary Get incident details
// @Description Incident with all its reports and the verification summary
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentDetailResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	detail, err := h.incidentService.GetIncidentDetail(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDetailResponse(detail))
}

// @Summary Vote on an incident
// @Description One vote per user per incident. Three matching votes with a majority verify or refute the incident.
// @Tags Verification
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param vote body VoteRequest true "Vote"
// @Success 200 {object} VoteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident or voter not found"
// @Failure 409 {object} map[string]string "Duplicate vote"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /incidents/{id}/votes [post]
func (h *Handler) castVote(c *gin.Context) {
	log := h.logger.WithField("method", "castVote")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input VoteRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	outcome, err := h.incidentService.CastVote(c.Request.Context(), id, input.VoterID, models.Choice(input.Choice))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVoteResponse(outcome))
}

// @Summary Incident status for the reporter
// @Description Whether a responder has taken the incident, with their name, priority, note and ETA
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} UserStatusResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [get]
func (h *Handler) getUserStatus(c *gin.Context) {
	log := h.logger.WithField("method", "getUserStatus")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	view, err := h.incidentService.UserStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserStatusResponse(view))
}

// @Summary List incident notes
// @Description Conversation between responders and reporters, oldest first
// @Tags Notes
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {array} NoteResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/notes [get]
func (h *Handler) listNotes(c *gin.Context) {
	log := h.logger.WithField("method", "listNotes")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	notes, err := h.incidentService.ListNotes(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNoteResponses(notes))
}

// @Summary Add a note to an incident
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param note body NoteRequest true "Note"
// @Success 201 {object} NoteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident or sender not found"
// @Router /incidents/{id}/notes [post]
func (h *Handler) addNote(c *gin.Context) {
	log := h.logger.WithField("method", "addNote")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input NoteRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	note := &models.Note{
		IncidentID: id,
		SenderType: models.SenderType(input.SenderType),
		SenderID:   input.SenderID,
		Message:    input.Message,
	}
	if err := h.incidentService.AppendNote(c.Request.Context(), note); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToNoteResponse(note))
}
