package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

// @Summary Register a responder
// @Description Register a responder with a role and an optional proof document. Requires API key.
// @Tags Responders
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Responder name"
// @Param role formData string true "Role" Enums(medical, police, fire, traffic, disaster)
// @Param proof formData file false "Proof document"
// @Success 201 {object} ResponderResponse
// @Failure 400 {object} map[string]string "Invalid form or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /responders [post]
func (h *Handler) registerResponder(c *gin.Context) {
	log := h.logger.WithField("method", "registerResponder")

	var input RegisterResponderRequest
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

	responder := &models.Responder{Name: input.Name, Role: models.Role(input.Role)}
	if file, err := c.FormFile("proof"); err == nil {
		ref, err := h.saveMedia(c, file)
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		responder.ProofRef = &ref
	}

	if err := h.incidentService.RegisterResponder(c.Request.Context(), responder); err != nil {
		if responder.ProofRef != nil {
			h.discardMedia(log, *responder.ProofRef)
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToResponderResponse(responder))
}

// @Summary Get a responder
// @Tags Responders
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Responder ID"
// @Success 200 {object} ResponderResponse
// @Failure 404 {object} map[string]string "Responder not found"
// @Router /responders/{id} [get]
func (h *Handler) getResponder(c *gin.Context) {
	log := h.logger.WithField("method", "getResponder")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	responder, err := h.incidentService.GetResponder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToResponderResponse(responder))
}

// @Summary Responder feed
// @Description Open incidents in the categories of the responder role, newest first
// @Tags Responders
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Responder ID"
// @Success 200 {array} FeedIncidentResponse
// @Failure 404 {object} map[string]string "Responder not found"
// @Router /responders/{id}/incidents [get]
func (h *Handler) getResponderFeed(c *gin.Context) {
	log := h.logger.WithField("method", "getResponderFeed")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	feed, err := h.incidentService.ResponderFeed(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFeedResponses(feed))
}

// @Summary Claim an incident
// @Description Atomically assign an unclaimed incident to the responder. granted=false means another responder holds it.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param claim body ClaimRequest true "Claim"
// @Success 200 {object} ClaimResponse
// @Failure 404 {object} map[string]string "Incident or responder not found"
// @Router /incidents/{id}/claim [post]
func (h *Handler) claimIncident(c *gin.Context) {
	log := h.logger.WithField("method", "claimIncident")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input ClaimRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	granted, err := h.incidentService.Claim(c.Request.Context(), id, input.ResponderID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ClaimResponse{IncidentID: id, Granted: granted})
}

// @Summary Set incident status
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param status body StatusRequest true "Status"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [put]
func (h *Handler) setStatus(c *gin.Context) {
	log := h.logger.WithField("method", "setStatus")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input StatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.incidentService.SetStatus(c.Request.Context(), id, models.Status(input.Status)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// @Summary Set incident priority
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param priority body PriorityRequest true "Priority"
// @Success 200 {object} map[string]string "Updated"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/priority [put]
func (h *Handler) setPriority(c *gin.Context) {
	log := h.logger.WithField("method", "setPriority")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input PriorityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.incidentService.SetPriority(c.Request.Context(), id, models.Priority(input.Priority)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"priority": input.Priority})
}

// @Summary Update responder note and ETA
// @Description Fields left out keep their current value
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param update body ResponderUpdateRequest true "Note and ETA"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/responder-update [put]
func (h *Handler) updateResponderNote(c *gin.Context) {
	log := h.logger.WithField("method", "updateResponderNote")

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	var input ResponderUpdateRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.incidentService.UpdateResponderNote(c.Request.Context(), id, input.Note, input.ETA); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
