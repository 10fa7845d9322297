package v1

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

const uploadsPath = "/api/v1/uploads/"

func mediaURL(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	url := uploadsPath + *ref
	return &url
}

func ModelToUserResponse(m *models.User) UserResponse {
	return UserResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}

// DTOToSubmission конвертирует запрос в данные для консолидации
func DTOToSubmission(dto SubmitReportRequest, mediaRef *string) models.ReportSubmission {
	sub := models.ReportSubmission{
		Category:    models.Category(dto.Category),
		Description: dto.Description,
		ReporterID:  dto.ReporterID,
		MediaRef:    mediaRef,
	}
	if dto.Latitude != nil {
		sub.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		sub.Longitude = *dto.Longitude
	}
	return sub
}

func ModelToSubmitResponse(m *models.SubmitOutcome) SubmitReportResponse {
	return SubmitReportResponse{
		IncidentID:    m.IncidentID,
		ReportID:      m.ReportID,
		Severity:      string(m.Severity),
		SeverityColor: m.SeverityColor,
		Status:        string(m.Status),
		IsNewIncident: m.IsNew,
		Escalated:     m.Escalated,
	}
}

// ModelToIncidentResponse конвертирует модель Incident в DTO IncidentResponse
func ModelToIncidentResponse(m *models.Incident) IncidentResponse {
	resp := IncidentResponse{
		ID:            m.ID,
		Category:      string(m.Category),
		Description:   m.Description,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Severity:      string(m.Severity),
		SeverityColor: m.Severity.Color(),
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		ResolvedAt:    m.ResolvedAt,
		ClaimedBy:     m.ClaimedBy,
		ClaimedAt:     m.ClaimedAt,
		ResponderNote: m.ResponderNote,
		ResponderETA:  m.ResponderETA,
	}
	if m.Priority != nil {
		p := string(*m.Priority)
		resp.Priority = &p
	}
	return resp
}

// ModelsToNearbyResponses добавляет к инцидентам расстояние и "сколько времени назад" относительно now
func ModelsToNearbyResponses(ms []*models.NearbyIncident, now time.Time) []NearbyIncidentResponse {
	responses := make([]NearbyIncidentResponse, len(ms))
	for i, m := range ms {
		responses[i] = NearbyIncidentResponse{
			IncidentResponse: ModelToIncidentResponse(&m.Incident),
			DistanceMeters:   m.DistanceMeters,
			TimeAgo:          humanize.RelTime(m.CreatedAt, now, "ago", "from now"),
		}
	}
	return responses
}

func ModelsToFeedResponses(ms []*models.FeedIncident) []FeedIncidentResponse {
	responses := make([]FeedIncidentResponse, len(ms))
	for i, m := range ms {
		responses[i] = FeedIncidentResponse{
			IncidentResponse:    ModelToIncidentResponse(&m.Incident),
			RelatedReportsCount: m.RelatedReports,
		}
	}
	return responses
}

func ModelToDetailResponse(m *models.IncidentDetail) IncidentDetailResponse {
	reports := make([]ReportResponse, len(m.Reports))
	for i, r := range m.Reports {
		reports[i] = ReportResponse{
			ID:            r.ID,
			ReporterID:    r.ReporterID,
			ReporterName:  r.ReporterName,
			Description:   r.Description,
			Severity:      string(r.Severity),
			SeverityColor: r.Severity.Color(),
			MediaURL:      mediaURL(r.MediaRef),
			CreatedAt:     r.CreatedAt,
		}
	}
	verifiers := make([]VerifierResponse, len(m.Summary.Verifiers))
	for i, v := range m.Summary.Verifiers {
		verifiers[i] = VerifierResponse{Name: v.Name, Choice: string(v.Choice)}
	}
	return IncidentDetailResponse{
		Incident:     ModelToIncidentResponse(&m.Incident),
		ReporterName: m.Reporter,
		Reports:      reports,
		Verification: VerificationSummaryResponse{
			Yes:       m.Summary.Yes,
			No:        m.Summary.No,
			NotSure:   m.Summary.NotSure,
			Verifiers: verifiers,
		},
	}
}

func ModelToVoteResponse(m *models.VoteOutcome) VoteResponse {
	return VoteResponse{
		Accepted:       m.Accepted,
		Yes:            m.Tally.Yes,
		No:             m.Tally.No,
		NotSure:        m.Tally.NotSure,
		IncidentStatus: string(m.Status),
	}
}

func ModelToUserStatusResponse(m *models.ClaimView) UserStatusResponse {
	resp := UserStatusResponse{
		Status:        string(m.Status),
		Claimed:       m.Claimed,
		ResponderName: m.ResponderName,
		ClaimedAt:     m.ClaimedAt,
		Note:          m.Note,
		ETA:           m.ETA,
	}
	if m.Priority != nil {
		p := string(*m.Priority)
		resp.Priority = &p
	}
	return resp
}

func ModelsToNoteResponses(ms []*models.Note) []NoteResponse {
	responses := make([]NoteResponse, len(ms))
	for i, m := range ms {
		responses[i] = NoteResponse{
			ID:         m.ID,
			IncidentID: m.IncidentID,
			SenderType: string(m.SenderType),
			SenderID:   m.SenderID,
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
		}
	}
	return responses
}

func ModelToNoteResponse(m *models.Note) NoteResponse {
	return ModelsToNoteResponses([]*models.Note{m})[0]
}

func ModelToResponderResponse(m *models.Responder) ResponderResponse {
	return ResponderResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      string(m.Role),
		ProofURL:  mediaURL(m.ProofRef),
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func ModelToStatsResponse(counts []models.StatusCount, windowMinutes int) StatsResponse {
	resp := StatsResponse{WindowMinutes: windowMinutes, ByStatus: make(map[string]int, len(counts))}
	for _, c := range counts {
		resp.ByStatus[string(c.Status)] = c.Count
		resp.Total += c.Count
	}
	return resp
}
