package v1

import (
	"time"
)

// CreateUserRequest DTO для регистрации заявителя
// @Description DTO для регистрации заявителя
type CreateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// UserResponse DTO пользователя
// @Description DTO пользователя
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitReportRequest DTO отчёта о происшествии (JSON или multipart с полем media)
// @Description DTO отчёта о происшествии
type SubmitReportRequest struct {
	Category    string   `json:"category" form:"category" validate:"required,oneof=medical fire crime accident other"`
	Description string   `json:"description" form:"description" validate:"required,max=5000"`
	Latitude    *float64 `json:"latitude" form:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude" validate:"required,longitude"`
	ReporterID  int64    `json:"reporter_id" form:"reporter_id" validate:"required,gt=0"`
}

// SubmitReportResponse DTO результата консолидации
// @Description DTO результата консолидации
type SubmitReportResponse struct {
	IncidentID    int64  `json:"incident_id"`
	ReportID      int64  `json:"report_id"`
	Severity      string `json:"severity"`
	SeverityColor string `json:"severity_color"`
	Status        string `json:"status"`
	IsNewIncident bool   `json:"is_new_incident"`
	Escalated     bool   `json:"escalated"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            int64      `json:"id"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Severity      string     `json:"severity"`
	SeverityColor string     `json:"severity_color"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	ClaimedBy     *int64     `json:"claimed_by,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	ResponderNote *string    `json:"responder_note,omitempty"`
	ResponderETA  *string    `json:"responder_eta,omitempty"`
}

// NearbyIncidentResponse инцидент рядом с точкой запроса
// @Description инцидент рядом с точкой запроса
type NearbyIncidentResponse struct {
	IncidentResponse
	DistanceMeters float64 `json:"distance_m"`
	TimeAgo        string  `json:"time_ago"`
}

// FeedIncidentResponse инцидент в ленте ответчика
// @Description инцидент в ленте ответчика
type FeedIncidentResponse struct {
	IncidentResponse
	RelatedReportsCount int `json:"related_reports_count"`
}

// ReportResponse отчёт в карточке инцидента
type ReportResponse struct {
	ID            int64     `json:"id"`
	ReporterID    int64     `json:"reporter_id"`
	ReporterName  string    `json:"reporter_name"`
	Description   string    `json:"description"`
	Severity      string    `json:"severity"`
	SeverityColor string    `json:"severity_color"`
	MediaURL      *string   `json:"media_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type VerifierResponse struct {
	Name   string `json:"name"`
	Choice string `json:"choice"`
}

// VerificationSummaryResponse итоги проверки сообществом
type VerificationSummaryResponse struct {
	Yes       int                `json:"yes"`
	No        int                `json:"no"`
	NotSure   int                `json:"not_sure"`
	Verifiers []VerifierResponse `json:"verifiers"`
}

// IncidentDetailResponse DTO полной карточки инцидента
// @Description DTO полной карточки инцидента
type IncidentDetailResponse struct {
	Incident     IncidentResponse            `json:"incident"`
	ReporterName string                      `json:"reporter_name,omitempty"`
	Reports      []ReportResponse            `json:"reports"`
	Verification VerificationSummaryResponse `json:"verification_summary"`
}

// VoteRequest DTO голоса
// @Description DTO голоса
type VoteRequest struct {
	VoterID int64  `json:"voter_id" validate:"required,gt=0"`
	Choice  string `json:"choice" validate:"required,oneof=yes no not_sure"`
}

// VoteResponse DTO результата голосования
// @Description DTO результата голосования
type VoteResponse struct {
	Accepted       bool   `json:"accepted"`
	Yes            int    `json:"yes"`
	No             int    `json:"no"`
	NotSure        int    `json:"not_sure"`
	IncidentStatus string `json:"incident_status"`
}

// ClaimRequest DTO захвата инцидента
type ClaimRequest struct {
	ResponderID int64 `json:"responder_id" validate:"required,gt=0"`
}

// ClaimResponse granted=false значит, что инцидент уже занят другим ответчиком
type ClaimResponse struct {
	IncidentID int64 `json:"incident_id"`
	Granted    bool  `json:"granted"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress resolved false"`
}

type PriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high critical"`
}

// ResponderUpdateRequest заметка и ETA для заявителя
type ResponderUpdateRequest struct {
	Note *string `json:"note" validate:"omitempty,max=2000"`
	ETA  *string `json:"eta" validate:"omitempty,max=100"`
}

// NoteRequest DTO сообщения в журнале инцидента
// @Description DTO сообщения в журнале инцидента
type NoteRequest struct {
	SenderType string `json:"sender_type" validate:"required,oneof=responder reporter"`
	SenderID   int64  `json:"sender_id" validate:"required,gt=0"`
	Message    string `json:"message" validate:"required,max=2000"`
}

type NoteResponse struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	SenderType string    `json:"sender_type"`
	SenderID   int64     `json:"sender_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserStatusResponse DTO состояния инцидента для заявителя
// @Description DTO состояния инцидента для заявителя
type UserStatusResponse struct {
	Status        string     `json:"status"`
	Claimed       bool       `json:"claimed"`
	ResponderName *string    `json:"responder_name,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	Note          *string    `json:"note,omitempty"`
	ETA           *string    `json:"eta,omitempty"`
}

// RegisterResponderRequest поля multipart-формы регистрации ответчика (файл proof опционален)
type RegisterResponderRequest struct {
	Name string `form:"name" validate:"required,min=1,max=255"`
	Role string `form:"role" validate:"required,oneof=medical police fire traffic disaster"`
}

type ResponderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ProofURL  *string   `json:"proof_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	WindowMinutes int            `json:"window_minutes"`
	ByStatus      map[string]int `json:"by_status"`
	Total         int            `json:"total"`
}

// NearbyQuery параметры поиска инцидентов рядом; radius=0 означает радиус по умолчанию
type NearbyQuery struct {
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lon" validate:"required,longitude"`
	Radius    float64  `form:"radius" validate:"gte=0"`
}
