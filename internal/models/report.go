package models

import "time"

// Report отдельное сообщение о происшествии; принадлежит ровно одному инциденту
type Report struct {
	ID           int64     `json:"id"`
	IncidentID   int64     `json:"incident_id"`
	ReporterID   int64     `json:"reporter_id"`
	ReporterName string    `json:"reporter_name,omitempty"`
	Description  string    `json:"description"`
	Severity     Severity  `json:"severity"`
	MediaRef     *string   `json:"media_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportSubmission входные данные нового отчёта
type ReportSubmission struct {
	Category    Category
	Description string
	Latitude    float64
	Longitude   float64
	ReporterID  int64
	MediaRef    *string
}

// SubmitOutcome результат консолидации отчёта
type SubmitOutcome struct {
	IncidentID    int64    `json:"incident_id"`
	ReportID      int64    `json:"report_id"`
	Severity      Severity `json:"severity"`
	SeverityColor string   `json:"severity_color"`
	Status        Status   `json:"status"`
	IsNew         bool     `json:"is_new_incident"`
	Escalated     bool     `json:"escalated"`
}
