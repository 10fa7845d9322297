package models

import "time"

type SenderType string

const (
	SenderResponder SenderType = "responder"
	SenderReporter  SenderType = "reporter"
)

func (s SenderType) Valid() bool {
	return s == SenderResponder || s == SenderReporter
}

// Note запись в журнале переписки по инциденту; только добавление
type Note struct {
	ID         int64      `json:"id"`
	IncidentID int64      `json:"incident_id"`
	SenderType SenderType `json:"sender_type"`
	SenderID   int64      `json:"sender_id"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
}
