package webhook

import (
	"time"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

// EventType тип события инцидента для внешних диспетчерских систем
type EventType string

const (
	EventIncidentCreated   EventType = "incident.created"
	EventIncidentMerged    EventType = "incident.merged"
	EventIncidentEscalated EventType = "incident.escalated"
	EventStatusChanged     EventType = "incident.status_changed"
	EventIncidentClaimed   EventType = "incident.claimed"
)

// IncidentEvent полезная нагрузка вебхука
type IncidentEvent struct {
	Type        EventType       `json:"type"`
	IncidentID  int64           `json:"incident_id"`
	Category    models.Category `json:"category,omitempty"`
	Severity    models.Severity `json:"severity,omitempty"`
	Status      models.Status   `json:"status,omitempty"`
	ResponderID *int64          `json:"responder_id,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
