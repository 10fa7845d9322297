package models

import (
	"time"
)

// Category тип происшествия
type Category string

const (
	CategoryMedical  Category = "medical"
	CategoryFire     Category = "fire"
	CategoryCrime    Category = "crime"
	CategoryAccident Category = "accident"
	CategoryOther    Category = "other"
)

// AllCategories перечисляет категории в стабильном порядке
var AllCategories = []Category{CategoryMedical, CategoryFire, CategoryCrime, CategoryAccident, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryMedical, CategoryFire, CategoryCrime, CategoryAccident, CategoryOther:
		return true
	}
	return false
}

// Severity упорядоченный уровень тяжести: minor < medium < serious < critical
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMedium   Severity = "medium"
	SeveritySerious  Severity = "serious"
	SeverityCritical Severity = "critical"
)

// Rank возвращает порядковый номер уровня; неизвестные значения считаются minor
func (s Severity) Rank() int {
	switch s {
	case SeverityMedium:
		return 1
	case SeveritySerious:
		return 2
	case SeverityCritical:
		return 3
	}
	return 0
}

// Color цветовая метка уровня тяжести
func (s Severity) Color() string {
	switch s {
	case SeverityCritical:
		return "red"
	case SeveritySerious:
		return "orange"
	case SeverityMedium:
		return "yellow"
	case SeverityMinor:
		return "green"
	}
	return "yellow"
}

// Status общий статус инцидента: доверие сообщества плюс жизненный цикл у ответчиков
type Status string

const (
	StatusUnverified Status = "unverified"
	StatusVerified   Status = "verified"
	StatusFalse      Status = "false"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// IsTrust сообщает, является ли статус результатом голосования
func (s Status) IsTrust() bool {
	return s == StatusUnverified || s == StatusVerified || s == StatusFalse
}

// IsClosed закрытые инциденты не принимают новые отчёты
func (s Status) IsClosed() bool {
	return s == StatusResolved || s == StatusFalse
}

// ResponderSettable статусы, которые может выставить ответчик
func (s Status) ResponderSettable() bool {
	return s == StatusInProgress || s == StatusResolved || s == StatusFalse
}

// Priority приоритет, выставленный ответчиком
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Incident консолидированное происшествие
type Incident struct {
	ID            int64      `json:"id"`
	Category      Category   `json:"category"`
	Description   string     `json:"description"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Severity      Severity   `json:"severity"`
	SeverityColor string     `json:"severity_color"`
	Status        Status     `json:"status"`
	CreatedBy     int64      `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	Priority      *Priority  `json:"priority,omitempty"`
	ClaimedBy     *int64     `json:"claimed_by,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	ResponderNote *string    `json:"responder_note,omitempty"`
	ResponderETA  *string    `json:"responder_eta,omitempty"`
}

// NearbyIncident инцидент с расстоянием до точки запроса
type NearbyIncident struct {
	Incident
	DistanceMeters float64 `json:"distance_m"`
}

// FeedIncident инцидент в ленте ответчика
type FeedIncident struct {
	Incident
	RelatedReports int `json:"related_reports_count"`
}

// IncidentDetail полная карточка инцидента
type IncidentDetail struct {
	Incident Incident    `json:"incident"`
	Reports  []*Report   `json:"reports"`
	Summary  VoteSummary `json:"verification_summary"`
	Reporter string      `json:"reporter_name,omitempty"`
}

// ClaimView состояние работы над инцидентом для заявителя
type ClaimView struct {
	Status        Status     `json:"status"`
	Claimed       bool       `json:"claimed"`
	ResponderName *string    `json:"responder_name,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	Priority      *Priority  `json:"priority,omitempty"`
	Note          *string    `json:"note,omitempty"`
	ETA           *string    `json:"eta,omitempty"`
}

// StatusCount число инцидентов в статусе
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

// SeverityCount число активных инцидентов по категории и тяжести
type SeverityCount struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}
