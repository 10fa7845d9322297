package models

import "time"

// Choice вариант ответа при проверке
type Choice string

const (
	ChoiceYes     Choice = "yes"
	ChoiceNo      Choice = "no"
	ChoiceNotSure Choice = "not_sure"
)

func (c Choice) Valid() bool {
	return c == ChoiceYes || c == ChoiceNo || c == ChoiceNotSure
}

// Vote голос одного пользователя по одному инциденту
type Vote struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	VoterID    int64     `json:"voter_id"`
	Choice     Choice    `json:"choice"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tally подсчёт голосов
type Tally struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	NotSure int `json:"not_sure"`
}

// Status выводит статус доверия из полного набора голосов
func (t Tally) Status() Status {
	switch {
	case t.Yes >= 3 && t.Yes > t.No:
		return StatusVerified
	case t.No >= 3 && t.No > t.Yes:
		return StatusFalse
	default:
		return StatusUnverified
	}
}

// Verifier проголосовавший пользователь и его выбор
type Verifier struct {
	Name   string `json:"name"`
	Choice Choice `json:"choice"`
}

// VoteSummary подсчёт с именами проголосовавших
type VoteSummary struct {
	Tally
	Verifiers []Verifier `json:"verifiers"`
}

// VoteOutcome результат голосования
type VoteOutcome struct {
	Accepted bool   `json:"accepted"`
	Tally    Tally  `json:"tally"`
	Status   Status `json:"incident_status"`
}
