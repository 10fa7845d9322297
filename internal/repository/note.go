package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

func (r *Repository) CreateNote(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO incident_notes (incident_id, sender_type, sender_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.q(ctx).QueryRow(ctx, query,
		note.IncidentID,
		note.SenderType,
		note.SenderID,
		note.Message,
		note.CreatedAt,
	).Scan(&note.ID)
	if err != nil {
		return mapError(err, "failed to create note")
	}
	return nil
}

// ListNotes журнал заметок инцидента в порядке создания
func (r *Repository) ListNotes(ctx context.Context, incidentID int64) ([]*models.Note, error) {
	query := `
		SELECT id, incident_id, sender_type, sender_id, message, created_at
		FROM incident_notes
		WHERE incident_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.q(ctx).Query(ctx, query, incidentID)
	if err != nil {
		return nil, mapError(err, "failed to list notes")
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		n := &models.Note{}
		if err := rows.Scan(&n.ID, &n.IncidentID, &n.SenderType, &n.SenderID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error note iteration")
	}
	return notes, nil
}
