package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/models"
)

const voteUniqueConstraint = "verifications_incident_voter_key"

// HasVote проверяет, голосовал ли пользователь по инциденту
func (r *Repository) HasVote(ctx context.Context, incidentID, voterID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM verifications WHERE incident_id = $1 AND voter_id = $2);`
	if err := r.q(ctx).QueryRow(ctx, query, incidentID, voterID).Scan(&exists); err != nil {
		return false, mapError(err, "failed to check vote")
	}
	return exists, nil
}

// CreateVote сохраняет голос; повтор по той же паре даёт DUPLICATE_VOTE
func (r *Repository) CreateVote(ctx context.Context, vote *models.Vote) error {
	query := `
		INSERT INTO verifications (incident_id, voter_id, choice, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.q(ctx).QueryRow(ctx, query, vote.IncidentID, vote.VoterID, vote.Choice, vote.CreatedAt).Scan(&vote.ID)
	if err != nil {
		if isUniqueViolation(err, voteUniqueConstraint) {
			return apperror.ErrDuplicateVote
		}
		return mapError(err, "failed to create vote")
	}
	return nil
}

// TallyVotes пересчитывает голоса по всем записям инцидента
func (r *Repository) TallyVotes(ctx context.Context, incidentID int64) (models.Tally, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE choice = 'yes'),
			COUNT(*) FILTER (WHERE choice = 'no'),
			COUNT(*) FILTER (WHERE choice = 'not_sure')
		FROM verifications
		WHERE incident_id = $1;
	`
	var t models.Tally
	if err := r.q(ctx).QueryRow(ctx, query, incidentID).Scan(&t.Yes, &t.No, &t.NotSure); err != nil {
		return models.Tally{}, mapError(err, "failed to tally votes")
	}
	return t, nil
}

// VoteSummary подсчёт голосов с именами проголосовавших, в порядке голосования
func (r *Repository) VoteSummary(ctx context.Context, incidentID int64) (models.VoteSummary, error) {
	query := `
		SELECT v.choice, u.name
		FROM verifications v
		JOIN users u ON u.id = v.voter_id
		WHERE v.incident_id = $1
		ORDER BY v.created_at, v.id;
	`
	rows, err := r.q(ctx).Query(ctx, query, incidentID)
	if err != nil {
		return models.VoteSummary{}, mapError(err, "failed to load vote summary")
	}
	defer rows.Close()

	summary := models.VoteSummary{Verifiers: make([]models.Verifier, 0)}
	for rows.Next() {
		var (
			choice models.Choice
			name   string
		)
		if err := rows.Scan(&choice, &name); err != nil {
			return models.VoteSummary{}, fmt.Errorf("failed to scan vote row: %w", err)
		}
		switch choice {
		case models.ChoiceYes:
			summary.Yes++
		case models.ChoiceNo:
			summary.No++
		case models.ChoiceNotSure:
			summary.NotSure++
		}
		summary.Verifiers = append(summary.Verifiers, models.Verifier{Name: name, Choice: choice})
	}
	if err := rows.Err(); err != nil {
		return models.VoteSummary{}, mapError(err, "error vote iteration")
	}
	return summary, nil
}
