package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shenikar/geo_incident_consensus/internal/apperror"
	"github.com/shenikar/geo_incident_consensus/internal/models"
	"github.com/shenikar/geo_incident_consensus/pkg/geo"
)

const incidentColumns = `
	i.id, i.category, i.description, i.latitude, i.longitude,
	i.severity, i.severity_color, i.status, i.created_by, i.created_at,
	i.resolved_at, i.priority, i.claimed_by, i.claimed_at,
	i.responder_note, i.responder_eta`

func scanIncident(row pgx.Row, extra ...any) (*models.Incident, error) {
	incident := &models.Incident{}
	dest := []any{
		&incident.ID,
		&incident.Category,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Severity,
		&incident.SeverityColor,
		&incident.Status,
		&incident.CreatedBy,
		&incident.CreatedAt,
		&incident.ResolvedAt,
		&incident.Priority,
		&incident.ClaimedBy,
		&incident.ClaimedAt,
		&incident.ResponderNote,
		&incident.ResponderETA,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return incident, nil
}

func (r *Repository) queryIncidents(ctx context.Context, method, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to "+method)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in %s: %w", method, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error list iteration in "+method)
	}
	return incidents, nil
}

// CreateIncident создает новую запись об инциденте в бд
func (r *Repository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (category, description, latitude, longitude, severity, severity_color, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.q(ctx).QueryRow(ctx, query,
		incident.Category,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.Severity,
		incident.SeverityColor,
		incident.Status,
		incident.CreatedBy,
		incident.CreatedAt,
	).Scan(&incident.ID)
	if err != nil {
		return mapError(err, "failed to create incident")
	}
	return nil
}

// GetIncident возвращает инцидент по id
func (r *Repository) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	return r.getIncident(ctx, `SELECT`+incidentColumns+` FROM incidents i WHERE i.id = $1`, id)
}

// LockIncident читает инцидент с блокировкой строки до конца транзакции
func (r *Repository) LockIncident(ctx context.Context, id int64) (*models.Incident, error) {
	return r.getIncident(ctx, `SELECT`+incidentColumns+` FROM incidents i WHERE i.id = $1 FOR UPDATE`, id)
}

func (r *Repository) getIncident(ctx context.Context, query string, id int64) (*models.Incident, error) {
	incident, err := scanIncident(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrIncidentNotFound
		}
		return nil, mapError(err, "failed to get incident by id")
	}
	return incident, nil
}

// FindMergeCandidates открытые инциденты категории, созданные не раньше since
func (r *Repository) FindMergeCandidates(ctx context.Context, category models.Category, since time.Time) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents i
		WHERE i.category = $1
			AND i.created_at >= $2
			AND i.status NOT IN ('resolved', 'false')
		ORDER BY i.created_at, i.id;`
	return r.queryIncidents(ctx, "FindMergeCandidates", query, category, since)
}

// EscalateSeverity повышает тяжесть; более низкий уровень не записывается
func (r *Repository) EscalateSeverity(ctx context.Context, id int64, severity models.Severity) error {
	query := `
		UPDATE incidents SET severity = $2, severity_color = $3
		WHERE id = $1;
	`
	cmdTag, err := r.q(ctx).Exec(ctx, query, id, severity, severity.Color())
	if err != nil {
		return mapError(err, "failed to escalate severity")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.ErrIncidentNotFound
	}
	return nil
}

// ListOpen инциденты внутри box, не закрытые и не признанные ложными, новые первыми
func (r *Repository) ListOpen(ctx context.Context, box geo.Box) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents i
		WHERE i.status NOT IN ('resolved', 'false')
			AND i.latitude BETWEEN $1 AND $2
			AND i.longitude BETWEEN $3 AND $4
		ORDER BY i.created_at DESC, i.id DESC;`
	return r.queryIncidents(ctx, "ListOpen", query,
		box.MinLatitude, box.MaxLatitude, box.MinLongitude, box.MaxLongitude)
}

// ListFeed открытые инциденты указанных категорий с числом связанных отчётов
func (r *Repository) ListFeed(ctx context.Context, categories []models.Category) ([]*models.FeedIncident, error) {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}

	query := `SELECT` + incidentColumns + `, COUNT(ir.id)
		FROM incidents i
		LEFT JOIN incident_reports ir ON ir.incident_id = i.id
		WHERE i.status NOT IN ('resolved', 'false')
			AND i.category = ANY($1)
		GROUP BY i.id
		ORDER BY i.created_at DESC, i.id DESC;`

	rows, err := r.q(ctx).Query(ctx, query, names)
	if err != nil {
		return nil, mapError(err, "failed to list responder feed")
	}
	defer rows.Close()

	feed := make([]*models.FeedIncident, 0)
	for rows.Next() {
		var related int
		incident, err := scanIncident(rows, &related)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		feed = append(feed, &models.FeedIncident{Incident: *incident, RelatedReports: related})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error feed iteration")
	}
	return feed, nil
}

// SetStatus устанавливает статус и время решения
func (r *Repository) SetStatus(ctx context.Context, id int64, status models.Status, resolvedAt *time.Time) error {
	query := `UPDATE incidents SET status = $2, resolved_at = $3 WHERE id = $1;`
	return r.execIncident(ctx, "failed to set status", query, id, status, resolvedAt)
}

// SetTrustStatus меняет статус по итогам голосования, не трогая resolved_at
func (r *Repository) SetTrustStatus(ctx context.Context, id int64, status models.Status) error {
	query := `UPDATE incidents SET status = $2 WHERE id = $1;`
	return r.execIncident(ctx, "failed to set trust status", query, id, status)
}

func (r *Repository) SetPriority(ctx context.Context, id int64, priority models.Priority) error {
	query := `UPDATE incidents SET priority = $2 WHERE id = $1;`
	return r.execIncident(ctx, "failed to set priority", query, id, priority)
}

// SetResponderUpdate записывает заметку и ETA ответчика (последняя запись побеждает)
func (r *Repository) SetResponderUpdate(ctx context.Context, id int64, note, eta *string) error {
	query := `
		UPDATE incidents SET
			responder_note = COALESCE($2, responder_note),
			responder_eta = COALESCE($3, responder_eta)
		WHERE id = $1;
	`
	return r.execIncident(ctx, "failed to set responder update", query, id, note, eta)
}

func (r *Repository) execIncident(ctx context.Context, msg, query string, id int64, args ...any) error {
	cmdTag, err := r.q(ctx).Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return mapError(err, msg)
	}
	// RowsAffected() == 0 значит инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return apperror.ErrIncidentNotFound
	}
	return nil
}

// ClaimIncident атомарно назначает ответчика, только если инцидент ещё никем не занят.
// Повторный захват тем же ответчиком считается успешным.
func (r *Repository) ClaimIncident(ctx context.Context, id, responderID int64, at time.Time) (bool, error) {
	query := `
		UPDATE incidents SET
			claimed_by = $2,
			claimed_at = $3,
			status = CASE WHEN status IN ('resolved', 'false') THEN status ELSE 'in_progress' END
		WHERE id = $1 AND claimed_by IS NULL
		RETURNING id;
	`
	var claimedID int64
	err := r.q(ctx).QueryRow(ctx, query, id, responderID, at).Scan(&claimedID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, mapError(err, "failed to claim incident")
	}

	// строка не обновилась: инцидента нет или он уже занят
	var holder *int64
	err = r.q(ctx).QueryRow(ctx, `SELECT claimed_by FROM incidents WHERE id = $1`, id).Scan(&holder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperror.ErrIncidentNotFound
		}
		return false, mapError(err, "failed to read claim holder")
	}
	return holder != nil && *holder == responderID, nil
}

// GetClaimView состояние работы над инцидентом с именем ответчика
func (r *Repository) GetClaimView(ctx context.Context, id int64) (*models.ClaimView, error) {
	query := `
		SELECT i.status, i.claimed_by IS NOT NULL, rs.name, i.claimed_at,
			i.priority, i.responder_note, i.responder_eta
		FROM incidents i
		LEFT JOIN responders rs ON rs.id = i.claimed_by
		WHERE i.id = $1;
	`
	view := &models.ClaimView{}
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&view.Status,
		&view.Claimed,
		&view.ResponderName,
		&view.ClaimedAt,
		&view.Priority,
		&view.Note,
		&view.ETA,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrIncidentNotFound
		}
		return nil, mapError(err, "failed to get claim view")
	}
	return view, nil
}

// CountByStatusSince число инцидентов по статусам, созданных начиная с since
func (r *Repository) CountByStatusSince(ctx context.Context, since time.Time) ([]models.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM incidents
		WHERE created_at >= $1
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.q(ctx).Query(ctx, query, since)
	if err != nil {
		return nil, mapError(err, "failed to get incident stats")
	}
	defer rows.Close()

	counts := make([]models.StatusCount, 0)
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, mapError(rows.Err(), "error stats iteration")
}

// CountActiveBySeverity открытые инциденты по категории и тяжести
func (r *Repository) CountActiveBySeverity(ctx context.Context) ([]models.SeverityCount, error) {
	query := `
		SELECT category, severity, COUNT(*)
		FROM incidents
		WHERE status NOT IN ('resolved', 'false')
		GROUP BY category, severity;
	`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "failed to count active incidents")
	}
	defer rows.Close()

	counts := make([]models.SeverityCount, 0)
	for rows.Next() {
		var c models.SeverityCount
		if err := rows.Scan(&c.Category, &c.Severity, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, mapError(rows.Err(), "error severity count iteration")
}
