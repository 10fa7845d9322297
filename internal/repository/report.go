package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

// CreateReport сохраняет отчёт под инцидентом
func (r *Repository) CreateReport(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO incident_reports (incident_id, reporter_id, description, severity, media_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.q(ctx).QueryRow(ctx, query,
		report.IncidentID,
		report.ReporterID,
		report.Description,
		report.Severity,
		report.MediaRef,
		report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return mapError(err, "failed to create report")
	}
	return nil
}

// ListReports отчёты инцидента, новые первыми
func (r *Repository) ListReports(ctx context.Context, incidentID int64) ([]*models.Report, error) {
	query := `
		SELECT ir.id, ir.incident_id, ir.reporter_id, u.name, ir.description,
			ir.severity, ir.media_ref, ir.created_at
		FROM incident_reports ir
		JOIN users u ON u.id = ir.reporter_id
		WHERE ir.incident_id = $1
		ORDER BY ir.created_at DESC, ir.id DESC;
	`
	rows, err := r.q(ctx).Query(ctx, query, incidentID)
	if err != nil {
		return nil, mapError(err, "failed to list reports")
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.IncidentID,
			&report.ReporterID,
			&report.ReporterName,
			&report.Description,
			&report.Severity,
			&report.MediaRef,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error report iteration")
	}
	return reports, nil
}
