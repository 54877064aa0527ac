package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cedralab/domain/core"
	"cedralab/domain/stats"
)

// ReportRepository persists statistics reports
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Save inserts a report. The full report is stored as JSON alongside the
// queryable columns.
func (r *ReportRepository) Save(ctx context.Context, report *stats.StatisticsReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO statistics_reports (
			id, fingerprint, length, bins, chi_squared, discrepancy, payload, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		report.ID.String(),
		report.Fingerprint.String(),
		report.Params.Length,
		report.Params.Bins,
		report.Uniformity.ChiSquared,
		report.Discrepancy.Discrepancy,
		payload,
		report.ComputedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// Get returns a report by ID, or nil when it does not exist.
func (r *ReportRepository) Get(ctx context.Context, id core.ReportID) (*stats.StatisticsReport, error) {
	query := `
		SELECT payload
		FROM statistics_reports
		WHERE id = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report stats.StatisticsReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// ListRecent returns up to limit reports, newest first.
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*stats.StatisticsReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT payload
		FROM statistics_reports
		ORDER BY computed_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*stats.StatisticsReport
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		var report stats.StatisticsReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// FindByFingerprint returns reports computed from identical parameters.
func (r *ReportRepository) FindByFingerprint(ctx context.Context, fingerprint core.Hash) ([]*stats.StatisticsReport, error) {
	query := `
		SELECT payload
		FROM statistics_reports
		WHERE fingerprint = $1
		ORDER BY computed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, fingerprint.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query reports by fingerprint: %w", err)
	}
	defer rows.Close()

	var reports []*stats.StatisticsReport
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		var report stats.StatisticsReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// Delete removes a report by ID.
func (r *ReportRepository) Delete(ctx context.Context, id core.ReportID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statistics_reports WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
