package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"parcelbook/models"
)

type SQLPermissionRepo struct {
	DB *sql.DB
}

func NewSQLPermissionRepo(db *sql.DB) *SQLPermissionRepo {
	return &SQLPermissionRepo{DB: db}
}

func (r *SQLPermissionRepo) SaveReportPermission(ctx context.Context, perm *models.ReportPermission) error {
	perm.UpdatedAt = time.Now().UTC()
	reports, err := jsonText(perm.Reports)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO report_permissions(branch_id, reports, updated_at)
		VALUES($1,$2,$3)
		ON CONFLICT(branch_id) DO UPDATE SET reports = excluded.reports, updated_at = excluded.updated_at
	`, perm.BranchID, reports, perm.UpdatedAt)
	return err
}

func scanPermission(row interface{ Scan(...interface{}) error }) (*models.ReportPermission, error) {
	var p models.ReportPermission
	var reportsJSON []byte
	if err := row.Scan(&p.BranchID, &reportsJSON, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(reportsJSON) > 0 {
		if err := json.Unmarshal(reportsJSON, &p.Reports); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *SQLPermissionRepo) GetReportPermission(ctx context.Context, branchID string) (*models.ReportPermission, error) {
	p, err := scanPermission(r.DB.QueryRowContext(ctx,
		`SELECT branch_id, reports, updated_at FROM report_permissions WHERE branch_id=$1`, branchID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *SQLPermissionRepo) ListReportPermissions(ctx context.Context) ([]*models.ReportPermission, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT branch_id, reports, updated_at FROM report_permissions ORDER BY branch_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.ReportPermission{}
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
