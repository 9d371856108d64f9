package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"parcelbook/models"
)

type SQLBranchRepo struct {
	DB *sql.DB
}

func NewSQLBranchRepo(db *sql.DB) *SQLBranchRepo {
	return &SQLBranchRepo{DB: db}
}

const branchColumns = `id, name, code, address, phone, is_active, created_at, updated_at`

func scanBranch(row interface{ Scan(...interface{}) error }) (*models.Branch, error) {
	var b models.Branch
	err := row.Scan(&b.ID, &b.Name, &b.Code, &b.Address, &b.Phone, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SQLBranchRepo) CreateBranch(ctx context.Context, branch *models.Branch) error {
	existing, err := r.GetBranchByCode(ctx, branch.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateBranchCode
	}
	if branch.CreatedAt.IsZero() {
		branch.CreatedAt = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO branches(id, name, code, address, phone, is_active, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
	`, branch.ID, branch.Name, branch.Code, branch.Address, branch.Phone, branch.IsActive, branch.CreatedAt)
	return err
}

func (r *SQLBranchRepo) UpdateBranch(ctx context.Context, branch *models.Branch) error {
	existing, err := r.GetBranchByCode(ctx, branch.Code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != branch.ID {
		return ErrDuplicateBranchCode
	}

	now := time.Now().UTC()
	branch.UpdatedAt = &now
	_, err = r.DB.ExecContext(ctx, `
		UPDATE branches SET name=$1, code=$2, address=$3, phone=$4, is_active=$5, updated_at=$6
		WHERE id=$7
	`, branch.Name, branch.Code, branch.Address, branch.Phone, branch.IsActive, now, branch.ID)
	return err
}

func (r *SQLBranchRepo) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	b, err := scanBranch(r.DB.QueryRowContext(ctx, `SELECT `+branchColumns+` FROM branches WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *SQLBranchRepo) GetBranchByCode(ctx context.Context, code string) (*models.Branch, error) {
	b, err := scanBranch(r.DB.QueryRowContext(ctx,
		`SELECT `+branchColumns+` FROM branches WHERE UPPER(code)=$1`, strings.ToUpper(code)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *SQLBranchRepo) ListBranches(ctx context.Context, activeOnly bool) ([]*models.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Branch{}
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
