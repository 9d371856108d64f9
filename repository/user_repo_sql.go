package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"parcelbook/models"
)

type SQLUserRepo struct {
	DB *sql.DB
}

func NewSQLUserRepo(db *sql.DB) *SQLUserRepo {
	return &SQLUserRepo{DB: db}
}

const userColumns = `id, name, email, role, branch_id, password_hash, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.BranchID, &user.Password, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser expects user.Password to already hold the bcrypt hash.
func (r *SQLUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	existingUser, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return ErrEmailExists
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO app_user (id, name, email, role, branch_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name, strings.ToLower(user.Email), string(user.Role), user.BranchID, user.Password, user.CreatedAt)
	return err
}

func (r *SQLUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM app_user WHERE email=$1`, strings.ToLower(email)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (r *SQLUserRepo) GetUserByID(ctx context.Context, id string) (*models.AppUser, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM app_user WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (r *SQLUserRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM app_user`).Scan(&n)
	return n, err
}
