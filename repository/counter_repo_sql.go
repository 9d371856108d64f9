package repository

import (
	"context"
	"database/sql"
)

type SQLCounterRepo struct {
	DB *sql.DB
}

func NewSQLCounterRepo(db *sql.DB) *SQLCounterRepo {
	return &SQLCounterRepo{DB: db}
}

// IncrementCounter is a single upsert statement, so concurrent callers serialize on the row lock.
func (r *SQLCounterRepo) IncrementCounter(ctx context.Context, branchID, entity, field string) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO counters(branch_id, entity, field, count)
		VALUES($1,$2,$3,1)
		ON CONFLICT(branch_id, entity, field) DO UPDATE SET count = counters.count + 1
		RETURNING count
	`, branchID, entity, field).Scan(&count)
	return count, err
}

func (r *SQLCounterRepo) GetCounter(ctx context.Context, branchID, entity, field string) (int64, bool, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT count FROM counters WHERE branch_id=$1 AND entity=$2 AND field=$3
	`, branchID, entity, field).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}
