package repository

import (
	"context"
	"database/sql"
	"time"

	"parcelbook/models"
)

type SQLTransactionRepo struct {
	DB *sql.DB
}

func NewSQLTransactionRepo(db *sql.DB) *SQLTransactionRepo {
	return &SQLTransactionRepo{DB: db}
}

// AppendTransaction relies on the unique idempotency_key index; NULL keys never conflict.
func (r *SQLTransactionRepo) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO transactions(id, branch_id, type, amount, description, booking_id, idempotency_key, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT(idempotency_key) DO NOTHING
	`, tx.ID, tx.BranchID, string(tx.Type), tx.Amount, tx.Description, tx.BookingID, tx.IdempotencyKey, tx.CreatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateIdempotencyKey
	}
	return nil
}

func (r *SQLTransactionRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var w whereBuilder
	if filter.BranchID != "" {
		w.add("branch_id = %s", filter.BranchID)
	}
	if filter.Type != "" {
		w.add("type = %s", string(filter.Type))
	}
	if filter.BookingID != "" {
		w.add("booking_id = %s", filter.BookingID)
	}
	if filter.From != nil {
		w.add("created_at >= %s", filter.From.UTC())
	}
	if filter.To != nil {
		w.add("created_at <= %s", filter.To.UTC())
	}

	query := `
		SELECT id, branch_id, type, amount, description, booking_id, idempotency_key, created_at
		FROM transactions` + w.sql() + ` ORDER BY created_at ASC, id ASC`
	args := w.args
	if filter.Limit > 0 {
		query += ` LIMIT ` + w.next()
		args = append(args, filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.BranchID, &tx.Type, &tx.Amount, &tx.Description,
			&tx.BookingID, &tx.IdempotencyKey, &tx.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &tx)
	}
	return out, rows.Err()
}
