package repository

import (
	"context"

	"parcelbook/models"
)

// TransactionRepository is append-only: no update, no delete.
type TransactionRepository interface {
	// AppendTransaction returns ErrDuplicateIdempotencyKey if the key was already used.
	AppendTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}
