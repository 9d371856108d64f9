package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// Transaction is an append-only ledger entry attributed to a branch.
type Transaction struct {
	ID             string          `json:"id" bson:"_id" db:"id"`
	BranchID       string          `json:"branch_id" bson:"branch_id" db:"branch_id"`
	Type           TransactionType `json:"type" bson:"type" db:"type"`
	Amount         decimal.Decimal `json:"amount" bson:"amount" db:"amount"`
	Description    string          `json:"description" bson:"description" db:"description"`
	BookingID      *string         `json:"booking_id,omitempty" bson:"booking_id,omitempty" db:"booking_id"`
	IdempotencyKey *string         `json:"-" bson:"idempotency_key,omitempty" db:"idempotency_key"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}

type TransactionFilter struct {
	BranchID  string
	Type      TransactionType
	BookingID string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// BranchBalance is derived from the ledger, never stored.
type BranchBalance struct {
	BranchID string          `json:"branch_id"`
	Credits  decimal.Decimal `json:"credits"`
	Debits   decimal.Decimal `json:"debits"`
	Net      decimal.Decimal `json:"net"`
	Entries  int             `json:"entries"`
}

func NewBranchBalance(branchID string, txs []*Transaction) BranchBalance {
	bal := BranchBalance{BranchID: branchID, Credits: decimal.Zero, Debits: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case Credit:
			bal.Credits = bal.Credits.Add(tx.Amount)
		case Debit:
			bal.Debits = bal.Debits.Add(tx.Amount)
		}
		bal.Entries++
	}
	bal.Net = bal.Credits.Sub(bal.Debits)
	return bal
}
