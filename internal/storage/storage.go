// Package storage defines the persistence interface for resolved transactions.
package storage

import (
	"context"
	"time"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

// StoredTransaction is a persisted transaction row.
type StoredTransaction struct {
	ID        int64
	UserID    int64
	Title     string
	Category  domain.Category
	Amount    int64
	IsIncome  bool
	TxDate    time.Time
	CreatedAt time.Time
}

// Store persists resolved transactions and answers balance queries.
type Store interface {
	// InsertTransaction saves a resolved transaction for a user and returns
	// the new row ID.
	InsertTransaction(ctx context.Context, userID int64, tx domain.ParsedTransaction) (int64, error)

	// Balance returns the user's running balance: income minus expenses.
	Balance(ctx context.Context, userID int64) (int64, error)

	// History returns the user's most recent transactions, newest first.
	History(ctx context.Context, userID int64, limit int) ([]StoredTransaction, error)

	// Close releases underlying resources.
	Close()
}
