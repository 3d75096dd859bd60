package storage

import (
	"context"

	"aave-credit-lab/internal/domain"
)

// TransactionStore provides access to the raw wallet transaction log.
// Implementations must return transactions in insertion order so feature
// extraction sees the same sequence the protocol exported.
type TransactionStore interface {
	// InsertBulk appends a batch of transactions to the log.
	// Returns ErrInvalidInput if any record lacks a wallet identifier.
	InsertBulk(ctx context.Context, txs []*domain.Transaction) error

	// GetAll retrieves the full transaction log in insertion order.
	GetAll(ctx context.Context) ([]*domain.Transaction, error)

	// GetByWallet retrieves one wallet's transactions in insertion order.
	// An unknown wallet yields an empty slice, not an error.
	GetByWallet(ctx context.Context, wallet string) ([]*domain.Transaction, error)

	// CountByWallet returns the number of stored transactions per wallet.
	CountByWallet(ctx context.Context) (map[string]int64, error)
}
