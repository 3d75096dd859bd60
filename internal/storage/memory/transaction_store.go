package memory

import (
	"context"
	"sync"

	"aave-credit-lab/internal/domain"
	"aave-credit-lab/internal/storage"
)

// TransactionStore is an in-memory implementation of
// storage.TransactionStore. The log is append-only and reads return copies.
type TransactionStore struct {
	mu  sync.RWMutex
	log []*domain.Transaction
}

// NewTransactionStore creates a new in-memory transaction store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

// Compile-time interface check.
var _ storage.TransactionStore = (*TransactionStore)(nil)

// InsertBulk appends a batch of transactions to the log. The whole batch
// is rejected if any record lacks a wallet identifier.
func (s *TransactionStore) InsertBulk(_ context.Context, txs []*domain.Transaction) error {
	for _, tx := range txs {
		if tx == nil || tx.Wallet == "" {
			return storage.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range txs {
		cp := *tx
		s.log = append(s.log, &cp)
	}
	return nil
}

// GetAll retrieves the full transaction log in insertion order.
func (s *TransactionStore) GetAll(_ context.Context) ([]*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Transaction, len(s.log))
	for i, tx := range s.log {
		cp := *tx
		result[i] = &cp
	}
	return result, nil
}

// GetByWallet retrieves one wallet's transactions in insertion order.
func (s *TransactionStore) GetByWallet(_ context.Context, wallet string) ([]*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Transaction
	for _, tx := range s.log {
		if tx.Wallet == wallet {
			cp := *tx
			result = append(result, &cp)
		}
	}
	return result, nil
}

// CountByWallet returns the number of stored transactions per wallet.
func (s *TransactionStore) CountByWallet(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, tx := range s.log {
		counts[tx.Wallet]++
	}
	return counts, nil
}
