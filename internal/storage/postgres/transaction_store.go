package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"aave-credit-lab/internal/domain"
	"aave-credit-lab/internal/storage"
)

// TransactionStore implements storage.TransactionStore using PostgreSQL.
// The BIGSERIAL id preserves insertion order for reads.
type TransactionStore struct {
	pool *Pool
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(pool *Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TransactionStore = (*TransactionStore)(nil)

// InsertBulk appends a batch of transactions using a pipelined batch.
func (s *TransactionStore) InsertBulk(ctx context.Context, txs []*domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	for _, tx := range txs {
		if tx == nil || tx.Wallet == "" {
			return storage.ErrInvalidInput
		}
	}

	query := `
		INSERT INTO wallet_transactions (
			user_wallet, action, ts, amount, asset_symbol, asset_price_usd
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, tx := range txs {
		batch.Queue(query, tx.Wallet, tx.Action, tx.Timestamp, tx.Amount, tx.Asset, tx.PriceUSD)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range txs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert transaction batch: %w", err)
		}
	}
	return nil
}

// GetAll retrieves the full transaction log in insertion order.
func (s *TransactionStore) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT user_wallet, action, ts, amount, asset_symbol, asset_price_usd
		FROM wallet_transactions
		ORDER BY id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetByWallet retrieves one wallet's transactions in insertion order.
func (s *TransactionStore) GetByWallet(ctx context.Context, wallet string) ([]*domain.Transaction, error) {
	query := `
		SELECT user_wallet, action, ts, amount, asset_symbol, asset_price_usd
		FROM wallet_transactions
		WHERE user_wallet = $1
		ORDER BY id ASC
	`

	rows, err := s.pool.Query(ctx, query, wallet)
	if err != nil {
		return nil, fmt.Errorf("query transactions by wallet: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CountByWallet returns the number of stored transactions per wallet.
func (s *TransactionStore) CountByWallet(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT user_wallet, COUNT(*)
		FROM wallet_transactions
		GROUP BY user_wallet
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count transactions by wallet: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var wallet string
		var count int64
		if err := rows.Scan(&wallet, &count); err != nil {
			return nil, fmt.Errorf("scan wallet count: %w", err)
		}
		counts[wallet] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet counts: %w", err)
	}
	return counts, nil
}

// scanTransactions scans multiple rows.
func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txs []*domain.Transaction

	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.Wallet, &tx.Action, &tx.Timestamp, &tx.Amount, &tx.Asset, &tx.PriceUSD); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
