package clickhouse

import (
	"context"
	"fmt"

	"aave-credit-lab/internal/domain"
	"aave-credit-lab/internal/storage"
)

// TransactionStore implements storage.TransactionStore using ClickHouse,
// sized for archive-scale protocol logs. A monotonic seq column preserves
// insertion order, since MergeTree has no serial type.
type TransactionStore struct {
	conn *Conn
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(conn *Conn) *TransactionStore {
	return &TransactionStore{conn: conn}
}

// Compile-time interface check.
var _ storage.TransactionStore = (*TransactionStore)(nil)

// InsertBulk appends a batch of transactions using the native batch API.
// Sequence numbers continue from the current maximum.
func (s *TransactionStore) InsertBulk(ctx context.Context, txs []*domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	for _, tx := range txs {
		if tx == nil || tx.Wallet == "" {
			return storage.ErrInvalidInput
		}
	}

	next, err := s.nextSeq(ctx)
	if err != nil {
		return err
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO wallet_transactions (
			seq, user_wallet, action, ts, amount, asset_symbol, asset_price_usd
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for i, tx := range txs {
		err = batch.Append(
			next+uint64(i),
			tx.Wallet,
			tx.Action,
			tx.Timestamp,
			tx.Amount,
			tx.Asset,
			tx.PriceUSD,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetAll retrieves the full transaction log in insertion order.
func (s *TransactionStore) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT user_wallet, action, ts, amount, asset_symbol, asset_price_usd
		FROM wallet_transactions
		ORDER BY seq ASC
	`

	rows, err := s.conn.Query(ctx, query)
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
		WHERE user_wallet = ?
		ORDER BY seq ASC
	`

	rows, err := s.conn.Query(ctx, query, wallet)
	if err != nil {
		return nil, fmt.Errorf("query transactions by wallet: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CountByWallet returns the number of stored transactions per wallet.
func (s *TransactionStore) CountByWallet(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT user_wallet, count(*)
		FROM wallet_transactions
		GROUP BY user_wallet
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count transactions by wallet: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var wallet string
		var count uint64
		if err := rows.Scan(&wallet, &count); err != nil {
			return nil, fmt.Errorf("scan wallet count: %w", err)
		}
		counts[wallet] = int64(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet counts: %w", err)
	}
	return counts, nil
}

// nextSeq returns the next free sequence number.
func (s *TransactionStore) nextSeq(ctx context.Context) (uint64, error) {
	var maxSeq uint64
	err := s.conn.QueryRow(ctx, `SELECT max(seq) FROM wallet_transactions`).Scan(&maxSeq)
	if err != nil {
		return 0, fmt.Errorf("query max seq: %w", err)
	}

	var count uint64
	if err := s.conn.QueryRow(ctx, `SELECT count(*) FROM wallet_transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("query row count: %w", err)
	}
	if count == 0 {
		return 0, nil // max(seq) of an empty table is 0, same as the first seq
	}
	return maxSeq + 1, nil
}

// chRows matches the subset of driver.Rows used by scanTransactions.
type chRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// scanTransactions scans multiple rows.
func scanTransactions(rows chRows) ([]*domain.Transaction, error) {
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
