package memory

import (
	"context"
	"errors"
	"testing"

	"aave-credit-lab/internal/domain"
	"aave-credit-lab/internal/storage"
)

func tx(wallet, action string, ts int64) *domain.Transaction {
	return &domain.Transaction{
		Wallet:    wallet,
		Action:    action,
		Timestamp: ts,
		Amount:    "1000000000000000000",
		Asset:     "USDC",
		PriceUSD:  "1",
	}
}

func TestInsertBulkAndGetAll(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	batch := []*domain.Transaction{
		tx("0xaaa", domain.ActionDeposit, 300),
		tx("0xbbb", domain.ActionBorrow, 100),
		tx("0xaaa", domain.ActionRepay, 200),
	}
	if err := store.InsertBulk(ctx, batch); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetAll returned %d rows, want 3", len(got))
	}

	// Insertion order, not timestamp order.
	for i, want := range batch {
		if got[i].Wallet != want.Wallet || got[i].Timestamp != want.Timestamp {
			t.Errorf("row %d: got %s@%d, want %s@%d",
				i, got[i].Wallet, got[i].Timestamp, want.Wallet, want.Timestamp)
		}
	}
}

func TestGetAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	if err := store.InsertBulk(ctx, []*domain.Transaction{tx("0xaaa", domain.ActionDeposit, 100)}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	first, _ := store.GetAll(ctx)
	first[0].Wallet = "mutated"

	second, _ := store.GetAll(ctx)
	if second[0].Wallet != "0xaaa" {
		t.Error("mutating a returned transaction leaked into the store")
	}
}

func TestGetByWallet(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	err := store.InsertBulk(ctx, []*domain.Transaction{
		tx("0xaaa", domain.ActionDeposit, 100),
		tx("0xbbb", domain.ActionDeposit, 200),
		tx("0xaaa", domain.ActionBorrow, 300),
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByWallet(ctx, "0xaaa")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows for 0xaaa, want 2", len(got))
	}
	if got[0].Action != domain.ActionDeposit || got[1].Action != domain.ActionBorrow {
		t.Errorf("rows out of insertion order: %s, %s", got[0].Action, got[1].Action)
	}

	none, err := store.GetByWallet(ctx, "0xmissing")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown wallet returned %d rows, want 0", len(none))
	}
}

func TestCountByWallet(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	err := store.InsertBulk(ctx, []*domain.Transaction{
		tx("0xaaa", domain.ActionDeposit, 100),
		tx("0xaaa", domain.ActionBorrow, 200),
		tx("0xaaa", domain.ActionRepay, 300),
		tx("0xbbb", domain.ActionDeposit, 400),
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	counts, err := store.CountByWallet(ctx)
	if err != nil {
		t.Fatalf("CountByWallet failed: %v", err)
	}
	if counts["0xaaa"] != 3 || counts["0xbbb"] != 1 {
		t.Errorf("counts = %v, want 0xaaa:3 0xbbb:1", counts)
	}
}

func TestInsertBulkRejectsMissingWallet(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	err := store.InsertBulk(ctx, []*domain.Transaction{
		tx("0xaaa", domain.ActionDeposit, 100),
		tx("", domain.ActionBorrow, 200),
	})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// The whole batch is rejected, not just the bad record.
	got, _ := store.GetAll(ctx)
	if len(got) != 0 {
		t.Errorf("store holds %d rows after rejected batch, want 0", len(got))
	}
}

func TestInsertBulkEmptyBatch(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore()

	if err := store.InsertBulk(ctx, nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
	got, _ := store.GetAll(ctx)
	if len(got) != 0 {
		t.Errorf("store holds %d rows, want 0", len(got))
	}
}
