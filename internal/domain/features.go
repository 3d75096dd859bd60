package domain

// WalletFeatures accumulates one wallet's behavior over a single pass of
// the transaction log. Built once per run, treated as immutable afterward.
// Invariant: len(Transactions) equals the sum of the per-action counts plus
// unrecognized actions, and FirstTx <= LastTx whenever the wallet has at
// least one transaction.
type WalletFeatures struct {
	Wallet string

	// Full event sequence in input order.
	Transactions []*Transaction

	// Per-action counts.
	Deposits     int
	Borrows      int
	Repays       int
	Redeems      int
	Liquidations int

	// Per-action USD sums.
	TotalDepositUSD float64
	TotalBorrowUSD  float64
	TotalRepayUSD   float64

	// Distinct asset symbols seen.
	Assets map[string]struct{}

	// Min/max transaction timestamps, valid when len(Transactions) > 0.
	FirstTx int64
	LastTx  int64

	// Per-transaction sequences in input order.
	Timestamps []int64
	AmountsUSD []float64
}

// TotalVolumeUSD sums the per-transaction USD amounts.
func (f *WalletFeatures) TotalVolumeUSD() float64 {
	total := 0.0
	for _, v := range f.AmountsUSD {
		total += v
	}
	return total
}
