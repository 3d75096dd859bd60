package scoring

import (
	"strconv"

	"aave-credit-lab/internal/domain"
)

// fixedPointScale converts raw 18-decimal token amounts to whole units.
// The Aave export encodes amounts this way regardless of the asset's real
// decimals; the convention must be preserved for score comparability.
const fixedPointScale = 1e18

// ExtractFeatures groups the raw transaction log by wallet and accumulates
// counts, USD sums, timestamps and the distinct asset set in one forward
// pass. Input order is preserved in the per-wallet sequences. The pass is
// total: malformed amount/price fields degrade the record to zero value
// with asset "UNKNOWN" instead of dropping it from the counts.
func ExtractFeatures(txs []*domain.Transaction) map[string]*domain.WalletFeatures {
	features := make(map[string]*domain.WalletFeatures)

	for _, tx := range txs {
		f := features[tx.Wallet]
		if f == nil {
			f = &domain.WalletFeatures{
				Wallet: tx.Wallet,
				Assets: make(map[string]struct{}),
			}
			features[tx.Wallet] = f
		}
		accumulate(f, tx)
	}

	return features
}

func accumulate(f *domain.WalletFeatures, tx *domain.Transaction) {
	amountUSD, asset := usdValue(tx)

	first := len(f.Transactions) == 0
	f.Transactions = append(f.Transactions, tx)
	f.Timestamps = append(f.Timestamps, tx.Timestamp)
	f.AmountsUSD = append(f.AmountsUSD, amountUSD)
	f.Assets[asset] = struct{}{}

	if first || tx.Timestamp < f.FirstTx {
		f.FirstTx = tx.Timestamp
	}
	if first || tx.Timestamp > f.LastTx {
		f.LastTx = tx.Timestamp
	}

	switch tx.Action {
	case domain.ActionDeposit:
		f.Deposits++
		f.TotalDepositUSD += amountUSD
	case domain.ActionBorrow:
		f.Borrows++
		f.TotalBorrowUSD += amountUSD
	case domain.ActionRepay:
		f.Repays++
		f.TotalRepayUSD += amountUSD
	case domain.ActionRedeem:
		f.Redeems++
	case domain.ActionLiquidation:
		f.Liquidations++
	}
}

// usdValue computes amount * price / 1e18 for a transaction. A missing
// price defaults to 0 (the record still counts at zero value); an
// unparseable amount or price, or a missing asset symbol, degrades the
// whole record to zero with asset "UNKNOWN".
func usdValue(tx *domain.Transaction) (float64, string) {
	amount, ok := parseAmount(tx.Amount)
	if !ok || tx.Asset == "" {
		return 0, domain.AssetUnknown
	}

	price := 0.0
	if tx.PriceUSD != "" {
		if price, ok = parseAmount(tx.PriceUSD); !ok {
			return 0, domain.AssetUnknown
		}
	}

	return amount * price / fixedPointScale, tx.Asset
}

// parseAmount parses a decimal string, reporting failure instead of
// guessing. The degrade-to-zero policy is the caller's visible branch.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
