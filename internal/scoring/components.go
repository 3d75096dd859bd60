package scoring

import (
	"math"
	"sort"

	"aave-credit-lab/internal/domain"
)

// Component formula constants.
const (
	volumeLogScale     = 20 // ln(1+n) multiplier, saturates near n=147
	repayRatioScale    = 80 // repay/borrow ratio multiplier
	repayRatioBase     = 20 // floor for wallets that borrowed at least once
	neutralRepayment   = 70 // wallets that never borrowed
	neutralConsistency = 50 // wallets with a single transaction
	diversityPerAsset  = 25 // saturates at 4 distinct assets
	liquidationPenalty = 20 // points lost per liquidation
	maturityFullDays   = 30 // wallet age span for a full maturity score
	secondsPerDay      = 86400
)

// ComputeComponents derives the six behavioral sub-scores for one wallet.
// Undefined for wallets with zero transactions; callers must skip those.
func ComputeComponents(f *domain.WalletFeatures) domain.ComponentScores {
	totalTxs := len(f.Transactions)

	return domain.ComponentScores{
		TransactionVolume:   volumeScore(totalTxs),
		RepaymentBehavior:   repaymentScore(f.Borrows, f.Repays),
		PortfolioDiversity:  diversityScore(len(f.Assets)),
		ActivityConsistency: consistencyScore(f.Timestamps),
		RiskManagement:      riskScore(f.Liquidations, f.Deposits, f.Redeems),
		WalletMaturity:      maturityScore(f.FirstTx, f.LastTx),

		TotalTransactions: totalTxs,
		TotalVolumeUSD:    f.TotalVolumeUSD(),
		AssetsCount:       len(f.Assets),
	}
}

// volumeScore grows with ln(1+n) and saturates at 100.
func volumeScore(totalTxs int) float64 {
	return math.Min(100, math.Log1p(float64(totalTxs))*volumeLogScale)
}

// repaymentScore rewards repays relative to borrows. A wallet that never
// borrowed gets a neutral 70 regardless of its repay count.
func repaymentScore(borrows, repays int) float64 {
	if borrows == 0 {
		return neutralRepayment
	}
	ratio := float64(repays) / float64(borrows)
	return math.Min(100, ratio*repayRatioScale+repayRatioBase)
}

func diversityScore(assets int) float64 {
	return math.Min(100, float64(assets)*diversityPerAsset)
}

// consistencyScore inverts the coefficient of variation of the sorted
// inter-transaction intervals, scaled by 50: a perfectly regular cadence
// scores 100, bursty activity trends toward 0. A single transaction scores
// a neutral 50. When every transaction shares one timestamp the mean
// interval is zero; a perfectly simultaneous burst is treated as perfectly
// regular (100) rather than letting the division produce NaN.
func consistencyScore(timestamps []int64) float64 {
	if len(timestamps) < 2 {
		return neutralConsistency
	}

	sorted := make([]int64, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	intervals := make([]float64, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		intervals[i-1] = float64(sorted[i] - sorted[i-1])
	}

	mean := computeMean(intervals)
	if mean == 0 {
		return 100
	}

	return 100 - math.Min(100, computeStddev(intervals, mean)/mean*50)
}

// riskScore starts at 100, loses 20 points per liquidation (floor 0), then
// applies a deposit/redeem balance bonus multiplier in [0.8, 1.2] when the
// wallet has both. The bonus can push the value above 100; the aggregate
// clamp at 1000 absorbs the overshoot and the component is reported as-is.
func riskScore(liquidations, deposits, redeems int) float64 {
	score := math.Max(0, 100-float64(liquidations)*liquidationPenalty)

	if deposits > 0 && redeems > 0 {
		lo, hi := float64(deposits), float64(redeems)
		if lo > hi {
			lo, hi = hi, lo
		}
		score *= 0.8 + 0.4*(lo/hi)
	}

	return score
}

// maturityScore ramps linearly with the span between first and last
// transaction, reaching 100 at 30 days. A single transaction scores 0.
func maturityScore(firstTx, lastTx int64) float64 {
	ageDays := float64(lastTx-firstTx) / secondsPerDay
	return math.Min(100, ageDays/maturityFullDays*100)
}

// computeMean calculates the arithmetic mean.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeStddev calculates population standard deviation (n denominator).
// Consistency scoring treats the wallet's intervals as the full population,
// not a sample.
func computeStddev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
