package reporting

import (
	"fmt"
	"math"
	"sort"
	"time"

	"aave-credit-lab/internal/domain"
)

// Ten fixed 100-wide distribution buckets across the 0-1000 score range.
const (
	bucketWidth = 100
	bucketCount = 10
)

// defaultRankSize is the number of wallets in each ranking view.
const defaultRankSize = 10

// Generator builds a Report from the final score map.
type Generator struct {
	rankSize int
	now      func() time.Time // injectable clock for deterministic output
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{
		rankSize: defaultRankSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithRankSize sets the number of wallets in the top/bottom rankings.
func (g *Generator) WithRankSize(n int) *Generator {
	if n > 0 {
		g.rankSize = n
	}
	return g
}

// Generate produces the complete report. An empty score map yields a
// report with TotalWallets = 0, empty sections and zeroed statistics.
func (g *Generator) Generate(scores map[string]*domain.CreditScore) *Report {
	rows := buildRows(scores)

	return &Report{
		GeneratedAt:   g.now(),
		Summary:       buildSummary(rows),
		WalletScores:  rows,
		Distribution:  buildDistribution(rows),
		RiskTiers:     buildRiskTiers(rows),
		TopWallets:    topRanking(rows, g.rankSize),
		BottomWallets: bottomRanking(rows, g.rankSize),
	}
}

// buildRows flattens the score map into rows sorted by score DESC,
// wallet ASC for deterministic output.
func buildRows(scores map[string]*domain.CreditScore) []WalletScoreRow {
	rows := make([]WalletScoreRow, 0, len(scores))
	for _, s := range scores {
		c := s.Components
		rows = append(rows, WalletScoreRow{
			Wallet:      s.Wallet,
			CreditScore: s.Score,

			TransactionVolume:   c.TransactionVolume,
			RepaymentBehavior:   c.RepaymentBehavior,
			PortfolioDiversity:  c.PortfolioDiversity,
			ActivityConsistency: c.ActivityConsistency,
			RiskManagement:      c.RiskManagement,
			WalletMaturity:      c.WalletMaturity,

			TotalTransactions: c.TotalTransactions,
			TotalVolumeUSD:    c.TotalVolumeUSD,
			AssetsCount:       c.AssetsCount,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreditScore != rows[j].CreditScore {
			return rows[i].CreditScore > rows[j].CreditScore
		}
		return rows[i].Wallet < rows[j].Wallet
	})

	return rows
}

// buildSummary computes aggregate statistics. Guarded against the empty
// set: zero wallets yields all-zero statistics instead of dividing by zero.
func buildSummary(rows []WalletScoreRow) Summary {
	n := len(rows)
	if n == 0 {
		return Summary{}
	}

	values := make([]float64, n)
	for i, r := range rows {
		values[i] = r.CreditScore
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := computeMean(values)

	return Summary{
		TotalWallets: n,
		AverageScore: round2(mean),
		MedianScore:  round2(computeMedian(sorted)),
		MinScore:     sorted[0],
		MaxScore:     sorted[n-1],
		StdScore:     round2(computeStddev(values, mean)),
	}
}

// buildDistribution counts wallets per fixed 100-wide bucket. Buckets are
// half-open [lo, hi); the final bucket also includes an exact 1000.
func buildDistribution(rows []WalletScoreRow) []DistributionBucket {
	buckets := make([]DistributionBucket, bucketCount)
	for i := range buckets {
		lo := float64(i * bucketWidth)
		hi := lo + bucketWidth
		buckets[i] = DistributionBucket{
			Label: fmt.Sprintf("%d-%d", int(lo), int(hi)),
			Lo:    lo,
			Hi:    hi,
		}
	}

	for _, r := range rows {
		idx := int(r.CreditScore / bucketWidth)
		if idx >= bucketCount {
			idx = bucketCount - 1 // a perfect 1000 lands in 900-1000
		}
		buckets[idx].Count++
	}

	if len(rows) > 0 {
		total := float64(len(rows))
		for i := range buckets {
			buckets[i].Percentage = round2(float64(buckets[i].Count) / total * 100)
		}
	}

	return buckets
}

// tierBoundary defines one behavioral tier as [Lo, Hi); the elite tier
// includes an exact 1000.
type tierBoundary struct {
	name   string
	lo, hi float64
}

var tierBoundaries = []tierBoundary{
	{TierHighRisk, 0, 400},
	{TierModerate, 400, 600},
	{TierGood, 600, 800},
	{TierElite, 800, 1000},
}

// buildRiskTiers partitions wallets into tiers and averages each tier's
// components. Every scored wallet lands in exactly one tier.
func buildRiskTiers(rows []WalletScoreRow) []RiskTierRow {
	tiers := make([]RiskTierRow, len(tierBoundaries))
	sums := make([][8]float64, len(tierBoundaries))

	for i, b := range tierBoundaries {
		tiers[i] = RiskTierRow{Tier: b.name, Lo: b.lo, Hi: b.hi}
	}

	for _, r := range rows {
		idx := tierIndex(r.CreditScore)
		tiers[idx].Count++
		sums[idx][0] += r.TransactionVolume
		sums[idx][1] += r.RepaymentBehavior
		sums[idx][2] += r.PortfolioDiversity
		sums[idx][3] += r.ActivityConsistency
		sums[idx][4] += r.RiskManagement
		sums[idx][5] += r.WalletMaturity
		sums[idx][6] += r.TotalVolumeUSD
		sums[idx][7] += float64(r.AssetsCount)
	}

	for i := range tiers {
		if tiers[i].Count == 0 {
			continue
		}
		n := float64(tiers[i].Count)
		tiers[i].AvgTransactionVolume = round2(sums[i][0] / n)
		tiers[i].AvgRepaymentBehavior = round2(sums[i][1] / n)
		tiers[i].AvgPortfolioDiversity = round2(sums[i][2] / n)
		tiers[i].AvgActivityConsistency = round2(sums[i][3] / n)
		tiers[i].AvgRiskManagement = round2(sums[i][4] / n)
		tiers[i].AvgWalletMaturity = round2(sums[i][5] / n)
		tiers[i].AvgVolumeUSD = round2(sums[i][6] / n)
		tiers[i].AvgAssetsCount = round2(sums[i][7] / n)
	}

	return tiers
}

func tierIndex(score float64) int {
	for i, b := range tierBoundaries[:len(tierBoundaries)-1] {
		if score < b.hi {
			return i
		}
	}
	return len(tierBoundaries) - 1
}

// topRanking returns the n highest-scoring wallets. Rows are already
// sorted score DESC, wallet ASC.
func topRanking(rows []WalletScoreRow, n int) []RankingRow {
	if n > len(rows) {
		n = len(rows)
	}
	ranking := make([]RankingRow, n)
	for i := 0; i < n; i++ {
		ranking[i] = RankingRow{Rank: i + 1, Wallet: rows[i].Wallet, Score: rows[i].CreditScore}
	}
	return ranking
}

// bottomRanking returns the n lowest-scoring wallets, lowest first.
func bottomRanking(rows []WalletScoreRow, n int) []RankingRow {
	if n > len(rows) {
		n = len(rows)
	}
	ranking := make([]RankingRow, n)
	for i := 0; i < n; i++ {
		r := rows[len(rows)-1-i]
		ranking[i] = RankingRow{Rank: i + 1, Wallet: r.Wallet, Score: r.CreditScore}
	}
	return ranking
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

// computeMedian takes the midpoint of a pre-sorted slice, averaging the
// two middle values for even lengths.
func computeMedian(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// computeStddev calculates population standard deviation.
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

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
