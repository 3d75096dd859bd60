package reporting

import "time"

// Report is the full credit scoring report artifact.
type Report struct {
	GeneratedAt time.Time

	// Aggregate statistics over final scores.
	Summary Summary

	// One row per scored wallet, sorted by score DESC then wallet ASC.
	WalletScores []WalletScoreRow

	// Wallet counts over ten fixed 100-wide score ranges.
	Distribution []DistributionBucket

	// Behavioral tiers with per-tier component averages.
	RiskTiers []RiskTierRow

	// Ranking views: TopWallets by score DESC, BottomWallets by score ASC.
	TopWallets    []RankingRow
	BottomWallets []RankingRow
}

// Summary holds aggregate statistics over the final scores. All statistics
// are zero when TotalWallets is zero (never computed over an empty set).
type Summary struct {
	TotalWallets int
	AverageScore float64
	MedianScore  float64
	MinScore     float64
	MaxScore     float64
	StdScore     float64 // population standard deviation
}

// WalletScoreRow is one wallet's final score with its component breakdown
// and passthrough metadata.
type WalletScoreRow struct {
	Wallet      string
	CreditScore float64

	TransactionVolume   float64
	RepaymentBehavior   float64
	PortfolioDiversity  float64
	ActivityConsistency float64
	RiskManagement      float64
	WalletMaturity      float64

	TotalTransactions int
	TotalVolumeUSD    float64
	AssetsCount       int
}

// DistributionBucket counts wallets within one fixed score range.
// Buckets are half-open [Lo, Hi) except the last, which includes 1000.
type DistributionBucket struct {
	Label      string // e.g. "400-500"
	Lo         float64
	Hi         float64
	Count      int
	Percentage float64
}

// RiskTierRow aggregates one behavioral tier: high-risk <400, moderate
// 400-600, good 600-800, elite >=800. Averages cover the six components
// plus volume and asset count, over the wallets in the tier.
type RiskTierRow struct {
	Tier  string
	Lo    float64
	Hi    float64
	Count int

	AvgTransactionVolume   float64
	AvgRepaymentBehavior   float64
	AvgPortfolioDiversity  float64
	AvgActivityConsistency float64
	AvgRiskManagement      float64
	AvgWalletMaturity      float64
	AvgVolumeUSD           float64
	AvgAssetsCount         float64
}

// RankingRow is one wallet in the top/bottom ranking view.
type RankingRow struct {
	Rank   int
	Wallet string
	Score  float64
}

// Risk tier names and boundaries.
const (
	TierHighRisk = "high_risk"
	TierModerate = "moderate_risk"
	TierGood     = "good_credit"
	TierElite    = "elite"
)
