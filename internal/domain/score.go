package domain

// ComponentScores holds the six behavioral sub-scores for one wallet.
// Each component is designed for [0, 100]; RiskManagement can exceed 100
// after the deposit/redeem balance bonus and the final 0-1000 clamp
// absorbs the overshoot.
type ComponentScores struct {
	TransactionVolume   float64
	RepaymentBehavior   float64
	PortfolioDiversity  float64
	ActivityConsistency float64
	RiskManagement      float64
	WalletMaturity      float64

	// Non-scored metadata carried through for reporting.
	TotalTransactions int
	TotalVolumeUSD    float64
	AssetsCount       int
}

// CreditScore is the final score for one wallet, paired with the component
// breakdown that produced it.
type CreditScore struct {
	Wallet     string
	Score      float64 // clamped to [0, 1000], rounded to 2 decimal places
	Components ComponentScores
}
