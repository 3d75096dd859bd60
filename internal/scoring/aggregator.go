package scoring

import (
	"math"

	"aave-credit-lab/internal/domain"
)

// Final score bounds. scoreScale maps the 0-100 weighted component average
// onto the 0-1000 credit score range.
const (
	scoreScale = 10
	scoreMin   = 0
	scoreMax   = 1000
)

// Aggregator combines component scores into a final credit score using a
// validated weight table.
type Aggregator struct {
	weights Weights
}

// NewAggregator validates the weight table once, at construction. An
// invalid table is a configuration error surfaced before any wallet is
// processed.
func NewAggregator(w Weights) (*Aggregator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: w}, nil
}

// Final computes clamp(sum(component * weight) * 10, 0, 1000) rounded to
// two decimal places. Pure; the clamp absorbs the risk_management
// balance-bonus overshoot.
func (a *Aggregator) Final(c domain.ComponentScores) float64 {
	weighted := c.TransactionVolume*a.weights.TransactionVolume +
		c.RepaymentBehavior*a.weights.RepaymentBehavior +
		c.PortfolioDiversity*a.weights.PortfolioDiversity +
		c.ActivityConsistency*a.weights.ActivityConsistency +
		c.RiskManagement*a.weights.RiskManagement +
		c.WalletMaturity*a.weights.WalletMaturity

	final := weighted * scoreScale
	if final < scoreMin {
		final = scoreMin
	} else if final > scoreMax {
		final = scoreMax
	}

	return round2(final)
}

// Score builds the full CreditScore for one wallet's features.
func (a *Aggregator) Score(f *domain.WalletFeatures) *domain.CreditScore {
	components := ComputeComponents(f)
	return &domain.CreditScore{
		Wallet:     f.Wallet,
		Score:      a.Final(components),
		Components: components,
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
