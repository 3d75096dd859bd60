package scoring

import (
	"errors"
	"fmt"
	"math"
)

// weightSumTolerance bounds |sum - 1| for a valid weight table.
const weightSumTolerance = 1e-9

// ErrInvalidWeights indicates a misconfigured weight table. It is fatal at
// startup: no wallet is processed with invalid weights.
var ErrInvalidWeights = errors.New("invalid component weights")

// Weights is the component weight table combined by the Aggregator.
// Weights are fixed configuration, not fitted parameters.
type Weights struct {
	TransactionVolume   float64
	RepaymentBehavior   float64
	PortfolioDiversity  float64
	ActivityConsistency float64
	RiskManagement      float64
	WalletMaturity      float64
}

// DefaultWeights returns the production weight table.
func DefaultWeights() Weights {
	return Weights{
		TransactionVolume:   0.20,
		RepaymentBehavior:   0.25,
		PortfolioDiversity:  0.15,
		ActivityConsistency: 0.15,
		RiskManagement:      0.15,
		WalletMaturity:      0.10,
	}
}

// Validate checks that every weight is non-negative and the table sums
// to 1 within tolerance.
func (w Weights) Validate() error {
	all := []struct {
		name  string
		value float64
	}{
		{"transaction_volume", w.TransactionVolume},
		{"repayment_behavior", w.RepaymentBehavior},
		{"portfolio_diversity", w.PortfolioDiversity},
		{"activity_consistency", w.ActivityConsistency},
		{"risk_management", w.RiskManagement},
		{"wallet_maturity", w.WalletMaturity},
	}

	sum := 0.0
	for _, entry := range all {
		if entry.value < 0 {
			return fmt.Errorf("%w: %s is negative (%f)", ErrInvalidWeights, entry.name, entry.value)
		}
		sum += entry.value
	}

	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.12f, want 1.0", ErrInvalidWeights, sum)
	}
	return nil
}
