package scoring

import (
	"errors"
	"math"
	"testing"

	"aave-credit-lab/internal/domain"
)

func TestWeights_DefaultIsValid(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate: %v", err)
	}
}

func TestWeights_SumMismatchFails(t *testing.T) {
	w := DefaultWeights()
	w.WalletMaturity = 0 // sum drops to 0.90

	err := w.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("expected ErrInvalidWeights, got %v", err)
	}
}

func TestWeights_NegativeWeightFails(t *testing.T) {
	w := DefaultWeights()
	w.TransactionVolume = -0.20
	w.RepaymentBehavior = 0.65 // keep the sum at 1

	err := w.Validate()
	if !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("expected ErrInvalidWeights, got %v", err)
	}
}

func TestWeights_ToleranceAllowsFloatNoise(t *testing.T) {
	w := DefaultWeights()
	w.WalletMaturity += 1e-12

	if err := w.Validate(); err != nil {
		t.Errorf("sub-tolerance noise must validate: %v", err)
	}
}

func TestNewAggregator_RejectsInvalidWeights(t *testing.T) {
	_, err := NewAggregator(Weights{TransactionVolume: 0.5})
	if !errors.Is(err, ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights before any processing, got %v", err)
	}
}

func TestFinal_SingleDepositScenario(t *testing.T) {
	// One deposit of 1e18 USDC at price 1, timestamp 1000:
	// volume = ln(2)*20, repayment = 70, diversity = 25,
	// consistency = 50, risk = 100, maturity = 0.
	agg, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}

	txs := []*domain.Transaction{
		{Wallet: "A", Action: domain.ActionDeposit, Timestamp: 1000,
			Amount: "1000000000000000000", Asset: "USDC", PriceUSD: "1"},
	}
	f := ExtractFeatures(txs)["A"]
	score := agg.Score(f)

	c := score.Components
	if !almostEqual(c.TransactionVolume, math.Log1p(1)*20) {
		t.Errorf("volume: expected %.6f, got %.6f", math.Log1p(1)*20, c.TransactionVolume)
	}
	if c.RepaymentBehavior != 70 {
		t.Errorf("repayment: expected 70, got %f", c.RepaymentBehavior)
	}
	if c.PortfolioDiversity != 25 {
		t.Errorf("diversity: expected 25, got %f", c.PortfolioDiversity)
	}
	if c.ActivityConsistency != 50 {
		t.Errorf("consistency: expected 50, got %f", c.ActivityConsistency)
	}
	if c.RiskManagement != 100 {
		t.Errorf("risk: expected 100, got %f", c.RiskManagement)
	}
	if c.WalletMaturity != 0 {
		t.Errorf("maturity: expected 0, got %f", c.WalletMaturity)
	}
	if !almostEqual(f.TotalDepositUSD, 1.0) {
		t.Errorf("deposit sum: expected 1.0, got %f", f.TotalDepositUSD)
	}

	// (ln(2)*20*0.20 + 70*0.25 + 25*0.15 + 50*0.15 + 100*0.15) * 10 ≈ 465.23
	if score.Score != 465.23 {
		t.Errorf("final: expected 465.23, got %.2f", score.Score)
	}
}

func TestFinal_ClampsAt1000(t *testing.T) {
	agg, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}

	// All components maxed plus the risk overshoot: weighted sum is 103,
	// scaled to 1030, clamped to 1000.
	c := domain.ComponentScores{
		TransactionVolume:   100,
		RepaymentBehavior:   100,
		PortfolioDiversity:  100,
		ActivityConsistency: 100,
		RiskManagement:      120,
		WalletMaturity:      100,
	}

	if got := agg.Final(c); got != 1000 {
		t.Errorf("expected clamp at 1000, got %f", got)
	}
}

func TestFinal_ZeroComponentsIsZero(t *testing.T) {
	agg, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}

	if got := agg.Final(domain.ComponentScores{}); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestFinal_RoundsToTwoDecimals(t *testing.T) {
	agg, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}

	c := domain.ComponentScores{TransactionVolume: 13.862943611198906} // ln(2)*20
	got := agg.Final(c)

	// 13.862943...*0.20*10 = 27.7258... → 27.73
	if got != 27.73 {
		t.Errorf("expected 27.73, got %v", got)
	}
}

func TestFinal_Bounds(t *testing.T) {
	agg, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}

	// A sweep over plausible component combinations stays in [0, 1000].
	for _, risk := range []float64{0, 50, 100, 120} {
		for _, rest := range []float64{0, 50, 100} {
			c := domain.ComponentScores{
				TransactionVolume:   rest,
				RepaymentBehavior:   rest,
				PortfolioDiversity:  rest,
				ActivityConsistency: rest,
				RiskManagement:      risk,
				WalletMaturity:      rest,
			}
			got := agg.Final(c)
			if got < 0 || got > 1000 {
				t.Errorf("final score out of bounds: %f (risk=%f rest=%f)", got, risk, rest)
			}
		}
	}
}
