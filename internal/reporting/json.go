package reporting

import (
	"encoding/json"
	"fmt"
)

// JSON report schema. Field names match the flat report consumed by the
// downstream analysis tooling; wallet_scores is keyed by wallet so Go's
// sorted map marshaling keeps the artifact byte-stable across runs.
type jsonReport struct {
	Summary      jsonSummary                `json:"summary"`
	WalletScores map[string]jsonWalletScore `json:"wallet_scores"`
}

type jsonSummary struct {
	TotalWallets int     `json:"total_wallets"`
	AverageScore float64 `json:"average_score"`
	MedianScore  float64 `json:"median_score"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
	StdScore     float64 `json:"std_score"`
}

type jsonWalletScore struct {
	CreditScore float64        `json:"credit_score"`
	Components  jsonComponents `json:"components"`
}

type jsonComponents struct {
	TransactionVolume   float64 `json:"transaction_volume"`
	RepaymentBehavior   float64 `json:"repayment_behavior"`
	PortfolioDiversity  float64 `json:"portfolio_diversity"`
	ActivityConsistency float64 `json:"activity_consistency"`
	RiskManagement      float64 `json:"risk_management"`
	WalletMaturity      float64 `json:"wallet_maturity"`
	TotalTransactions   int     `json:"total_transactions"`
	TotalVolumeUSD      float64 `json:"total_volume_usd"`
	AssetsCount         int     `json:"assets_count"`
}

// RenderJSON renders the flat report artifact as indented JSON.
func RenderJSON(r *Report) ([]byte, error) {
	out := jsonReport{
		Summary: jsonSummary{
			TotalWallets: r.Summary.TotalWallets,
			AverageScore: r.Summary.AverageScore,
			MedianScore:  r.Summary.MedianScore,
			MinScore:     r.Summary.MinScore,
			MaxScore:     r.Summary.MaxScore,
			StdScore:     r.Summary.StdScore,
		},
		WalletScores: make(map[string]jsonWalletScore, len(r.WalletScores)),
	}

	for _, row := range r.WalletScores {
		out.WalletScores[row.Wallet] = jsonWalletScore{
			CreditScore: row.CreditScore,
			Components: jsonComponents{
				TransactionVolume:   row.TransactionVolume,
				RepaymentBehavior:   row.RepaymentBehavior,
				PortfolioDiversity:  row.PortfolioDiversity,
				ActivityConsistency: row.ActivityConsistency,
				RiskManagement:      row.RiskManagement,
				WalletMaturity:      row.WalletMaturity,
				TotalTransactions:   row.TotalTransactions,
				TotalVolumeUSD:      row.TotalVolumeUSD,
				AssetsCount:         row.AssetsCount,
			},
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
