package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders one row per scored wallet.
func RenderCSV(rows []WalletScoreRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("wallet,credit_score,transaction_volume,repayment_behavior,portfolio_diversity,")
	sb.WriteString("activity_consistency,risk_management,wallet_maturity,")
	sb.WriteString("total_transactions,total_volume_usd,assets_count\n")

	// Rows
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%.2f,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%d,%.6f,%d\n",
			r.Wallet,
			r.CreditScore,
			r.TransactionVolume,
			r.RepaymentBehavior,
			r.PortfolioDiversity,
			r.ActivityConsistency,
			r.RiskManagement,
			r.WalletMaturity,
			r.TotalTransactions,
			r.TotalVolumeUSD,
			r.AssetsCount,
		))
	}

	return sb.String()
}
