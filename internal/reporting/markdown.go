package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Wallet Credit Scoring Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Summary
	sb.WriteString("## Summary\n\n")
	if r.Summary.TotalWallets == 0 {
		sb.WriteString("No wallets scored.\n\n")
		return sb.String()
	}
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Wallets | %d |\n", r.Summary.TotalWallets))
	sb.WriteString(fmt.Sprintf("| Average Score | %.2f |\n", r.Summary.AverageScore))
	sb.WriteString(fmt.Sprintf("| Median Score | %.2f |\n", r.Summary.MedianScore))
	sb.WriteString(fmt.Sprintf("| Min Score | %.2f |\n", r.Summary.MinScore))
	sb.WriteString(fmt.Sprintf("| Max Score | %.2f |\n", r.Summary.MaxScore))
	sb.WriteString(fmt.Sprintf("| Std Dev | %.2f |\n", r.Summary.StdScore))
	sb.WriteString("\n")

	// Score Distribution
	sb.WriteString("## Score Distribution\n\n")
	sb.WriteString("| Range | Wallets | Share |\n")
	sb.WriteString("|-------|---------|-------|\n")
	for _, b := range r.Distribution {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.2f%% |\n", b.Label, b.Count, b.Percentage))
	}
	sb.WriteString("\n")

	// Risk Tiers
	sb.WriteString("## Risk Tiers\n\n")
	sb.WriteString("| Tier | Range | Wallets | Volume | Repayment | Diversity | Consistency | Risk | Maturity |\n")
	sb.WriteString("|------|-------|---------|--------|-----------|-----------|-------------|------|----------|\n")
	for _, t := range r.RiskTiers {
		sb.WriteString(fmt.Sprintf("| %s | %d-%d | %d | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			t.Tier, int(t.Lo), int(t.Hi), t.Count,
			t.AvgTransactionVolume, t.AvgRepaymentBehavior, t.AvgPortfolioDiversity,
			t.AvgActivityConsistency, t.AvgRiskManagement, t.AvgWalletMaturity))
	}
	sb.WriteString("\n")

	// Rankings
	sb.WriteString("## Top Wallets\n\n")
	writeRanking(&sb, r.TopWallets)

	sb.WriteString("## Bottom Wallets\n\n")
	writeRanking(&sb, r.BottomWallets)

	return sb.String()
}

func writeRanking(sb *strings.Builder, rows []RankingRow) {
	if len(rows) == 0 {
		sb.WriteString("No wallets ranked.\n\n")
		return
	}
	sb.WriteString("| Rank | Wallet | Score |\n")
	sb.WriteString("|------|--------|-------|\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %d | %s | %.2f |\n", row.Rank, row.Wallet, row.Score))
	}
	sb.WriteString("\n")
}
