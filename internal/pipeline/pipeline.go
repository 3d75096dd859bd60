package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"aave-credit-lab/internal/domain"
	"aave-credit-lab/internal/reporting"
	"aave-credit-lab/internal/scoring"
)

// Output artifact names.
const (
	ReportJSONFile = "CREDIT_REPORT.json"
	ReportMDFile   = "CREDIT_REPORT.md"
	ScoresCSVFile  = "wallet_scores.csv"
)

// Pipeline scores a transaction log and writes the report artifacts:
// CREDIT_REPORT.json, CREDIT_REPORT.md and wallet_scores.csv.
type Pipeline struct {
	scorer    *scoring.Scorer
	reportGen *reporting.Generator
	outputDir string
	logger    *log.Logger
}

// New creates a pipeline writing artifacts into outputDir.
func New(scorer *scoring.Scorer, outputDir string) *Pipeline {
	return &Pipeline{
		scorer:    scorer,
		reportGen: reporting.NewGenerator(),
		outputDir: outputDir,
		logger:    log.Default(),
	}
}

// WithClock sets a custom clock function for deterministic output.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.reportGen = p.reportGen.WithClock(now)
	return p
}

// WithRankSize sets the number of wallets in the top/bottom rankings.
func (p *Pipeline) WithRankSize(n int) *Pipeline {
	p.reportGen = p.reportGen.WithRankSize(n)
	return p
}

// WithLogger sets the progress logger.
func (p *Pipeline) WithLogger(logger *log.Logger) *Pipeline {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Run scores every wallet in the transaction log and writes the report
// artifacts. Returns the generated report for callers that render further
// views (e.g. console rankings).
func (p *Pipeline) Run(ctx context.Context, txs []*domain.Transaction) (*reporting.Report, error) {
	p.logger.Printf("Scoring %d transactions", len(txs))

	scores, err := p.scorer.ScoreAll(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("score wallets: %w", err)
	}
	p.logger.Printf("Scored %d wallets", len(scores))

	report := p.reportGen.Generate(scores)

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	reportJSON, err := reporting.RenderJSON(report)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(p.outputDir, ReportJSONFile), reportJSON, 0644); err != nil {
		return nil, fmt.Errorf("write json report: %w", err)
	}

	reportMD := reporting.RenderMarkdown(report)
	if err := os.WriteFile(filepath.Join(p.outputDir, ReportMDFile), []byte(reportMD), 0644); err != nil {
		return nil, fmt.Errorf("write markdown report: %w", err)
	}

	scoresCSV := reporting.RenderCSV(report.WalletScores)
	if err := os.WriteFile(filepath.Join(p.outputDir, ScoresCSVFile), []byte(scoresCSV), 0644); err != nil {
		return nil, fmt.Errorf("write scores csv: %w", err)
	}

	return report, nil
}
