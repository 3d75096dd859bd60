package scoring

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"aave-credit-lab/internal/domain"
)

// Scorer runs the full extract-then-score pipeline over a transaction log.
type Scorer struct {
	agg *Aggregator
}

// NewScorer builds a scorer. The weight table is validated here, before
// any transaction is read.
func NewScorer(w Weights) (*Scorer, error) {
	agg, err := NewAggregator(w)
	if err != nil {
		return nil, err
	}
	return &Scorer{agg: agg}, nil
}

// ScoreAll extracts per-wallet features and scores every wallet with at
// least one transaction. Wallets are independent once grouped, so scoring
// fans out per wallet; each score is a pure function of its features and
// the result map is identical across runs.
func (s *Scorer) ScoreAll(ctx context.Context, txs []*domain.Transaction) (map[string]*domain.CreditScore, error) {
	features := ExtractFeatures(txs)

	var (
		mu     sync.Mutex
		scores = make(map[string]*domain.CreditScore, len(features))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, f := range features {
		if len(f.Transactions) == 0 {
			continue // component scores are undefined for empty wallets
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score := s.agg.Score(f)
			mu.Lock()
			scores[score.Wallet] = score
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
