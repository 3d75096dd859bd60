package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"aave-credit-lab/internal/domain"
)

// ErrMalformedInput indicates the payload cannot be mapped to a transaction
// log: not a JSON array, or a record missing one of the grouping keys
// (userWallet, action, timestamp). These abort the run; field-level
// problems inside actionData are recovered later, per record, during
// feature extraction.
var ErrMalformedInput = errors.New("malformed transaction input")

// rawTransaction mirrors the protocol export schema.
type rawTransaction struct {
	UserWallet string        `json:"userWallet"`
	Action     string        `json:"action"`
	Timestamp  *int64        `json:"timestamp"`
	ActionData rawActionData `json:"actionData"`
}

type rawActionData struct {
	Amount        flexString `json:"amount"`
	AssetSymbol   string     `json:"assetSymbol"`
	AssetPriceUSD flexString `json:"assetPriceUSD"`
}

// flexString accepts a JSON string or bare number and keeps the raw
// literal. Exports carry amounts and prices in both shapes; numeric
// parsing is deferred to feature extraction.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(data)
	return nil
}

// LoadFile reads a transaction log from a JSON file.
func LoadFile(path string) ([]*domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a JSON array of transaction records. A record missing
// userWallet, action or timestamp fails the load with a diagnostic naming
// the record index, since the grouping key itself is broken.
func Load(r io.Reader) ([]*domain.Transaction, error) {
	var raws []rawTransaction
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: decode transaction array: %v", ErrMalformedInput, err)
	}

	txs := make([]*domain.Transaction, len(raws))
	for i, raw := range raws {
		if raw.UserWallet == "" {
			return nil, fmt.Errorf("%w: record %d: missing userWallet", ErrMalformedInput, i)
		}
		if raw.Action == "" {
			return nil, fmt.Errorf("%w: record %d: missing action", ErrMalformedInput, i)
		}
		if raw.Timestamp == nil {
			return nil, fmt.Errorf("%w: record %d: missing timestamp", ErrMalformedInput, i)
		}

		txs[i] = &domain.Transaction{
			Wallet:    raw.UserWallet,
			Action:    raw.Action,
			Timestamp: *raw.Timestamp,
			Amount:    string(raw.ActionData.Amount),
			Asset:     raw.ActionData.AssetSymbol,
			PriceUSD:  string(raw.ActionData.AssetPriceUSD),
		}
	}

	return txs, nil
}
