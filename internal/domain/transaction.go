package domain

// Transaction represents one raw lending-protocol event for a wallet.
// Fields mirror the protocol export (userWallet/action/timestamp/actionData).
// Amount and PriceUSD are carried as raw decimal strings; parsing happens
// during feature extraction where failures degrade per record.
type Transaction struct {
	Wallet    string // account that performed the action
	Action    string // one of the Action* constants, or any other raw string
	Timestamp int64  // Unix timestamp in seconds
	Amount    string // raw token amount, 18-decimal fixed point
	Asset     string // asset symbol, e.g. "USDC"
	PriceUSD  string // asset USD price at event time, empty when absent
}

// Recognized action kinds. Transactions with any other action string are
// kept in the wallet's sequence but not counted toward a kind.
const (
	ActionDeposit     = "deposit"
	ActionBorrow      = "borrow"
	ActionRepay       = "repay"
	ActionRedeem      = "redeemunderlying"
	ActionLiquidation = "liquidationcall"
)

// AssetUnknown is substituted when a record's amount or price cannot be
// parsed, so the degraded record still contributes to the asset set.
const AssetUnknown = "UNKNOWN"
