package domain

import "time"

// Trade is a single fill for a wallet as reported by the Data API.
type Trade struct {
	Wallet      string
	ConditionID string
	Market      string // market question
	Outcome     string
	Side        string // "BUY" or "SELL"
	Size        float64
	Price       float64
	Timestamp   time.Time
	TxHash      string
}

// Activity is an on-chain activity record for a wallet: trades, splits,
// merges, redemptions, rewards.
type Activity struct {
	Wallet      string
	Type        string // "TRADE", "SPLIT", "MERGE", "REDEEM", "REWARD"
	ConditionID string
	Market      string
	Side        string
	Size        float64
	USDCSize    float64
	Timestamp   time.Time
	TxHash      string
}
