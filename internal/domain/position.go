package domain

// Position is an open position for a wallet as reported by the Data API.
type Position struct {
	Wallet       string
	ConditionID  string
	Asset        string // ERC-1155 position id
	Market       string // market question
	Outcome      string
	Size         float64
	AvgPrice     float64
	CurrentPrice float64
	InitialValue float64
	CurrentValue float64
	CashPnL      float64
	PercentPnL   float64
	Redeemable   bool
}

// Holder is one entry in a market's top-holder list.
type Holder struct {
	Wallet  string
	Name    string
	Outcome string
	Amount  float64
}
