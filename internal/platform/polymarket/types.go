package polymarket

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma
// API responses work whether "active" is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// --------------------------------------------------------------------------
// Gamma API DTOs
// --------------------------------------------------------------------------

// APIMarket represents a market as returned by the Polymarket Gamma API.
type APIMarket struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	ConditionID   string   `json:"condition_id"`
	Slug          string   `json:"slug"`
	Active        flexBool `json:"active"` // API may send bool or "true"/"false" string
	Closed        bool     `json:"closed"`
	Outcomes      string   `json:"outcomes"`       // JSON-encoded: e.g. "[\"Yes\",\"No\"]"
	ClobTokenIDs  string   `json:"clob_token_ids"` // JSON-encoded: e.g. "[\"123\",\"456\"]"
	Tokens        []Token  `json:"tokens"`
	Volume        string   `json:"volume"`
	NegRisk       bool     `json:"neg_risk"`
	EndDateISO    string   `json:"end_date_iso"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	Description   string   `json:"description"`
}

// Token represents a token entry inside the Gamma API market response.
type Token struct {
	TokenID string `json:"token_id"`
	Outcome string `json:"outcome"`
	Winner  bool   `json:"winner"`
}

// ToDomainMarket converts the API representation to the domain Market.
func (m *APIMarket) ToDomainMarket() domain.Market {
	out := domain.Market{
		ID:          m.ID,
		Question:    m.Question,
		Slug:        m.Slug,
		ConditionID: m.ConditionID,
		NegRisk:     m.NegRisk,
		Status:      domain.MarketStatusSettled,
	}
	if bool(m.Active) {
		out.Status = domain.MarketStatusActive
	}
	if m.Closed {
		out.Status = domain.MarketStatusClosed
	}

	// Outcome names and token ids arrive as JSON-encoded string arrays.
	var outcomes []string
	if err := json.Unmarshal([]byte(m.Outcomes), &outcomes); err == nil && len(outcomes) >= 2 {
		out.Outcomes = [2]string{outcomes[0], outcomes[1]}
	}
	var tokenIDs []string
	if err := json.Unmarshal([]byte(m.ClobTokenIDs), &tokenIDs); err == nil && len(tokenIDs) >= 2 {
		out.TokenIDs = [2]string{tokenIDs[0], tokenIDs[1]}
	}
	for i, t := range m.Tokens {
		if i >= 2 {
			break
		}
		if out.Outcomes[i] == "" {
			out.Outcomes[i] = t.Outcome
		}
		if out.TokenIDs[i] == "" {
			out.TokenIDs[i] = t.TokenID
		}
	}

	out.Volume, _ = strconv.ParseFloat(m.Volume, 64)
	if t, err := time.Parse(time.RFC3339, m.CreatedAt); err == nil {
		out.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, m.UpdatedAt); err == nil {
		out.UpdatedAt = t
	}
	return out
}

// APIEvent represents an event as returned by the Polymarket Gamma API.
type APIEvent struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Active      flexBool    `json:"active"`
	Closed      bool        `json:"closed"`
	Markets     []APIMarket `json:"markets"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// ToDomainEvent converts the API representation to the domain Event.
func (e *APIEvent) ToDomainEvent() domain.Event {
	out := domain.Event{
		ID:     e.ID,
		Title:  e.Title,
		Slug:   e.Slug,
		Status: domain.MarketStatusSettled,
	}
	if bool(e.Active) {
		out.Status = domain.MarketStatusActive
	}
	if e.Closed {
		out.Status = domain.MarketStatusClosed
	}
	for i := range e.Markets {
		out.Markets = append(out.Markets, e.Markets[i].ToDomainMarket())
	}
	if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
		out.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, e.UpdatedAt); err == nil {
		out.UpdatedAt = t
	}
	return out
}

// --------------------------------------------------------------------------
// Data API DTOs
// --------------------------------------------------------------------------

// APIPosition represents a position as returned by the Data API.
type APIPosition struct {
	ProxyWallet  string  `json:"proxyWallet"`
	Asset        string  `json:"asset"`
	ConditionID  string  `json:"conditionId"`
	Title        string  `json:"title"`
	Outcome      string  `json:"outcome"`
	Size         float64 `json:"size"`
	AvgPrice     float64 `json:"avgPrice"`
	CurPrice     float64 `json:"curPrice"`
	InitialValue float64 `json:"initialValue"`
	CurrentValue float64 `json:"currentValue"`
	CashPnL      float64 `json:"cashPnl"`
	PercentPnL   float64 `json:"percentPnl"`
	Redeemable   bool    `json:"redeemable"`
}

// ToDomainPosition converts the API representation to the domain Position.
func (p *APIPosition) ToDomainPosition() domain.Position {
	return domain.Position{
		Wallet:       p.ProxyWallet,
		ConditionID:  p.ConditionID,
		Asset:        p.Asset,
		Market:       p.Title,
		Outcome:      p.Outcome,
		Size:         p.Size,
		AvgPrice:     p.AvgPrice,
		CurrentPrice: p.CurPrice,
		InitialValue: p.InitialValue,
		CurrentValue: p.CurrentValue,
		CashPnL:      p.CashPnL,
		PercentPnL:   p.PercentPnL,
		Redeemable:   p.Redeemable,
	}
}

// APITrade represents a fill as returned by the Data API.
type APITrade struct {
	ProxyWallet     string  `json:"proxyWallet"`
	ConditionID     string  `json:"conditionId"`
	Title           string  `json:"title"`
	Outcome         string  `json:"outcome"`
	Side            string  `json:"side"`
	Size            float64 `json:"size"`
	Price           float64 `json:"price"`
	Timestamp       int64   `json:"timestamp"`
	TransactionHash string  `json:"transactionHash"`
}

// ToDomainTrade converts the API representation to the domain Trade.
func (t *APITrade) ToDomainTrade() domain.Trade {
	return domain.Trade{
		Wallet:      t.ProxyWallet,
		ConditionID: t.ConditionID,
		Market:      t.Title,
		Outcome:     t.Outcome,
		Side:        t.Side,
		Size:        t.Size,
		Price:       t.Price,
		Timestamp:   time.Unix(t.Timestamp, 0).UTC(),
		TxHash:      t.TransactionHash,
	}
}

// APIActivity represents an on-chain activity record from the Data API.
type APIActivity struct {
	ProxyWallet     string  `json:"proxyWallet"`
	Type            string  `json:"type"`
	ConditionID     string  `json:"conditionId"`
	Title           string  `json:"title"`
	Side            string  `json:"side"`
	Size            float64 `json:"size"`
	USDCSize        float64 `json:"usdcSize"`
	Timestamp       int64   `json:"timestamp"`
	TransactionHash string  `json:"transactionHash"`
}

// ToDomainActivity converts the API representation to the domain Activity.
func (a *APIActivity) ToDomainActivity() domain.Activity {
	return domain.Activity{
		Wallet:      a.ProxyWallet,
		Type:        a.Type,
		ConditionID: a.ConditionID,
		Market:      a.Title,
		Side:        a.Side,
		Size:        a.Size,
		USDCSize:    a.USDCSize,
		Timestamp:   time.Unix(a.Timestamp, 0).UTC(),
		TxHash:      a.TransactionHash,
	}
}

// APIValue is the total position value for a wallet.
type APIValue struct {
	User  string  `json:"user"`
	Value float64 `json:"value"`
}

// APIHolderList groups top holders per outcome token.
type APIHolderList struct {
	Token   string      `json:"token"`
	Holders []APIHolder `json:"holders"`
}

// APIHolder is one holder entry.
type APIHolder struct {
	ProxyWallet  string  `json:"proxyWallet"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	OutcomeIndex int     `json:"outcomeIndex"`
}

// --------------------------------------------------------------------------
// WebSocket DTOs
// --------------------------------------------------------------------------

// WSCommand is a subscribe/unsubscribe frame sent to the market channel.
type WSCommand struct {
	Type     string   `json:"type"`
	AssetIDs []string `json:"assets_ids"`
}

// BookEvent is a full orderbook snapshot delivered over the market
// WebSocket channel.
type BookEvent struct {
	EventType string         `json:"event_type"` // "book", "price_change", "last_trade_price"
	AssetID   string         `json:"asset_id"`
	Market    string         `json:"market"`
	Bids      []WSPriceLevel `json:"bids"`
	Asks      []WSPriceLevel `json:"asks"`
	Price     string         `json:"price,omitempty"`
	Size      string         `json:"size,omitempty"`
	Side      string         `json:"side,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// WSPriceLevel is a single bid/ask level in the WebSocket orderbook data.
type WSPriceLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}
