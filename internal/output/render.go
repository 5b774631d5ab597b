package output

import (
	"fmt"
	"time"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
	"github.com/cyptokoz-svg/polymarket-cli/internal/platform/polymarket"
)

// Markets renders a market list.
func (f Format) Markets(markets []domain.Market) error {
	if f == FormatJSON {
		return printJSON(markets)
	}
	t := newTable()
	t.SetHeader([]string{"ID", "Question", "Status", "Volume", "Condition ID"})
	for _, m := range markets {
		t.Append([]string{m.ID, truncate(m.Question, 60), string(m.Status), fmt.Sprintf("%.0f", m.Volume), m.ConditionID})
	}
	t.Render()
	return nil
}

// Market renders a single market in detail.
func (f Format) Market(m domain.Market) error {
	if f == FormatJSON {
		return printJSON(m)
	}
	return f.KV([][2]string{
		{"ID", m.ID},
		{"Question", m.Question},
		{"Slug", m.Slug},
		{"Status", string(m.Status)},
		{"Condition ID", m.ConditionID},
		{"Outcomes", fmt.Sprintf("%s / %s", m.Outcomes[0], m.Outcomes[1])},
		{"Token IDs", fmt.Sprintf("%s / %s", m.TokenIDs[0], m.TokenIDs[1])},
		{"Neg Risk", fmt.Sprintf("%t", m.NegRisk)},
		{"Volume", fmt.Sprintf("%.2f", m.Volume)},
	})
}

// Events renders an event list.
func (f Format) Events(events []domain.Event) error {
	if f == FormatJSON {
		return printJSON(events)
	}
	t := newTable()
	t.SetHeader([]string{"ID", "Title", "Status", "Markets"})
	for _, e := range events {
		t.Append([]string{e.ID, truncate(e.Title, 60), string(e.Status), fmt.Sprintf("%d", len(e.Markets))})
	}
	t.Render()
	return nil
}

// Positions renders a wallet's open positions.
func (f Format) Positions(positions []domain.Position) error {
	if f == FormatJSON {
		return printJSON(positions)
	}
	t := newTable()
	t.SetHeader([]string{"Market", "Outcome", "Size", "Avg Price", "Value", "PnL"})
	for _, p := range positions {
		t.Append([]string{
			truncate(p.Market, 50),
			p.Outcome,
			fmt.Sprintf("%.2f", p.Size),
			fmt.Sprintf("%.4f", p.AvgPrice),
			fmt.Sprintf("%.2f", p.CurrentValue),
			fmt.Sprintf("%+.2f", p.CashPnL),
		})
	}
	t.Render()
	return nil
}

// Trades renders a wallet's trade history.
func (f Format) Trades(trades []domain.Trade) error {
	if f == FormatJSON {
		return printJSON(trades)
	}
	t := newTable()
	t.SetHeader([]string{"Time", "Market", "Outcome", "Side", "Size", "Price"})
	for _, tr := range trades {
		t.Append([]string{
			tr.Timestamp.Format(time.RFC3339),
			truncate(tr.Market, 45),
			tr.Outcome,
			tr.Side,
			fmt.Sprintf("%.2f", tr.Size),
			fmt.Sprintf("%.4f", tr.Price),
		})
	}
	t.Render()
	return nil
}

// Activity renders a wallet's on-chain activity.
func (f Format) Activity(records []domain.Activity) error {
	if f == FormatJSON {
		return printJSON(records)
	}
	t := newTable()
	t.SetHeader([]string{"Time", "Type", "Market", "Size", "USDC"})
	for _, a := range records {
		t.Append([]string{
			a.Timestamp.Format(time.RFC3339),
			a.Type,
			truncate(a.Market, 45),
			fmt.Sprintf("%.2f", a.Size),
			fmt.Sprintf("%.2f", a.USDCSize),
		})
	}
	t.Render()
	return nil
}

// Holders renders a market's top holders.
func (f Format) Holders(holders []domain.Holder) error {
	if f == FormatJSON {
		return printJSON(holders)
	}
	t := newTable()
	t.SetHeader([]string{"Wallet", "Name", "Outcome", "Amount"})
	for _, h := range holders {
		t.Append([]string{h.Wallet, h.Name, h.Outcome, fmt.Sprintf("%.2f", h.Amount)})
	}
	t.Render()
	return nil
}

// BookEvent renders one streamed order-book event.
func (f Format) BookEvent(ev polymarket.BookEvent) error {
	if f == FormatJSON {
		return printJSON(ev)
	}
	switch ev.EventType {
	case "book":
		fmt.Printf("[%s] book %s: %d bids / %d asks\n", ev.Timestamp, ev.AssetID, len(ev.Bids), len(ev.Asks))
	case "price_change":
		fmt.Printf("[%s] price %s: %s %s @ %s\n", ev.Timestamp, ev.AssetID, ev.Side, ev.Size, ev.Price)
	case "last_trade_price":
		fmt.Printf("[%s] trade %s: %s @ %s\n", ev.Timestamp, ev.AssetID, ev.Size, ev.Price)
	default:
		fmt.Printf("[%s] %s %s\n", ev.Timestamp, ev.EventType, ev.AssetID)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
