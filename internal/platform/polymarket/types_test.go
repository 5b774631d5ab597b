package polymarket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"json true", `true`, true},
		{"json false", `false`, false},
		{"string true", `"true"`, true},
		{"string TRUE", `"TRUE"`, true},
		{"string one", `"1"`, true},
		{"string false", `"false"`, false},
		{"string garbage", `"yes"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexBool
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, bool(f))
		})
	}
}

func TestToDomainMarketDecodesEncodedArrays(t *testing.T) {
	raw := `{
		"id": "512345",
		"question": "Will it rain tomorrow?",
		"condition_id": "0xabc",
		"slug": "will-it-rain",
		"active": "true",
		"closed": false,
		"outcomes": "[\"Yes\",\"No\"]",
		"clob_token_ids": "[\"111\",\"222\"]",
		"volume": "1234.5",
		"neg_risk": true,
		"created_at": "2024-03-01T12:00:00Z"
	}`
	var m APIMarket
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	got := m.ToDomainMarket()
	assert.Equal(t, "512345", got.ID)
	assert.Equal(t, domain.MarketStatusActive, got.Status)
	assert.Equal(t, [2]string{"Yes", "No"}, got.Outcomes)
	assert.Equal(t, [2]string{"111", "222"}, got.TokenIDs)
	assert.Equal(t, 1234.5, got.Volume)
	assert.True(t, got.NegRisk)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestToDomainMarketFallsBackToTokens(t *testing.T) {
	m := APIMarket{
		ID: "1",
		Tokens: []Token{
			{TokenID: "111", Outcome: "Yes"},
			{TokenID: "222", Outcome: "No"},
			{TokenID: "333", Outcome: "Ignored"},
		},
	}
	got := m.ToDomainMarket()
	assert.Equal(t, [2]string{"Yes", "No"}, got.Outcomes)
	assert.Equal(t, [2]string{"111", "222"}, got.TokenIDs)
}

func TestToDomainMarketStatus(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		closed bool
		want   domain.MarketStatus
	}{
		{"active", true, false, domain.MarketStatusActive},
		{"closed wins over active", true, true, domain.MarketStatusClosed},
		{"neither means settled", false, false, domain.MarketStatusSettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := APIMarket{Active: flexBool(tt.active), Closed: tt.closed}
			assert.Equal(t, tt.want, m.ToDomainMarket().Status)
		})
	}
}

func TestToDomainEventConvertsNestedMarkets(t *testing.T) {
	e := APIEvent{
		ID:     "ev1",
		Title:  "Election night",
		Active: true,
		Markets: []APIMarket{
			{ID: "m1", Question: "Q1"},
			{ID: "m2", Question: "Q2"},
		},
	}
	got := e.ToDomainEvent()
	assert.Equal(t, domain.MarketStatusActive, got.Status)
	require.Len(t, got.Markets, 2)
	assert.Equal(t, "m1", got.Markets[0].ID)
	assert.Equal(t, "Q2", got.Markets[1].Question)
}

func TestToDomainTradeTimestamps(t *testing.T) {
	tr := APITrade{
		ProxyWallet: "0xwallet",
		Side:        "BUY",
		Size:        12,
		Price:       0.42,
		Timestamp:   1_700_000_000,
	}
	got := tr.ToDomainTrade()
	assert.Equal(t, "BUY", got.Side)
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), got.Timestamp)
}
