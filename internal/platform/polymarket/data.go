package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
)

// DataClient is the REST client for the Polymarket Data API: wallet
// positions, trades, activity, value, and market holder analytics.
type DataClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDataClient creates a new Data API client.
//
// baseURL is the Data API root, e.g. "https://data-api.polymarket.com".
func NewDataClient(baseURL string) *DataClient {
	return &DataClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetPositions returns the open positions for a wallet address.
func (d *DataClient) GetPositions(ctx context.Context, wallet string, limit, offset int) ([]domain.Position, error) {
	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := d.doGet(ctx, "/positions?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: get positions: %w", err)
	}

	var apiPositions []APIPosition
	if err := json.Unmarshal(body, &apiPositions); err != nil {
		return nil, fmt.Errorf("polymarket/data: decode positions: %w", err)
	}

	positions := make([]domain.Position, 0, len(apiPositions))
	for i := range apiPositions {
		positions = append(positions, apiPositions[i].ToDomainPosition())
	}
	return positions, nil
}

// GetTrades returns the trade history for a wallet address.
func (d *DataClient) GetTrades(ctx context.Context, wallet string, limit, offset int) ([]domain.Trade, error) {
	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := d.doGet(ctx, "/trades?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: get trades: %w", err)
	}

	var apiTrades []APITrade
	if err := json.Unmarshal(body, &apiTrades); err != nil {
		return nil, fmt.Errorf("polymarket/data: decode trades: %w", err)
	}

	trades := make([]domain.Trade, 0, len(apiTrades))
	for i := range apiTrades {
		trades = append(trades, apiTrades[i].ToDomainTrade())
	}
	return trades, nil
}

// GetActivity returns on-chain activity records for a wallet address.
func (d *DataClient) GetActivity(ctx context.Context, wallet string, limit, offset int) ([]domain.Activity, error) {
	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := d.doGet(ctx, "/activity?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: get activity: %w", err)
	}

	var apiActivity []APIActivity
	if err := json.Unmarshal(body, &apiActivity); err != nil {
		return nil, fmt.Errorf("polymarket/data: decode activity: %w", err)
	}

	activity := make([]domain.Activity, 0, len(apiActivity))
	for i := range apiActivity {
		activity = append(activity, apiActivity[i].ToDomainActivity())
	}
	return activity, nil
}

// GetValue returns the total current position value for a wallet address.
func (d *DataClient) GetValue(ctx context.Context, wallet string) (float64, error) {
	params := url.Values{}
	params.Set("user", wallet)

	body, err := d.doGet(ctx, "/value?"+params.Encode())
	if err != nil {
		return 0, fmt.Errorf("polymarket/data: get value: %w", err)
	}

	var values []APIValue
	if err := json.Unmarshal(body, &values); err != nil {
		return 0, fmt.Errorf("polymarket/data: decode value: %w", err)
	}
	if len(values) == 0 {
		return 0, nil
	}
	return values[0].Value, nil
}

// GetHolders returns the top holders per outcome token for a market,
// identified by its condition id.
func (d *DataClient) GetHolders(ctx context.Context, conditionID string, limit int) ([]domain.Holder, error) {
	params := url.Values{}
	params.Set("market", conditionID)
	params.Set("limit", strconv.Itoa(limit))

	body, err := d.doGet(ctx, "/holders?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: get holders: %w", err)
	}

	var lists []APIHolderList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("polymarket/data: decode holders: %w", err)
	}

	var holders []domain.Holder
	for _, list := range lists {
		for _, h := range list.Holders {
			holders = append(holders, domain.Holder{
				Wallet:  h.ProxyWallet,
				Name:    h.Name,
				Outcome: strconv.Itoa(h.OutcomeIndex),
				Amount:  h.Amount,
			})
		}
	}
	return holders, nil
}

func (d *DataClient) doGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Tag each request so failures are traceable in support tickets.
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if err := checkHTTPStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}
