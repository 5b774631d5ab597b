// Package config defines the CLI configuration and its validation. Values
// come from built-in Polygon mainnet defaults, overridden by a TOML file,
// overridden by POLYCLI_* environment variables.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	Wallet   WalletConfig `toml:"wallet"`
	Chain    ChainConfig  `toml:"chain"`
	API      APIConfig    `toml:"api"`
	LogLevel string       `toml:"log_level"`
}

// WalletConfig holds the private-key sources, tried in order: raw key,
// then encrypted key file.
type WalletConfig struct {
	PrivateKey       string `toml:"private_key"`
	EncryptedKeyPath string `toml:"encrypted_key_path"`
	KeyPassword      string `toml:"key_password"`
}

// ChainConfig holds the RPC endpoint and the protocol contract addresses.
type ChainConfig struct {
	RPCURL            string `toml:"rpc_url"`
	ChainID           int64  `toml:"chain_id"`
	ConditionalTokens string `toml:"conditional_tokens"`
	NegRiskAdapter    string `toml:"neg_risk_adapter"`
	Collateral        string `toml:"collateral"`
}

// APIConfig holds the Polymarket HTTP and WebSocket API hosts.
type APIConfig struct {
	GammaHost string `toml:"gamma_host"`
	DataHost  string `toml:"data_host"`
	WsHost    string `toml:"ws_host"`
}

// Polygon mainnet contract addresses.
const (
	// PolygonUSDC is the default collateral token.
	PolygonUSDC = "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"
	// PolygonConditionalTokens is Gnosis ConditionalTokens on Polygon.
	PolygonConditionalTokens = "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045"
	// PolygonNegRiskAdapter is the Polymarket NegRiskAdapter.
	PolygonNegRiskAdapter = "0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296"
)

// Defaults returns the Polygon mainnet configuration.
func Defaults() Config {
	return Config{
		Chain: ChainConfig{
			RPCURL:            "https://polygon-rpc.com",
			ChainID:           137,
			ConditionalTokens: PolygonConditionalTokens,
			NegRiskAdapter:    PolygonNegRiskAdapter,
			Collateral:        PolygonUSDC,
		},
		API: APIConfig{
			GammaHost: "https://gamma-api.polymarket.com",
			DataHost:  "https://data-api.polymarket.com",
			WsHost:    "wss://ws-subscriptions-clob.polymarket.com/ws/market",
		},
		LogLevel: "warn",
	}
}

// Validate checks the configuration for structural problems. It does not
// verify addresses beyond hex shape; the parsers do that per command.
func (c *Config) Validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("config: chain.rpc_url must not be empty")
	}
	if c.Chain.ChainID <= 0 {
		return fmt.Errorf("config: chain.chain_id must be positive, got %d", c.Chain.ChainID)
	}
	for name, addr := range map[string]string{
		"chain.conditional_tokens": c.Chain.ConditionalTokens,
		"chain.neg_risk_adapter":   c.Chain.NegRiskAdapter,
		"chain.collateral":         c.Chain.Collateral,
	} {
		if !strings.HasPrefix(addr, "0x") || len(addr) != 42 {
			return fmt.Errorf("config: %s is not a 0x-prefixed 20-byte address: %q", name, addr)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
