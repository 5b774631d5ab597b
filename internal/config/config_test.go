package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(137), cfg.Chain.ChainID)
	assert.Equal(t, PolygonUSDC, cfg.Chain.Collateral)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty rpc url", func(c *Config) { c.Chain.RPCURL = "" }},
		{"zero chain id", func(c *Config) { c.Chain.ChainID = 0 }},
		{"short collateral", func(c *Config) { c.Chain.Collateral = "0x1234" }},
		{"unprefixed adapter", func(c *Config) { c.Chain.NegRiskAdapter = "d91E80cF2E7be2e162c6513ceD06f1dD0dA35296" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Chain, cfg.Chain)
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
log_level = "debug"

[chain]
rpc_url = "https://rpc.example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://rpc.example.com", cfg.Chain.RPCURL)
	// Untouched sections keep their defaults.
	assert.Equal(t, int64(137), cfg.Chain.ChainID)
	assert.Equal(t, PolygonConditionalTokens, cfg.Chain.ConditionalTokens)
}

func TestLoadEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chain]\nrpc_url = \"https://file.example.com\"\n"), 0o600))

	t.Setenv("POLYCLI_RPC_URL", "https://env.example.com")
	t.Setenv("POLYCLI_CHAIN_ID", "80002")
	t.Setenv("POLYCLI_PRIVATE_KEY", "0xdeadbeef")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Chain.RPCURL)
	assert.Equal(t, int64(80002), cfg.Chain.ChainID)
	assert.Equal(t, "0xdeadbeef", cfg.Wallet.PrivateKey)
}

func TestLoadMalformedChainIDEnvKeepsPrior(t *testing.T) {
	t.Setenv("POLYCLI_CHAIN_ID", "polygon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(137), cfg.Chain.ChainID)
}

func TestLoadBadTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [ valid toml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
