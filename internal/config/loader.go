package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load builds the final Config: Polygon defaults, then the TOML file at
// path (a missing file is fine when the path is the default location),
// then POLYCLI_* environment overrides. The result has NOT been
// validated; callers invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("config: decoding %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	// Load .env if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known POLYCLI_* environment variables and
// overwrites the corresponding Config fields when a variable is set.
// This lets users inject the private key without writing it to disk.
func applyEnvOverrides(cfg *Config) {
	// ── Wallet ──
	setStr(&cfg.Wallet.PrivateKey, "POLYCLI_PRIVATE_KEY")
	setStr(&cfg.Wallet.EncryptedKeyPath, "POLYCLI_ENCRYPTED_KEY_PATH")
	setStr(&cfg.Wallet.KeyPassword, "POLYCLI_KEY_PASSWORD")

	// ── Chain ──
	setStr(&cfg.Chain.RPCURL, "POLYCLI_RPC_URL")
	setInt64(&cfg.Chain.ChainID, "POLYCLI_CHAIN_ID")
	setStr(&cfg.Chain.ConditionalTokens, "POLYCLI_CONDITIONAL_TOKENS")
	setStr(&cfg.Chain.NegRiskAdapter, "POLYCLI_NEG_RISK_ADAPTER")
	setStr(&cfg.Chain.Collateral, "POLYCLI_COLLATERAL")

	// ── API ──
	setStr(&cfg.API.GammaHost, "POLYCLI_GAMMA_HOST")
	setStr(&cfg.API.DataHost, "POLYCLI_DATA_HOST")
	setStr(&cfg.API.WsHost, "POLYCLI_WS_HOST")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "POLYCLI_LOG_LEVEL")
}

// Typed env-var helpers. Each only mutates the target when the
// environment variable is present and non-empty.

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt64(dst *int64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// Keep the prior value; a wrong chain id would otherwise only
		// surface later at the dial-time chain-id check.
		slog.Warn("ignoring malformed environment variable",
			slog.String("key", key),
			slog.String("value", v),
		)
		return
	}
	*dst = n
}
