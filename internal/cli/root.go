// Package cli defines the cobra command tree. Each sub-command parses
// and validates its input, assembles the typed request, dispatches it to
// the right collaborator, and relays the result through the output layer.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/chain"
	"github.com/cyptokoz-svg/polymarket-cli/internal/config"
	"github.com/cyptokoz-svg/polymarket-cli/internal/crypto"
	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
	"github.com/cyptokoz-svg/polymarket-cli/internal/output"
	"github.com/cyptokoz-svg/polymarket-cli/internal/platform/polymarket"
)

// App carries the per-invocation state shared by all sub-commands:
// parsed global flags, loaded configuration, and the logger. Nothing in
// it survives the invocation.
type App struct {
	cfgPath    string
	outputFlag string
	privateKey string

	cfg    *config.Config
	out    output.Format
	logger *slog.Logger
}

// Execute runs the CLI and returns the process exit code. Failures are
// rendered in the selected output format; the error chain carries the
// operation context label of the sub-command that caused it.
func Execute(ctx context.Context) int {
	a := &App{out: output.FormatTable}
	root := a.newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		a.out.Error(err)
		return 1
	}
	return 0
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polymarket",
		Short:         "Polymarket CLI",
		Long:          "Command-line client for Polymarket: CTF position operations, market discovery, wallet data, and live order-book data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", defaultConfigPath(), "path to configuration file")
	root.PersistentFlags().StringVarP(&a.outputFlag, "output", "o", "table", "output format: table or json")
	root.PersistentFlags().StringVar(&a.privateKey, "private-key", "", "private key (overrides env var and config file)")

	root.AddCommand(
		a.newCtfCmd(),
		a.newMarketsCmd(),
		a.newEventsCmd(),
		a.newDataCmd(),
		a.newWalletCmd(),
		a.newWatchCmd(),
		a.newStatusCmd(),
		a.newShellCmd(),
	)
	return root
}

// setup loads configuration and initializes the logger. It runs once per
// dispatched command, before the command's RunE.
func (a *App) setup() error {
	out, err := output.ParseFormat(a.outputFlag)
	if err != nil {
		return err
	}
	a.out = out

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// defaultConfigPath resolves ~/.config/polymarket/config.toml, falling
// back to the working directory when the user config dir is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "polymarket", "config.toml")
}

// contractFor selects the target contract for an operation kind:
// everything dispatches to ConditionalTokens except neg-risk redemption,
// which routes through the NegRiskAdapter.
func (a *App) contractFor(kind ctf.Kind) common.Address {
	if kind == ctf.KindRedeemNegRisk {
		return common.HexToAddress(a.cfg.Chain.NegRiskAdapter)
	}
	return common.HexToAddress(a.cfg.Chain.ConditionalTokens)
}

// readonlyProvider dials an unauthenticated provider for contract views.
func (a *App) readonlyProvider(ctx context.Context) (*chain.Provider, error) {
	return chain.Dial(ctx, a.cfg.Chain.RPCURL, a.cfg.Chain.ChainID)
}

// signingExecutor resolves the private key, dials the provider, and
// returns a transaction executor bound to both. The caller owns the
// provider and must Close it.
func (a *App) signingExecutor(ctx context.Context) (*chain.Provider, *chain.Executor, error) {
	keyHex, _, err := a.resolveKey()
	if err != nil {
		return nil, nil, err
	}
	signer, err := chain.NewSigner(keyHex)
	if err != nil {
		return nil, nil, err
	}
	provider, err := chain.Dial(ctx, a.cfg.Chain.RPCURL, a.cfg.Chain.ChainID)
	if err != nil {
		return nil, nil, err
	}
	return provider, chain.NewExecutor(provider, signer, a.logger), nil
}

// resolveKey picks the private key from the flag, then config/env, then
// the encrypted keystore.
func (a *App) resolveKey() (string, crypto.KeySource, error) {
	raw := a.privateKey
	if raw == "" {
		raw = a.cfg.Wallet.PrivateKey
	}
	return crypto.ResolveKey(crypto.KeyConfig{
		RawPrivateKey:    raw,
		EncryptedKeyPath: a.cfg.Wallet.EncryptedKeyPath,
		KeyPassword:      a.cfg.Wallet.KeyPassword,
	})
}

func (a *App) gamma() *polymarket.GammaClient {
	return polymarket.NewGammaClient(a.cfg.API.GammaHost)
}

func (a *App) data() *polymarket.DataClient {
	return polymarket.NewDataClient(a.cfg.API.DataHost)
}

// wrap prefixes an error with the operation's context label so every
// failure is traceable to the sub-command that caused it.
func wrap(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", label, err)
}
