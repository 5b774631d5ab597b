package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/crypto"
)

func (a *App) newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage wallet and keys",
	}
	cmd.AddCommand(
		a.newWalletCreateCmd(),
		a.newWalletImportCmd(),
		a.newWalletAddressCmd(),
		a.newWalletShowCmd(),
	)
	return cmd
}

// defaultKeystorePath puts the encrypted key next to the config file.
func (a *App) defaultKeystorePath() string {
	if a.cfg.Wallet.EncryptedKeyPath != "" {
		return a.cfg.Wallet.EncryptedKeyPath
	}
	return filepath.Join(filepath.Dir(a.cfgPath), "keystore.json")
}

func (a *App) newWalletCreateCmd() *cobra.Command {
	var password string
	var force bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new random wallet and save it encrypted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap("create wallet", a.runWalletCreate(password, force))
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password for the encrypted keystore")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing keystore")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) runWalletCreate(password string, force bool) error {
	path := a.defaultKeystorePath()
	if err := guardOverwrite(path, force); err != nil {
		return err
	}

	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}
	keyHex := "0x" + hex.EncodeToString(ethcrypto.FromECDSA(key))
	if err := crypto.SaveKey(path, keyHex, password); err != nil {
		return err
	}

	return a.out.KV([][2]string{
		{"Address", ethcrypto.PubkeyToAddress(key.PublicKey).Hex()},
		{"Keystore", path},
	})
}

func (a *App) newWalletImportCmd() *cobra.Command {
	var password string
	var force bool
	cmd := &cobra.Command{
		Use:   "import <private-key>",
		Short: "Import an existing private key and save it encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wrap("import wallet", a.runWalletImport(args[0], password, force))
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password for the encrypted keystore")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing keystore")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) runWalletImport(keyHex, password string, force bool) error {
	path := a.defaultKeystorePath()
	if err := guardOverwrite(path, force); err != nil {
		return err
	}

	signerKey, err := ethcrypto.HexToECDSA(stripHexPrefix(keyHex))
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	if err := crypto.SaveKey(path, keyHex, password); err != nil {
		return err
	}

	return a.out.KV([][2]string{
		{"Address", ethcrypto.PubkeyToAddress(signerKey.PublicKey).Hex()},
		{"Keystore", path},
	})
}

func (a *App) newWalletAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Show the address of the configured wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyHex, _, err := a.resolveKey()
			if err != nil {
				return wrap("wallet address", err)
			}
			key, err := ethcrypto.HexToECDSA(stripHexPrefix(keyHex))
			if err != nil {
				return wrap("wallet address", err)
			}
			return a.out.ID("address", ethcrypto.PubkeyToAddress(key.PublicKey).Hex())
		},
	}
}

func (a *App) newWalletShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show wallet info (address, key source, config path)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyHex, source, err := a.resolveKey()
			if err != nil {
				return wrap("wallet show", err)
			}
			key, err := ethcrypto.HexToECDSA(stripHexPrefix(keyHex))
			if err != nil {
				return wrap("wallet show", err)
			}
			return a.out.KV([][2]string{
				{"Address", ethcrypto.PubkeyToAddress(key.PublicKey).Hex()},
				{"Key Source", string(source)},
				{"Config", a.cfgPath},
			})
		},
	}
}

func guardOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("a keystore already exists at %s, use --force to overwrite", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking keystore: %w", err)
	}
	return nil
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
