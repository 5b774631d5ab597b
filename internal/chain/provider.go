// Package chain constructs Polygon RPC providers and executes signed
// transactions against them. A read-only provider is enough for the id
// derivation views; mutating CTF operations need a signing provider
// bound to a private key.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Provider wraps an ethclient connection with the chain id it serves.
type Provider struct {
	Client  *ethclient.Client
	ChainID *big.Int
}

// Dial connects to the RPC endpoint and verifies the remote chain id
// matches the configured one, so a mis-pointed RPC URL fails fast
// instead of signing for the wrong network.
func Dial(ctx context.Context, rpcURL string, chainID int64) (*Provider, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("chain: dialing %s: %w", rpcURL, err)
	}
	remote, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("chain: fetching chain id: %w", err)
	}
	want := big.NewInt(chainID)
	if remote.Cmp(want) != 0 {
		client.Close()
		return nil, fmt.Errorf("chain: rpc serves chain %s, config expects %s", remote, want)
	}
	return &Provider{Client: client, ChainID: want}, nil
}

// Close releases the underlying RPC connection.
func (p *Provider) Close() {
	p.Client.Close()
}

// Signer holds the key material for a signing provider.
type Signer struct {
	Key  *ecdsa.PrivateKey
	From common.Address
}

// NewSigner parses a hex-encoded secp256k1 private key (with or without
// 0x prefix) and derives its address.
func NewSigner(privateKeyHex string) (*Signer, error) {
	keyHex := strings.TrimPrefix(privateKeyHex, "0x")
	key, err := ethcrypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, fmt.Errorf("chain: invalid private key: %w", err)
	}
	return &Signer{Key: key, From: ethcrypto.PubkeyToAddress(key.PublicKey)}, nil
}
