package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
)

// receiptPollInterval is how often Execute polls for the mined receipt.
const receiptPollInterval = 2 * time.Second

// gasLimitHeadroomPct is added on top of the estimate so transactions do
// not fail on a slightly stale estimate.
const gasLimitHeadroomPct = 20

// Executor signs and submits transactions for one sender, then waits for
// the receipt. It implements ctf.Executor. No retries: a failed
// submission or a reverted receipt is terminal for the invocation.
type Executor struct {
	provider *Provider
	signer   *Signer
	logger   *slog.Logger
}

// NewExecutor builds an Executor for the given provider and signer.
func NewExecutor(provider *Provider, signer *Signer, logger *slog.Logger) *Executor {
	return &Executor{provider: provider, signer: signer, logger: logger}
}

// From returns the sending address.
func (e *Executor) From() common.Address {
	return e.signer.From
}

// Execute estimates gas, signs an EIP-1559 transaction carrying data to
// the target contract, submits it, and blocks until it is mined or ctx
// is cancelled. A receipt with a failed status is reported as an error.
func (e *Executor) Execute(ctx context.Context, to common.Address, data []byte) (ctf.TxResult, error) {
	client := e.provider.Client

	nonce, err := client.PendingNonceAt(ctx, e.signer.From)
	if err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: fetching nonce: %w", err)
	}

	tipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: suggesting gas tip: %w", err)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: fetching head: %w", err)
	}
	// feeCap = tip + 2*baseFee tolerates baseFee doubling before inclusion.
	feeCap := new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: e.signer.From,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: estimating gas: %w", err)
	}
	gasLimit += gasLimit * gasLimitHeadroomPct / 100

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   e.provider.ChainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(e.provider.ChainID), e.signer.Key)
	if err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: signing transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return ctf.TxResult{}, fmt.Errorf("chain: sending transaction: %w", err)
	}

	e.logger.Info("transaction submitted",
		slog.String("tx_hash", signed.Hash().Hex()),
		slog.String("to", to.Hex()),
		slog.Uint64("nonce", nonce),
	)

	receipt, err := e.waitMined(ctx, signed.Hash())
	if err != nil {
		return ctf.TxResult{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return ctf.TxResult{}, fmt.Errorf("chain: transaction %s reverted in block %s",
			signed.Hash().Hex(), receipt.BlockNumber)
	}

	return ctf.TxResult{
		TxHash:      signed.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// waitMined polls for the transaction receipt until it appears or ctx is
// cancelled. Timeout policy belongs to the caller's context.
func (e *Executor) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := e.provider.Client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			e.logger.Debug("receipt poll failed, retrying",
				slog.String("tx_hash", txHash.Hex()),
				slog.String("error", err.Error()),
			)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("chain: waiting for transaction %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
