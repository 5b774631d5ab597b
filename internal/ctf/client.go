package ctf

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// conditionalTokensABI covers the five ConditionalTokens entry points the
// CLI uses: the three mutating position operations and the three
// deterministic id-derivation views.
const conditionalTokensABI = `[
	{"name":"splitPosition","type":"function","stateMutability":"nonpayable","inputs":[{"name":"collateralToken","type":"address"},{"name":"parentCollectionId","type":"bytes32"},{"name":"conditionId","type":"bytes32"},{"name":"partition","type":"uint256[]"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"mergePositions","type":"function","stateMutability":"nonpayable","inputs":[{"name":"collateralToken","type":"address"},{"name":"parentCollectionId","type":"bytes32"},{"name":"conditionId","type":"bytes32"},{"name":"partition","type":"uint256[]"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"redeemPositions","type":"function","stateMutability":"nonpayable","inputs":[{"name":"collateralToken","type":"address"},{"name":"parentCollectionId","type":"bytes32"},{"name":"conditionId","type":"bytes32"},{"name":"indexSets","type":"uint256[]"}],"outputs":[]},
	{"name":"getConditionId","type":"function","stateMutability":"pure","inputs":[{"name":"oracle","type":"address"},{"name":"questionId","type":"bytes32"},{"name":"outcomeSlotCount","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"name":"getCollectionId","type":"function","stateMutability":"view","inputs":[{"name":"parentCollectionId","type":"bytes32"},{"name":"conditionId","type":"bytes32"},{"name":"indexSet","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"name":"getPositionId","type":"function","stateMutability":"pure","inputs":[{"name":"collateralToken","type":"address"},{"name":"collectionId","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// negRiskAdapterABI is the NegRiskAdapter redemption entry point. The
// adapter takes per-outcome amounts instead of index sets.
const negRiskAdapterABI = `[
	{"name":"redeemPositions","type":"function","stateMutability":"nonpayable","inputs":[{"name":"_conditionId","type":"bytes32"},{"name":"_amounts","type":"uint256[]"}],"outputs":[]}
]`

var (
	ctfABI     = mustABI(conditionalTokensABI)
	negRiskABI = mustABI(negRiskAdapterABI)
)

func mustABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("ctf: parsing ABI: %v", err))
	}
	return parsed
}

// Executor submits a signed transaction carrying the given calldata to
// the target contract and blocks until it is mined. The chain package
// provides the production implementation.
type Executor interface {
	Execute(ctx context.Context, to common.Address, data []byte) (TxResult, error)
}

// Caller performs read-only contract calls. *ethclient.Client satisfies
// this directly.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client dispatches assembled CTF requests against a single target
// contract. Mutating operations go through the Executor; id derivations
// go through the Caller. A Client built for the ConditionalTokens
// contract serves everything except redeem-neg-risk, which needs a
// Client bound to the NegRiskAdapter.
type Client struct {
	contract common.Address
	exec     Executor
	caller   Caller
}

// NewClient returns a Client bound to the ConditionalTokens contract.
// exec may be nil for read-only use; caller may be nil when only
// mutating operations will be issued.
func NewClient(contract common.Address, caller Caller, exec Executor) *Client {
	return &Client{contract: contract, caller: caller, exec: exec}
}

// NewNegRiskClient returns a Client bound to the NegRiskAdapter contract.
func NewNegRiskClient(adapter common.Address, exec Executor) *Client {
	return &Client{contract: adapter, exec: exec}
}

// Contract returns the address this client dispatches to.
func (c *Client) Contract() common.Address {
	return c.contract
}

// SplitPosition splits collateral into outcome tokens per the request's
// partition.
func (c *Client) SplitPosition(ctx context.Context, req *SplitRequest) (TxResult, error) {
	data, err := ctfABI.Pack("splitPosition",
		req.CollateralToken, req.ParentCollectionID, req.ConditionID, req.Partition, req.Amount)
	if err != nil {
		return TxResult{}, fmt.Errorf("ctf: encoding splitPosition: %w", err)
	}
	return c.exec.Execute(ctx, c.contract, data)
}

// MergePositions merges a complete outcome-token set back into
// collateral.
func (c *Client) MergePositions(ctx context.Context, req *MergeRequest) (TxResult, error) {
	data, err := ctfABI.Pack("mergePositions",
		req.CollateralToken, req.ParentCollectionID, req.ConditionID, req.Partition, req.Amount)
	if err != nil {
		return TxResult{}, fmt.Errorf("ctf: encoding mergePositions: %w", err)
	}
	return c.exec.Execute(ctx, c.contract, data)
}

// RedeemPositions redeems winning outcome tokens for the request's index
// sets after resolution.
func (c *Client) RedeemPositions(ctx context.Context, req *RedeemRequest) (TxResult, error) {
	data, err := ctfABI.Pack("redeemPositions",
		req.CollateralToken, req.ParentCollectionID, req.ConditionID, req.IndexSets)
	if err != nil {
		return TxResult{}, fmt.Errorf("ctf: encoding redeemPositions: %w", err)
	}
	return c.exec.Execute(ctx, c.contract, data)
}

// RedeemNegRisk redeems positions through the NegRiskAdapter. The client
// must have been constructed with NewNegRiskClient.
func (c *Client) RedeemNegRisk(ctx context.Context, req *RedeemNegRiskRequest) (TxResult, error) {
	data, err := negRiskABI.Pack("redeemPositions", req.ConditionID, req.Amounts)
	if err != nil {
		return TxResult{}, fmt.Errorf("ctf: encoding neg-risk redeemPositions: %w", err)
	}
	return c.exec.Execute(ctx, c.contract, data)
}

// ConditionID derives the condition id for an oracle, question, and
// outcome slot count via the contract's pure getter.
func (c *Client) ConditionID(ctx context.Context, req *ConditionIDRequest) (common.Hash, error) {
	out, err := c.call(ctx, "getConditionId", req.Oracle, req.QuestionID, req.OutcomeSlotCount)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(out[0].([32]byte)), nil
}

// CollectionID derives the collection id for a parent collection,
// condition, and index set.
func (c *Client) CollectionID(ctx context.Context, req *CollectionIDRequest) (common.Hash, error) {
	out, err := c.call(ctx, "getCollectionId", req.ParentCollectionID, req.ConditionID, req.IndexSet)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(out[0].([32]byte)), nil
}

// PositionID derives the ERC-1155 position id for a collateral token and
// collection.
func (c *Client) PositionID(ctx context.Context, req *PositionIDRequest) (*big.Int, error) {
	out, err := c.call(ctx, "getPositionId", req.CollateralToken, req.CollectionID)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *Client) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := ctfABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("ctf: encoding %s: %w", method, err)
	}
	raw, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("ctf: calling %s: %w", method, err)
	}
	out, err := ctfABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("ctf: decoding %s result: %w", method, err)
	}
	return out, nil
}
