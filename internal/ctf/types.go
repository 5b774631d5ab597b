// Package ctf implements the operation-encoding layer for the Polymarket
// conditional token framework: input parsing, USDC fixed-point
// normalization, outcome-partition construction, and assembly of the typed
// requests dispatched against the ConditionalTokens and NegRiskAdapter
// contracts.
package ctf

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Kind identifies one of the seven CTF operations. The dispatcher selects
// the provider capability and target contract from the kind alone.
type Kind int

const (
	KindSplit Kind = iota
	KindMerge
	KindRedeem
	KindRedeemNegRisk
	KindConditionID
	KindCollectionID
	KindPositionID
)

// Mutating reports whether the operation submits an on-chain transaction
// and therefore requires a signing provider. The remaining kinds are
// read-only contract views served by an unauthenticated provider.
func (k Kind) Mutating() bool {
	switch k {
	case KindSplit, KindMerge, KindRedeem, KindRedeemNegRisk:
		return true
	}
	return false
}

// Label is the human-readable operation name used to contextualize
// failures and to tag transaction results.
func (k Kind) Label() string {
	switch k {
	case KindSplit:
		return "split position"
	case KindMerge:
		return "merge positions"
	case KindRedeem:
		return "redeem positions"
	case KindRedeemNegRisk:
		return "redeem neg-risk positions"
	case KindConditionID:
		return "condition id"
	case KindCollectionID:
		return "collection id"
	case KindPositionID:
		return "position id"
	}
	return "unknown"
}

// SplitRequest describes splitting collateral into a full outcome-token
// set for a condition. Immutable once assembled; all fields are validated
// by the parsers before assembly.
type SplitRequest struct {
	CollateralToken    common.Address
	ParentCollectionID common.Hash
	ConditionID        common.Hash
	Partition          []*big.Int
	Amount             *big.Int
}

// MergeRequest describes merging a complete outcome-token set back into
// collateral. Same shape as SplitRequest.
type MergeRequest struct {
	CollateralToken    common.Address
	ParentCollectionID common.Hash
	ConditionID        common.Hash
	Partition          []*big.Int
	Amount             *big.Int
}

// RedeemRequest describes redeeming winning outcome tokens after
// resolution for the given index sets.
type RedeemRequest struct {
	CollateralToken    common.Address
	ParentCollectionID common.Hash
	ConditionID        common.Hash
	IndexSets          []*big.Int
}

// RedeemNegRiskRequest describes redemption through the NegRiskAdapter,
// with one raw USDC amount per outcome. Amounts may be zero ("no
// redemption for this outcome").
type RedeemNegRiskRequest struct {
	ConditionID common.Hash
	Amounts     []*big.Int
}

// ConditionIDRequest asks the contract to derive a condition id from its
// three inputs.
type ConditionIDRequest struct {
	Oracle           common.Address
	QuestionID       common.Hash
	OutcomeSlotCount *big.Int
}

// CollectionIDRequest asks the contract to derive a collection id.
// ParentCollectionID is the zero hash for top-level positions.
type CollectionIDRequest struct {
	ParentCollectionID common.Hash
	ConditionID        common.Hash
	IndexSet           *big.Int
}

// PositionIDRequest asks the contract to derive a position id (the
// ERC-1155 token id) from collateral and collection.
type PositionIDRequest struct {
	CollateralToken common.Address
	CollectionID    common.Hash
}

// TxResult is what a mutating operation reports on success.
type TxResult struct {
	TxHash      common.Hash
	BlockNumber uint64
}
