package ctf

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultPartition returns the canonical binary partition [1, 2]: two
// complementary single-outcome index sets. A fresh slice is returned on
// every call since big.Ints are mutable.
func DefaultPartition() []*big.Int {
	return []*big.Int{big.NewInt(1), big.NewInt(2)}
}

// BuildPartition turns an optional comma-separated partition string into
// the ordered index-set sequence passed to split and merge. An empty raw
// value yields the binary default; a supplied value is parsed verbatim
// with its order preserved, since ordering is significant to the
// protocol. Disjointness and exhaustiveness over the outcome space are
// not checked here; the contract enforces both.
func BuildPartition(raw string) ([]*big.Int, error) {
	if raw == "" {
		return DefaultPartition(), nil
	}
	return ParseUintCSV(raw)
}

// BuildIndexSets is the redemption counterpart of BuildPartition, with
// the same default and the same verbatim pass-through semantics.
func BuildIndexSets(raw string) ([]*big.Int, error) {
	if raw == "" {
		return DefaultPartition(), nil
	}
	return ParseUintCSV(raw)
}

// ParseParentCollection resolves an optional parent-collection value. An
// empty raw value is the root collection (the zero hash), not an error;
// a supplied value must be a well-formed 32-byte hex identifier.
func ParseParentCollection(raw string) (common.Hash, error) {
	if raw == "" {
		return common.Hash{}, nil
	}
	return ParseHash32(raw)
}
