package ctf

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseHash32 parses a 0x-prefixed 32-byte hex identifier (condition,
// question, collection, or parent-collection id). Anything but exactly 64
// hex digits after the prefix fails.
func ParseHash32(s string) (common.Hash, error) {
	if !strings.HasPrefix(s, "0x") {
		return common.Hash{}, fmt.Errorf("ctf: identifier %q must be 0x-prefixed", s)
	}
	digits := s[2:]
	if len(digits) != 2*common.HashLength {
		return common.Hash{}, fmt.Errorf("ctf: identifier %q must be %d hex digits, got %d", s, 2*common.HashLength, len(digits))
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return common.Hash{}, fmt.Errorf("ctf: identifier %q is not valid hex: %w", s, err)
	}
	return common.BytesToHash(b), nil
}

// ParseAddress parses a 0x-prefixed 20-byte hex account or contract
// address.
func ParseAddress(s string) (common.Address, error) {
	if !strings.HasPrefix(s, "0x") {
		return common.Address{}, fmt.Errorf("ctf: address %q must be 0x-prefixed", s)
	}
	if len(s) != 2+2*common.AddressLength || !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("ctf: invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseUintCSV parses a comma-separated list of non-negative integers.
// Whitespace around each element is tolerated. A single empty or
// non-numeric element fails the whole parse; there are no partial
// results.
func ParseUintCSV(s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	out := make([]*big.Int, 0, len(parts))
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		v, ok := new(big.Int).SetString(trimmed, 10)
		if !ok || v.Sign() < 0 {
			return nil, fmt.Errorf("ctf: invalid value %q at position %d", trimmed, i+1)
		}
		out = append(out, v)
	}
	return out, nil
}
