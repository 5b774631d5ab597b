package ctf

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// usdcDecimals is the number of implied decimal places in the raw USDC
// representation: one dollar is 1_000_000 units.
const usdcDecimals = 6

// toRawUSDC shifts a decimal dollar amount into the raw 6-decimal domain,
// truncating toward zero. Truncation, not rounding: sub-micro-dollar
// fractions are discarded so outputs match the protocol bit-for-bit.
func toRawUSDC(d decimal.Decimal) *big.Int {
	return d.Shift(usdcDecimals).Truncate(0).BigInt()
}

// ParseAmount converts a decimal dollar string (e.g. "10", "1.5") into a
// raw USDC amount. The amount must be strictly positive; split and merge
// of zero collateral is rejected before any network call.
func ParseAmount(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("ctf: invalid amount %q: %w", trimmed, err)
	}
	if d.Sign() <= 0 {
		return nil, fmt.Errorf("ctf: amount must be positive, got %q", trimmed)
	}
	return toRawUSDC(d), nil
}

// ParseAmountCSV converts a comma-separated list of decimal dollar
// amounts into raw USDC amounts, one per outcome. Zero is allowed (no
// redemption for that outcome); a negative element fails the whole list.
func ParseAmountCSV(s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	out := make([]*big.Int, 0, len(parts))
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("ctf: invalid amount %q at position %d: %w", trimmed, i+1, err)
		}
		if d.Sign() < 0 {
			return nil, fmt.Errorf("ctf: amount must be non-negative, got %q at position %d", trimmed, i+1)
		}
		out = append(out, toRawUSDC(d))
	}
	return out, nil
}
