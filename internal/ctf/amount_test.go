package ctf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "whole dollars", input: "10", want: 10_000_000},
		{name: "fractional", input: "1.5", want: 1_500_000},
		{name: "one cent", input: "0.01", want: 10_000},
		{name: "surrounding whitespace", input: " 2.5 ", want: 2_500_000},
		{name: "sub-micro fraction truncates toward zero", input: "1.0000001", want: 1_000_000},
		{name: "truncates not rounds", input: "0.9999999", want: 999_999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "got %s", got)
		})
	}
}

func TestParseAmountRejectsZero(t *testing.T) {
	_, err := ParseAmount("0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestParseAmountRejectsNegative(t *testing.T) {
	_, err := ParseAmount("-5")
	require.Error(t, err)
}

func TestParseAmountRejectsNonNumeric(t *testing.T) {
	_, err := ParseAmount("ten dollars")
	require.Error(t, err)
}

func TestParseAmountCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{name: "single", input: "10", want: []int64{10_000_000}},
		{name: "multiple", input: "10,5", want: []int64{10_000_000, 5_000_000}},
		{name: "with spaces", input: "10, 5, 2.5", want: []int64{10_000_000, 5_000_000, 2_500_000}},
		{name: "zero allowed", input: "0,10", want: []int64{0, 10_000_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountCSV(tt.input)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, 0, got[i].Cmp(big.NewInt(w)), "element %d: got %s", i, got[i])
			}
		})
	}
}

func TestParseAmountCSVRejectsNegative(t *testing.T) {
	_, err := ParseAmountCSV("10,-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-5")
}

func TestParseAmountCSVRejectsNonNumeric(t *testing.T) {
	_, err := ParseAmountCSV("abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abc")
}
