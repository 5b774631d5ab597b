package ctf

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHash = "0x0000000000000000000000000000000000000000000000000000000000000001"

func TestParseHash32(t *testing.T) {
	h, err := ParseHash32(validHash)
	require.NoError(t, err)
	assert.Equal(t, validHash, h.Hex())
}

func TestParseHash32MixedCase(t *testing.T) {
	_, err := ParseHash32("0x" + strings.Repeat("aB", 32))
	require.NoError(t, err)
}

func TestParseHash32Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing prefix", input: strings.Repeat("00", 32)},
		{name: "uppercase prefix", input: "0X" + strings.Repeat("00", 32)},
		{name: "too short", input: "0x" + strings.Repeat("0", 63)},
		{name: "too long", input: "0x" + strings.Repeat("0", 65)},
		{name: "non-hex", input: "0x" + strings.Repeat("0", 62) + "zz"},
		{name: "garbage", input: "garbage"},
		{name: "empty", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHash32(tt.input)
			require.Error(t, err)
		})
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174")
	require.NoError(t, err)
	assert.Equal(t, "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", addr.Hex())
}

func TestParseAddressRejects(t *testing.T) {
	for _, input := range []string{
		"2791Bca1f2de4661ED88A30C99A7a9449Aa84174", // no prefix
		"0x2791",                 // too short
		"0x" + strings.Repeat("0", 41), // wrong length
		"0x" + strings.Repeat("g", 40), // non-hex
		"",
	} {
		_, err := ParseAddress(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParseUintCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{name: "binary", input: "1,2", want: []int64{1, 2}},
		{name: "three outcome", input: "1,2,4", want: []int64{1, 2, 4}},
		{name: "whitespace tolerated", input: "1, 2, 4", want: []int64{1, 2, 4}},
		{name: "single", input: "1", want: []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUintCSV(tt.input)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, 0, got[i].Cmp(big.NewInt(w)))
			}
		})
	}
}

func TestParseUintCSVFailsWhole(t *testing.T) {
	_, err := ParseUintCSV("1,abc,3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "position 2")
}

func TestParseUintCSVRejectsEmptyElement(t *testing.T) {
	_, err := ParseUintCSV("1,,3")
	require.Error(t, err)
}

func TestParseUintCSVRejectsNegative(t *testing.T) {
	_, err := ParseUintCSV("1,-2")
	require.Error(t, err)
}
