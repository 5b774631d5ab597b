package cli

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyptokoz-svg/polymarket-cli/internal/config"
	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
)

const (
	testCondition = "0x0000000000000000000000000000000000000000000000000000000000000001"
	testParent    = "0x00000000000000000000000000000000000000000000000000000000000000aa"
)

func TestBuildSplitRequestDefaults(t *testing.T) {
	req, err := buildSplitRequest(splitFlags{
		condition: testCondition,
		amount:    "10",
	}, config.PolygonUSDC)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(config.PolygonUSDC), req.CollateralToken)
	assert.Equal(t, common.Hash{}, req.ParentCollectionID)
	assert.Equal(t, common.HexToHash(testCondition), req.ConditionID)
	assert.Equal(t, big.NewInt(10_000_000), req.Amount)
	require.Len(t, req.Partition, 2)
	assert.Equal(t, int64(1), req.Partition[0].Int64())
	assert.Equal(t, int64(2), req.Partition[1].Int64())
}

func TestBuildSplitRequestOverrides(t *testing.T) {
	custom := "0x1111111111111111111111111111111111111111"
	req, err := buildSplitRequest(splitFlags{
		condition:        testCondition,
		amount:           "1.5",
		collateral:       custom,
		partition:        "1,2,4",
		parentCollection: testParent,
	}, config.PolygonUSDC)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(custom), req.CollateralToken)
	assert.Equal(t, common.HexToHash(testParent), req.ParentCollectionID)
	assert.Equal(t, big.NewInt(1_500_000), req.Amount)
	require.Len(t, req.Partition, 3)
	assert.Equal(t, int64(4), req.Partition[2].Int64())
}

func TestBuildSplitRequestRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		f    splitFlags
	}{
		{"short condition", splitFlags{condition: "0x01", amount: "10"}},
		{"zero amount", splitFlags{condition: testCondition, amount: "0"}},
		{"bad partition", splitFlags{condition: testCondition, amount: "10", partition: "1,x"}},
		{"bad parent", splitFlags{condition: testCondition, amount: "10", parentCollection: "zzz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildSplitRequest(tt.f, config.PolygonUSDC)
			assert.Error(t, err)
		})
	}
}

func TestBuildMergeRequestMirrorsSplit(t *testing.T) {
	f := splitFlags{condition: testCondition, amount: "0.01"}
	merge, err := buildMergeRequest(f, config.PolygonUSDC)
	require.NoError(t, err)
	split, err := buildSplitRequest(f, config.PolygonUSDC)
	require.NoError(t, err)

	assert.Equal(t, split.ConditionID, merge.ConditionID)
	assert.Equal(t, split.Amount, merge.Amount)
	assert.Equal(t, split.Partition, merge.Partition)
}

func TestBuildRedeemRequestDefaultIndexSets(t *testing.T) {
	req, err := buildRedeemRequest(redeemFlags{condition: testCondition}, config.PolygonUSDC)
	require.NoError(t, err)
	require.Len(t, req.IndexSets, 2)
	assert.Equal(t, int64(1), req.IndexSets[0].Int64())
	assert.Equal(t, int64(2), req.IndexSets[1].Int64())
}

func TestBuildRedeemRequestCustomIndexSets(t *testing.T) {
	req, err := buildRedeemRequest(redeemFlags{
		condition: testCondition,
		indexSets: "1",
	}, config.PolygonUSDC)
	require.NoError(t, err)
	require.Len(t, req.IndexSets, 1)
	assert.Equal(t, int64(1), req.IndexSets[0].Int64())
}

func TestBuildRedeemNegRiskRequest(t *testing.T) {
	req, err := buildRedeemNegRiskRequest(testCondition, "10,0,2.5")
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(testCondition), req.ConditionID)
	require.Len(t, req.Amounts, 3)
	assert.Equal(t, int64(10_000_000), req.Amounts[0].Int64())
	assert.Equal(t, int64(0), req.Amounts[1].Int64())
	assert.Equal(t, int64(2_500_000), req.Amounts[2].Int64())
}

func TestBuildRedeemNegRiskRequestRejectsNegative(t *testing.T) {
	_, err := buildRedeemNegRiskRequest(testCondition, "10,-5")
	assert.Error(t, err)
}

func TestWrapPrefixesOperationLabel(t *testing.T) {
	cause := errors.New("insufficient funds")

	err := wrap(ctf.KindSplit.Label(), cause)
	require.Error(t, err)
	assert.Equal(t, "split position: insufficient funds", err.Error())
	assert.ErrorIs(t, err, cause)

	err = wrap(ctf.KindRedeemNegRisk.Label(), cause)
	require.Error(t, err)
	assert.Equal(t, "redeem neg-risk positions: insufficient funds", err.Error())

	assert.NoError(t, wrap(ctf.KindSplit.Label(), nil))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "fallback", orDefault("", "fallback"))
	assert.Equal(t, "given", orDefault("given", "fallback"))
}
