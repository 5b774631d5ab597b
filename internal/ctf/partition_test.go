package ctf

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPartitionDefault(t *testing.T) {
	p, err := BuildPartition("")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, int64(1), p[0].Int64())
	assert.Equal(t, int64(2), p[1].Int64())
}

func TestBuildPartitionPreservesOrder(t *testing.T) {
	p, err := BuildPartition("4,1,2")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, int64(4), p[0].Int64())
	assert.Equal(t, int64(1), p[1].Int64())
	assert.Equal(t, int64(2), p[2].Int64())
}

func TestBuildPartitionInvalid(t *testing.T) {
	_, err := BuildPartition("1,abc")
	require.Error(t, err)
}

func TestBuildIndexSetsDefault(t *testing.T) {
	s, err := BuildIndexSets("")
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, int64(1), s[0].Int64())
	assert.Equal(t, int64(2), s[1].Int64())
}

func TestDefaultPartitionReturnsFreshSlices(t *testing.T) {
	a := DefaultPartition()
	a[0].SetInt64(99)
	b := DefaultPartition()
	assert.Equal(t, 0, b[0].Cmp(big.NewInt(1)))
}

func TestParseParentCollectionDefaultsToZero(t *testing.T) {
	h, err := ParseParentCollection("")
	require.NoError(t, err)
	assert.Equal(t, common.Hash{}, h)
}

func TestParseParentCollectionParses(t *testing.T) {
	h, err := ParseParentCollection(validHash)
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, h)
}

func TestParseParentCollectionInvalidFails(t *testing.T) {
	_, err := ParseParentCollection("garbage")
	require.Error(t, err)
}
