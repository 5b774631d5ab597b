package ctf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind     Kind
		label    string
		mutating bool
	}{
		{KindSplit, "split position", true},
		{KindMerge, "merge positions", true},
		{KindRedeem, "redeem positions", true},
		{KindRedeemNegRisk, "redeem neg-risk positions", true},
		{KindConditionID, "condition id", false},
		{KindCollectionID, "collection id", false},
		{KindPositionID, "position id", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.kind.Label())
			assert.Equal(t, tt.mutating, tt.kind.Mutating())
		})
	}
}
