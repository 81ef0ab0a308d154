package ads

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutateOperationJSONKeys(t *testing.T) {
	t.Run("create carries only its own operation key", func(t *testing.T) {
		op := MutateOperation{
			CampaignBudget: Create(&CampaignBudget{Name: "Budget", AmountMicros: 10_000_000}),
		}

		data, err := json.Marshal(op)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 1)

		budgetOp, ok := decoded["campaignBudgetOperation"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, budgetOp, "create")
		assert.NotContains(t, budgetOp, "update")
		assert.NotContains(t, budgetOp, "remove")
	})

	t.Run("update carries the field mask", func(t *testing.T) {
		op := MutateOperation{
			Campaign: Update(&Campaign{ResourceName: "customers/123/campaigns/456", Status: "PAUSED"}, "status"),
		}

		data, err := json.Marshal(op)
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		campaignOp := decoded["campaignOperation"]
		assert.Contains(t, campaignOp, "update")
		assert.Equal(t, "status", campaignOp["updateMask"])
	})

	t.Run("remove carries only the resource name", func(t *testing.T) {
		op := MutateOperation{
			AdGroupCriterion: Remove[AdGroupCriterion]("customers/123/adGroupCriteria/456~789"),
		}

		data, err := json.Marshal(op)
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		criterionOp := decoded["adGroupCriterionOperation"]
		assert.Equal(t, "customers/123/adGroupCriteria/456~789", criterionOp["remove"])
		assert.NotContains(t, criterionOp, "create")
		assert.NotContains(t, criterionOp, "update")
	})
}

func TestMutateOperationResponseResourceName(t *testing.T) {
	tests := []struct {
		name     string
		response MutateOperationResponse
		expected string
	}{
		{
			name:     "campaign result",
			response: MutateOperationResponse{CampaignResult: &MutateResult{ResourceName: "customers/123/campaigns/456"}},
			expected: "customers/123/campaigns/456",
		},
		{
			name:     "label result",
			response: MutateOperationResponse{LabelResult: &MutateResult{ResourceName: "customers/123/labels/7"}},
			expected: "customers/123/labels/7",
		},
		{
			name:     "no result present",
			response: MutateOperationResponse{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.response.ResourceName())
		})
	}
}

func TestBatchItems(t *testing.T) {
	responses := []MutateOperationResponse{
		{AdGroupCriterionResult: &MutateResult{ResourceName: "customers/123/adGroupCriteria/456~1"}},
		{},
		{AdGroupCriterionResult: &MutateResult{ResourceName: "customers/123/adGroupCriteria/456~3"}},
	}

	items := batchItems(responses)
	require.Len(t, items, 3)

	assert.Equal(t, BatchItem{Index: 0, ResourceName: "customers/123/adGroupCriteria/456~1", ID: "456~1", Succeeded: true}, items[0])
	assert.Equal(t, BatchItem{Index: 1, ResourceName: "", ID: "", Succeeded: false}, items[1])
	assert.True(t, items[2].Succeeded)

	assert.Equal(t, 2, SucceededCount(items))
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "456", lastPathSegment("customers/123/campaigns/456"))
	assert.Equal(t, "plain", lastPathSegment("plain"))
	assert.Equal(t, "", lastPathSegment(""))
}
