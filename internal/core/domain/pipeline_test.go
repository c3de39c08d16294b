package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineView(t *testing.T) {
	view := NewPipelineView()

	require.Len(t, view.Stages, 4)
	for i, s := range PipelineStages() {
		assert.Equal(t, s, view.Stages[i].Stage)
		assert.Equal(t, s.Label(), view.Stages[i].Label)
		assert.Empty(t, view.Stages[i].Deals)
		assert.True(t, view.Stages[i].TotalValue.IsZero())
	}
	assert.Nil(t, view.Stage(StageClosedWon))
	assert.NotNil(t, view.Stage(StageLead))
}

func TestPipelineViewMarshalJSON_KeepsStageOrder(t *testing.T) {
	view := NewPipelineView()
	view.Stage(StageProposal).TotalValue = decimal.RequireFromString("150.5")

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	out := string(raw)

	lead := strings.Index(out, `"lead"`)
	qualified := strings.Index(out, `"qualified"`)
	proposal := strings.Index(out, `"proposal"`)
	negotiation := strings.Index(out, `"negotiation"`)
	assert.True(t, lead < qualified && qualified < proposal && proposal < negotiation, out)
	assert.NotContains(t, out, "closed_won")

	var decoded map[string]struct {
		Label      string            `json:"label"`
		Deals      []json.RawMessage `json:"deals"`
		TotalValue json.Number       `json:"total_value"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Proposal", decoded["proposal"].Label)
	assert.Equal(t, json.Number("150.5"), decoded["proposal"].TotalValue)
	assert.Equal(t, json.Number("0"), decoded["lead"].TotalValue)
	assert.Contains(t, out, `"total_value":150.5`)
	assert.NotNil(t, decoded["lead"].Deals)
	assert.Empty(t, decoded["lead"].Deals)
}
