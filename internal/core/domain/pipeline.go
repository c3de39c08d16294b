package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PipelineDeal is the display-safe projection of an open deal.
type PipelineDeal struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Value             *decimal.Decimal `json:"value"`
	FormattedValue    string           `json:"formatted_value"`
	Stage             DealStage        `json:"stage"`
	StageLabel        string           `json:"stage_label"`
	Probability       int              `json:"probability"`
	WeightedValue     decimal.Decimal  `json:"weighted_value"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date"`
	ActualCloseDate   *time.Time       `json:"actual_close_date"`
	Notes             string           `json:"notes"`
	IsOpen            bool             `json:"is_open"`
	IsClosed          bool             `json:"is_closed"`
	Contact           *ContactRef      `json:"contact"`
	Company           *CompanyRef      `json:"company"`
}

// PipelineStage groups the open deals of one stage.
type PipelineStage struct {
	Stage      DealStage       `json:"-"`
	Label      string          `json:"label"`
	Deals      []PipelineDeal  `json:"deals"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// MarshalJSON writes total_value as a JSON number rather than decimal's default string.
func (st PipelineStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label      string         `json:"label"`
		Deals      []PipelineDeal `json:"deals"`
		TotalValue json.Number    `json:"total_value"`
	}{
		Label:      st.Label,
		Deals:      st.Deals,
		TotalValue: json.Number(st.TotalValue.String()),
	})
}

// PipelineView is the per-stage summary of a workplace's open deals. Stages keep their
// declared order; it is recomputed on every read and never stored.
type PipelineView struct {
	Stages []PipelineStage
}

// NewPipelineView returns a view holding every pipeline stage with no deals and zero totals.
func NewPipelineView() *PipelineView {
	stages := PipelineStages()
	view := &PipelineView{Stages: make([]PipelineStage, len(stages))}
	for i, s := range stages {
		view.Stages[i] = PipelineStage{
			Stage:      s,
			Label:      s.Label(),
			Deals:      []PipelineDeal{},
			TotalValue: decimal.Zero,
		}
	}
	return view
}

// Stage returns the entry for s, or nil when s is not a pipeline stage.
func (v *PipelineView) Stage(s DealStage) *PipelineStage {
	for i := range v.Stages {
		if v.Stages[i].Stage == s {
			return &v.Stages[i]
		}
	}
	return nil
}

// MarshalJSON encodes the view as an object keyed by stage, in stage order.
func (v PipelineView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, st := range v.Stages {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(st.Stage))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(st)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
