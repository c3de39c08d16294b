package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealStage is a phase of a deal's lifecycle.
type DealStage string

const (
	StageLead        DealStage = "lead"
	StageQualified   DealStage = "qualified"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageClosedWon   DealStage = "closed_won"
	StageClosedLost  DealStage = "closed_lost"
)

// DealStages lists every stage in declared order.
var DealStages = []DealStage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// TerminalDealStages end a deal's progression.
var TerminalDealStages = []DealStage{StageClosedWon, StageClosedLost}

var dealStageLabels = map[DealStage]string{
	StageLead:        "Lead",
	StageQualified:   "Qualified",
	StageProposal:    "Proposal",
	StageNegotiation: "Negotiation",
	StageClosedWon:   "Closed Won",
	StageClosedLost:  "Closed Lost",
}

// Label returns the display label of the stage.
func (s DealStage) Label() string {
	if l, ok := dealStageLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsValid reports whether s is a declared stage.
func (s DealStage) IsValid() bool {
	_, ok := dealStageLabels[s]
	return ok
}

// IsTerminal reports whether s is closed_won or closed_lost.
func (s DealStage) IsTerminal() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// PipelineStages returns the non-terminal stages in declared order.
func PipelineStages() []DealStage {
	stages := make([]DealStage, 0, len(DealStages))
	for _, s := range DealStages {
		if !s.IsTerminal() {
			stages = append(stages, s)
		}
	}
	return stages
}

// ContactRef is the minimal projection of a contact linked to a deal.
type ContactRef struct {
	ContactID string `json:"id"`
	FullName  string `json:"full_name"`
}

// CompanyRef is the minimal projection of a company linked to a deal.
type CompanyRef struct {
	CompanyID string `json:"id"`
	Name      string `json:"name"`
}

// Deal is a sales opportunity tracked through the pipeline.
type Deal struct {
	DealID            string           `json:"dealID"`
	WorkplaceID       string           `json:"workplaceID"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Value             *decimal.Decimal `json:"value"`
	Stage             DealStage        `json:"stage"`
	Probability       int              `json:"probability"` // 0..100
	ExpectedCloseDate *time.Time       `json:"expectedCloseDate,omitempty"`
	ActualCloseDate   *time.Time       `json:"actualCloseDate,omitempty"`
	Notes             string           `json:"notes"`
	ContactID         *string          `json:"contactID,omitempty"`
	CompanyID         *string          `json:"companyID,omitempty"`
	Contact           *ContactRef      `json:"contact,omitempty"`
	Company           *CompanyRef      `json:"company,omitempty"`
	AuditFields
}

// WeightedValue is Value scaled by Probability percent. A deal without a value weighs zero.
func (d Deal) WeightedValue() decimal.Decimal {
	if d.Value == nil {
		return decimal.Zero
	}
	return d.Value.Mul(decimal.NewFromInt(int64(d.Probability))).Div(decimal.NewFromInt(100))
}

// ValueOrZero returns Value, or zero when it is not set.
func (d Deal) ValueOrZero() decimal.Decimal {
	if d.Value == nil {
		return decimal.Zero
	}
	return *d.Value
}

// IsOpen reports whether the deal is still progressing.
func (d Deal) IsOpen() bool {
	return !d.Stage.IsTerminal()
}

// IsClosed reports whether the deal reached a terminal stage.
func (d Deal) IsClosed() bool {
	return d.Stage.IsTerminal()
}

// IsWon reports whether the deal was won.
func (d Deal) IsWon() bool {
	return d.Stage == StageClosedWon
}

// IsLost reports whether the deal was lost.
func (d Deal) IsLost() bool {
	return d.Stage == StageClosedLost
}
