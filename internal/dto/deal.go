package dto

import (
	"time"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Deal DTOs ---

// CreateDealRequest defines data for opening a deal.
type CreateDealRequest struct {
	Title             string           `json:"title" binding:"required,max=255"`
	Description       string           `json:"description"`
	Value             *decimal.Decimal `json:"value"`
	Stage             domain.DealStage `json:"stage" binding:"required,dealstage"`
	Probability       *int             `json:"probability" binding:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time       `json:"expectedCloseDate"`
	Notes             string           `json:"notes"`
	ContactID         *string          `json:"contactID"`
	CompanyID         *string          `json:"companyID"`
}

// DealResponse defines data returned for a deal.
type DealResponse struct {
	DealID            string             `json:"dealID"`
	WorkplaceID       string             `json:"workplaceID"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Value             *decimal.Decimal   `json:"value"`
	Stage             domain.DealStage   `json:"stage"`
	StageLabel        string             `json:"stageLabel"`
	Probability       int                `json:"probability"`
	WeightedValue     decimal.Decimal    `json:"weightedValue"`
	ExpectedCloseDate *time.Time         `json:"expectedCloseDate,omitempty"`
	ActualCloseDate   *time.Time         `json:"actualCloseDate,omitempty"`
	Notes             string             `json:"notes"`
	Contact           *domain.ContactRef `json:"contact,omitempty"`
	Company           *domain.CompanyRef `json:"company,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
}

// ToDealResponse converts domain.Deal to DTO.
func ToDealResponse(d *domain.Deal) DealResponse {
	return DealResponse{
		DealID:            d.DealID,
		WorkplaceID:       d.WorkplaceID,
		Title:             d.Title,
		Description:       d.Description,
		Value:             d.Value,
		Stage:             d.Stage,
		StageLabel:        d.Stage.Label(),
		Probability:       d.Probability,
		WeightedValue:     d.WeightedValue(),
		ExpectedCloseDate: d.ExpectedCloseDate,
		ActualCloseDate:   d.ActualCloseDate,
		Notes:             d.Notes,
		Contact:           d.Contact,
		Company:           d.Company,
		CreatedAt:         d.CreatedAt,
		CreatedBy:         d.CreatedBy,
	}
}
