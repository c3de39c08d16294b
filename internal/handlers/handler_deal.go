package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

func registerDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := &dealHandler{dealService: dealService}

	deals := rg.Group("/deals")
	{
		deals.POST("", h.createDeal)
		deals.GET("/:dealID", h.getDeal)
	}
}

// createDeal godoc
// @Summary Open a deal
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   deal body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create deal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/deals [post]
func (h *dealHandler) createDeal(c *gin.Context) {
	var req dto.CreateDealRequest
	if !bindJSON(c, &req, "CreateDeal") {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), c.Param("workplace_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create deal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// getDeal godoc
// @Summary Get a deal
// @Tags deals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   dealID path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Deal not found"
// @Failure 500 {object} map[string]string "Failed to get deal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/deals/{dealID} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	deal, err := h.dealService.GetDealByID(c.Request.Context(), c.Param("workplace_id"), c.Param("dealID"), userID)
	if err != nil {
		respondError(c, err, "Failed to get deal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}
