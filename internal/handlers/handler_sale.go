package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/SscSPs/crm_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := &saleHandler{saleService: saleService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale, decrements product stock and assigns the next invoice number (INV-YYYYMMDD-NNNN).
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Concurrent numbering conflict, retry"
// @Failure 422 {object} map[string]string "Daily document limit reached"
// @Failure 500 {object} map[string]string "Failed to create sale"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	workplaceID := c.Param("workplace_id")

	var req dto.CreateSaleRequest
	if !bindJSON(c, &req, "CreateSale") {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create sale")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sale created", slog.String("sale_id", sale.SaleID), slog.String("number", sale.Number))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Lists the workplace's sales, newest first.
// @Tags sales
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	workplaceID := c.Param("workplace_id")

	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sales, next, err := h.saleService.ListSales(c.Request.Context(), workplaceID, q.Limit, q.NextToken, userID)
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales, next))
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to get sale"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("workplace_id"), c.Param("saleID"), userID)
	if err != nil {
		respondError(c, err, "Failed to get sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
