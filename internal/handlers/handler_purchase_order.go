package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/SscSPs/crm_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type purchaseOrderHandler struct {
	poService portssvc.PurchaseOrderSvcFacade
}

func registerPurchaseOrderRoutes(rg *gin.RouterGroup, poService portssvc.PurchaseOrderSvcFacade) {
	h := &purchaseOrderHandler{poService: poService}

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.createPurchaseOrder)
		pos.GET("", h.listPurchaseOrders)
		pos.GET("/:purchaseOrderID", h.getPurchaseOrder)
		pos.POST("/:purchaseOrderID/receive", h.receivePurchaseOrder)
		pos.POST("/:purchaseOrderID/cancel", h.cancelPurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Place a purchase order
// @Description Places an order with a supplier and assigns the next PO number (PO-YYYYMMDD-NNNN).
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   purchaseOrder body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Concurrent numbering conflict, retry"
// @Failure 422 {object} map[string]string "Daily document limit reached"
// @Failure 500 {object} map[string]string "Failed to create purchase order"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	workplaceID := c.Param("workplace_id")

	var req dto.CreatePurchaseOrderRequest
	if !bindJSON(c, &req, "CreatePurchaseOrder") {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create purchase order")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase order created",
		slog.String("purchase_order_id", po.PurchaseOrderID), slog.String("number", po.Number))
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(po))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Description Lists the workplace's purchase orders, newest first.
// @Tags purchase-orders
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list purchase orders"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pos, next, err := h.poService.ListPurchaseOrders(c.Request.Context(), c.Param("workplace_id"), q.Limit, q.NextToken, userID)
	if err != nil {
		respondError(c, err, "Failed to list purchase orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseOrdersResponse(pos, next))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   purchaseOrderID path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to get purchase order"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/purchase-orders/{purchaseOrderID} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	po, err := h.poService.GetPurchaseOrderByID(c.Request.Context(), c.Param("workplace_id"), c.Param("purchaseOrderID"), userID)
	if err != nil {
		respondError(c, err, "Failed to get purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// receivePurchaseOrder godoc
// @Summary Receive a purchase order
// @Description Books the ordered quantities into stock. Only ORDERED purchase orders can be received.
// @Tags purchase-orders
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   purchaseOrderID path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Purchase order is not ORDERED"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to receive purchase order"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/purchase-orders/{purchaseOrderID}/receive [post]
func (h *purchaseOrderHandler) receivePurchaseOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	po, err := h.poService.ReceivePurchaseOrder(c.Request.Context(), c.Param("workplace_id"), c.Param("purchaseOrderID"), userID)
	if err != nil {
		respondError(c, err, "Failed to receive purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// cancelPurchaseOrder godoc
// @Summary Cancel a purchase order
// @Description Cancels an ORDERED purchase order. Its number is not reused.
// @Tags purchase-orders
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   purchaseOrderID path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Purchase order is not ORDERED"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 500 {object} map[string]string "Failed to cancel purchase order"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/purchase-orders/{purchaseOrderID}/cancel [post]
func (h *purchaseOrderHandler) cancelPurchaseOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	po, err := h.poService.CancelPurchaseOrder(c.Request.Context(), c.Param("workplace_id"), c.Param("purchaseOrderID"), userID)
	if err != nil {
		respondError(c, err, "Failed to cancel purchase order")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}
