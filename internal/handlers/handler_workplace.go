package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/SscSPs/crm_pos_app/internal/dto"
	"github.com/SscSPs/crm_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers workplace routes and the document, deal and pipeline
// routes nested under a single workplace.
func registerWorkplaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkplaceHandler(services.Workplace)

	workplacesTopLevel := rg.Group("/workplaces")
	{
		workplacesTopLevel.POST("", h.createWorkplace)
		workplacesTopLevel.GET("", h.listUserWorkplaces)
	}

	workplaceSpecific := rg.Group("/workplaces/:workplace_id")
	{
		workplaceSpecific.POST("/users", h.addUserToWorkplace)

		registerSaleRoutes(workplaceSpecific, services.Sale)
		registerPurchaseOrderRoutes(workplaceSpecific, services.PurchaseOrder)
		registerDealRoutes(workplaceSpecific, services.Deal)
		registerPipelineRoutes(workplaceSpecific, services.Pipeline)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a new workplace and assigns the creator as admin.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create workplace"
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	var req dto.CreateWorkplaceRequest
	if !bindJSON(c, &req, "CreateWorkplace") {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req.Name, req.Description, req.CurrencyCode, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create workplace")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workplace created", slog.String("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(newWorkplace))
}

// listUserWorkplaces godoc
// @Summary List workplaces for current user
// @Description Retrieves the active workplaces the authenticated user belongs to.
// @Tags workplaces
// @Produce  json
// @Success 200 {object} dto.ListWorkplacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list workplaces"
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listUserWorkplaces(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workplaces, err := h.workplaceService.ListUserWorkplaces(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list workplaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

// addUserToWorkplace godoc
// @Summary Add a user to a workplace
// @Description Adds a user to a workplace with a given role (requires admin permission).
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   user_details body dto.AddUserToWorkplaceRequest true "User ID and Role"
// @Success 201 {object} dto.UserWorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 500 {object} map[string]string "Failed to add user"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/users [post]
func (h *workplaceHandler) addUserToWorkplace(c *gin.Context) {
	workplaceID := c.Param("workplace_id")

	var req dto.AddUserToWorkplaceRequest
	if !bindJSON(c, &req, "AddUserToWorkplace") {
		return
	}
	addingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	membership, err := h.workplaceService.AddUserToWorkplace(c.Request.Context(), addingUserID, req.UserID, workplaceID, req.Role)
	if err != nil {
		respondError(c, err, "Failed to add user to workplace")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserWorkplaceResponse(membership))
}
