package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/crm_pos_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type pipelineHandler struct {
	pipelineService portssvc.PipelineSvc
}

func registerPipelineRoutes(rg *gin.RouterGroup, pipelineService portssvc.PipelineSvc) {
	h := &pipelineHandler{pipelineService: pipelineService}
	rg.GET("/pipeline", h.getPipeline)
}

// getPipeline godoc
// @Summary Get the sales pipeline
// @Description Groups the workplace's open deals by stage (lead, qualified, proposal, negotiation) with per-stage value totals.
// @Tags deals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} map[string]domain.PipelineStage
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to build pipeline"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/pipeline [get]
func (h *pipelineHandler) getPipeline(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.pipelineService.GetPipeline(c.Request.Context(), c.Param("workplace_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to build pipeline")
		return
	}

	c.JSON(http.StatusOK, view)
}
