package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dashboarddto "github.com/fiberdesk/fiberdesk/internal/application/dashboard/dto"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

type getDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*dashboarddto.StatsResponse, error)
}

type DashboardHandler struct {
	getStatsUC getDashboardStatsUseCase
	logger     logger.Interface
}

func NewDashboardHandler(getStatsUC getDashboardStatsUseCase, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{getStatsUC: getStatsUC, logger: log}
}

// GetStats returns the dashboard snapshot
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboarddto.StatsResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
