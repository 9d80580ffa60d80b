// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/dashboard
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute dashboard metrics")
		return
	}

	utils.SuccessResponse(c, metrics)
}
