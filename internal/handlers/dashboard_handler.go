package handlers

import (
	"net/http"

	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// DashboardHandler handles dashboard related HTTP requests
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ds *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: ds,
	}
}

// GetStats handles fetching the dashboard headline counts and recent activity
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stats)
}
