package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/projectpulse/projectpulse-api/internal/analytics"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

const maxTrendDays = 365

// AnalyticsHandler handles analytics related HTTP requests
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(as *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: as,
	}
}

// GetOverview handles fetching the full analytics bundle. The optional
// timeRange query parameter sets the trend window in days (default 7).
func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	windowDays := analytics.DefaultTrendDays
	if timeRange := r.URL.Query().Get("timeRange"); timeRange != "" {
		parsed, err := strconv.Atoi(timeRange)
		if err != nil || parsed < 1 || parsed > maxTrendDays {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid timeRange. Must be a number of days between 1 and 365.")
			return
		}
		windowDays = parsed
	}

	// The clock enters here so the engine itself stays deterministic.
	overview, err := h.analyticsService.GetOverview(windowDays, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve analytics data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, overview)
}
