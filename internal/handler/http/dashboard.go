package http

import (
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/summary"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDailyStats returns the day's aggregate rollup
	GetDailyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService summary.Service
}

func NewDashboardHandler(dashboardService summary.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDailyStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.DailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
