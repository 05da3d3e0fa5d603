package handler

import (
	"net/http"
	"strconv"

	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	activityUsecase  usecase.ActivityUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, activityUsecase usecase.ActivityUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		activityUsecase:  activityUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.activityUsecase.GetRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get activities")
		return
	}

	response.Success(w, http.StatusOK, "Activities retrieved successfully", activities)
}
