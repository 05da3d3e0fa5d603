package handler

import (
	"net/http"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/response"
	"medcare-admin/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// GetReport handles the reports page
// @Summary Get hospital reports
// @Tags Reports
// @Produce json
// @Param range query string false "week, month, quarter or year" default(month)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	query := dto.ReportQuery{Range: r.URL.Query().Get("range")}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Get(r.Context(), query.Range)
	if err != nil {
		switch err {
		case usecase.ErrInvalidReportRange:
			response.BadRequest(w, "Invalid report range, use week, month, quarter or year")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}
