package handler

import (
	"net/http"
	"strconv"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/response"
	"medcare-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetAll handles the patient table
// @Summary List patients
// @Description Search patients by name, ID or phone and return one page of the matches
// @Tags Patients
// @Produce json
// @Param search query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	query := dto.PatientListQuery{
		Search: r.URL.Query().Get("search"),
		Page:   page,
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.GetPage(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	meta := &response.Meta{
		Page:       result.Page,
		Limit:      result.PageSize,
		Total:      int64(result.Total),
		TotalPages: result.TotalPages,
		From:       result.From,
		To:         result.To,
		Pages:      result.Pages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", result.Patients, meta)
}

// GetByID handles getting a patient by ID
// @Summary Get patient by ID
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
