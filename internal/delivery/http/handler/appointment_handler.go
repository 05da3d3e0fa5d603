package handler

import (
	"net/http"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/response"
	"medcare-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetSchedule handles the appointment schedule grouped by time slot
// @Summary Get the schedule of a day
// @Description Without a date parameter today is used, an empty date selects no day
// @Tags Appointments
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments/schedule [get]
func (h *AppointmentHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	schedule, err := h.appointmentUsecase.GetSchedule(r.Context(), query.Date)
	if err != nil {
		h.writeError(w, err, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// GetAll handles the flat appointment list of a day
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByDate(r.Context(), query.Date)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointmentUsecase.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) parseQuery(w http.ResponseWriter, r *http.Request) (dto.AppointmentQuery, bool) {
	values := r.URL.Query()

	query := dto.AppointmentQuery{Date: values.Get("date")}
	if !values.Has("date") {
		query.Date = h.appointmentUsecase.Today()
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return query, false
	}
	return query, true
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, message string) {
	switch err {
	case usecase.ErrInvalidDate:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	default:
		response.InternalServerError(w, message)
	}
}
