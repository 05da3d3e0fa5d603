package handler

import (
	"encoding/json"
	"net/http"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/response"
	"medcare-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
	validator       *validator.CustomValidator
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase, validator *validator.CustomValidator) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

func (h *SettingsHandler) UpdateGeneral(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGeneralSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.UpdateGeneral(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}

func (h *SettingsHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.UpdateNotifications(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications updated successfully", settings)
}

func (h *SettingsHandler) ToggleNotification(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.settingsUsecase.ToggleNotification(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		switch err {
		case usecase.ErrUnknownNotification:
			response.NotFound(w, "Notification setting not found")
		default:
			response.InternalServerError(w, "Failed to toggle notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification toggled successfully", prefs)
}
