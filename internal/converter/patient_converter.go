package converter

import (
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/pkg/pagination"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:     patient.ID,
		Name:   patient.Name,
		Age:    patient.Age,
		Gender: patient.Gender,
		Phone:  patient.Phone,
		Status: string(patient.Status),
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientPageToResponse converts a page of patients together with its button window
func PatientPageToResponse(page pagination.Page[entity.Patient], window int) *dto.PatientPageResponse {
	return &dto.PatientPageResponse{
		Patients:   PatientsToResponses(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.TotalItems,
		TotalPages: page.TotalPages,
		From:       page.From(),
		To:         page.To(),
		HasNext:    page.HasNext(),
		HasPrev:    page.HasPrevious(),
		Pages:      pagination.Window(page.Page, page.TotalPages, window),
	}
}
