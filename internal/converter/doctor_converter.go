package converter

import (
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Department:     doctor.Department,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		Patients:       doctor.Patients,
		Rating:         doctor.Rating,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Status:         string(doctor.Status),
		StatusLabel:    doctor.Status.Label(),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
