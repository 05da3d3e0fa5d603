package converter

import (
	"time"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// The date is rendered as a calendar day in loc.
func AppointmentToResponse(appointment *entity.Appointment, loc *time.Location) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.PatientName,
		PatientID:   appointment.PatientID,
		DoctorName:  appointment.DoctorName,
		Department:  appointment.Department,
		Date:        appointment.Date.In(loc).Format(dto.DateLayout),
		Time:        appointment.Time,
		Status:      string(appointment.Status),
		StatusLabel: appointment.Status.Label(),
		Reason:      appointment.Reason,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], loc)
	}
	return responses
}

// TimeSlotsToResponses converts grouped appointments keeping slot order
func TimeSlotsToResponses(slots []entity.TimeSlot, loc *time.Location) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{
			Time:         slot.Key,
			Appointments: AppointmentsToResponses(slot.Appointments, loc),
		}
	}
	return responses
}
