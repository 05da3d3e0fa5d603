package dto

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Request DTOs

type AppointmentQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	PatientID   string `json:"patient_id"`
	DoctorName  string `json:"doctor_name"`
	Department  string `json:"department"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Reason      string `json:"reason"`
}

type TimeSlotResponse struct {
	Time         string                `json:"time"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// ScheduleResponse is the appointments of one day grouped by time slot
type ScheduleResponse struct {
	Date   string             `json:"date,omitempty"`
	Policy string             `json:"policy"`
	Slots  []TimeSlotResponse `json:"slots"`
	Total  int                `json:"total"`
}

type AppointmentListResponse struct {
	Date         string                `json:"date,omitempty"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
