package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityResponse struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardResponse struct {
	TotalPatients        int64                 `json:"total_patients"`
	TotalDoctors         int64                 `json:"total_doctors"`
	AppointmentsThisWeek int64                 `json:"appointments_this_week"`
	OccupancyRate        decimal.Decimal       `json:"occupancy_rate"`
	CriticalPatients     int64                 `json:"critical_patients"`
	AvailableDoctors     int64                 `json:"available_doctors"`
	AppointmentsByStatus map[string]int        `json:"appointments_by_status"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	RecentActivities     []ActivityResponse    `json:"recent_activities"`
	GeneratedAt          time.Time             `json:"generated_at"`
}
