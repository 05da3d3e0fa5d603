package entity

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// PatientFilter is a domain-level filter for the patient table.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Query string // Matches name, ID or phone (case-insensitive substring)
}

// Match reports whether the patient satisfies the filter
func (f *PatientFilter) Match(p *Patient) bool {
	if f == nil || f.Query == "" {
		return true
	}
	return containsFold(p.Name, f.Query) ||
		containsFold(p.ID, f.Query) ||
		containsFold(p.Phone, f.Query)
}

// DoctorFilter is a domain-level filter for the doctor directory
type DoctorFilter struct {
	Query      string // Matches name or specialization (case-insensitive substring)
	Department string // Exact match, empty means all departments
}

// Match reports whether the doctor satisfies the filter
func (f *DoctorFilter) Match(d *Doctor) bool {
	if f == nil {
		return true
	}
	if f.Department != "" && d.Department != f.Department {
		return false
	}
	if f.Query == "" {
		return true
	}
	return containsFold(d.Name, f.Query) || containsFold(d.Specialization, f.Query)
}

// AppointmentFilter selects the appointments of a single calendar day.
// A nil Date means no day is selected and nothing matches.
type AppointmentFilter struct {
	Date     *time.Time
	Location *time.Location // Day boundaries are computed here, defaults to time.Local
}

// DayRange returns the [start, end) bounds of the selected day
func (f *AppointmentFilter) DayRange() (time.Time, time.Time) {
	start := now.With(f.Date.In(f.location())).BeginningOfDay()
	return start, start.AddDate(0, 0, 1)
}

// Match reports whether the appointment falls on the selected day
func (f *AppointmentFilter) Match(a *Appointment) bool {
	if f == nil || f.Date == nil {
		return false
	}
	loc := f.location()
	return now.With(a.Date.In(loc)).BeginningOfDay().Equal(now.With(f.Date.In(loc)).BeginningOfDay())
}

func (f *AppointmentFilter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// FilterPatients returns the patients matching the filter, preserving input order
func FilterPatients(patients []Patient, filter *PatientFilter) []Patient {
	return filterSlice(patients, filter.Match)
}

// FilterDoctors returns the doctors matching the filter, preserving input order
func FilterDoctors(doctors []Doctor, filter *DoctorFilter) []Doctor {
	return filterSlice(doctors, filter.Match)
}

// FilterAppointments returns the appointments of the selected day, preserving input order
func FilterAppointments(appointments []Appointment, filter *AppointmentFilter) []Appointment {
	return filterSlice(appointments, filter.Match)
}

func filterSlice[T any](items []T, match func(*T) bool) []T {
	result := make([]T, 0, len(items))
	for i := range items {
		if match(&items[i]) {
			result = append(result, items[i])
		}
	}
	return result
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
