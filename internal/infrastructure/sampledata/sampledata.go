// Package sampledata provides the static hospital records the dashboard is
// served from when no database is configured. The same records are written
// to the database by the seed command.
package sampledata

import (
	"time"

	"medcare-admin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func Patients() []entity.Patient {
	return []entity.Patient{
		{ID: "PAT-2023-001", Name: "John Smith", Age: 45, Gender: entity.GenderMale, Phone: "555-123-4567", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-002", Name: "Emily Johnson", Age: 32, Gender: entity.GenderFemale, Phone: "555-234-5678", Status: entity.PatientStatusRecovering},
		{ID: "PAT-2023-003", Name: "Michael Wilson", Age: 58, Gender: entity.GenderMale, Phone: "555-345-6789", Status: entity.PatientStatusCritical},
		{ID: "PAT-2023-004", Name: "Sarah Brown", Age: 27, Gender: entity.GenderFemale, Phone: "555-456-7890", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-005", Name: "David Garcia", Age: 62, Gender: entity.GenderMale, Phone: "555-567-8901", Status: entity.PatientStatusRecovering},
		{ID: "PAT-2023-006", Name: "Jessica Martinez", Age: 39, Gender: entity.GenderFemale, Phone: "555-678-9012", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-007", Name: "Robert Anderson", Age: 51, Gender: entity.GenderMale, Phone: "555-789-0123", Status: entity.PatientStatusCritical},
		{ID: "PAT-2023-008", Name: "Lisa Thomas", Age: 29, Gender: entity.GenderFemale, Phone: "555-890-1234", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-009", Name: "Daniel Lee", Age: 43, Gender: entity.GenderMale, Phone: "555-901-2345", Status: entity.PatientStatusRecovering},
		{ID: "PAT-2023-010", Name: "Amy White", Age: 36, Gender: entity.GenderFemale, Phone: "555-012-3456", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-011", Name: "James Harris", Age: 55, Gender: entity.GenderMale, Phone: "555-123-4567", Status: entity.PatientStatusCritical},
		{ID: "PAT-2023-012", Name: "Jennifer Clark", Age: 31, Gender: entity.GenderFemale, Phone: "555-234-5678", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-013", Name: "Christopher Lewis", Age: 47, Gender: entity.GenderMale, Phone: "555-345-6789", Status: entity.PatientStatusRecovering},
		{ID: "PAT-2023-014", Name: "Michelle Walker", Age: 28, Gender: entity.GenderFemale, Phone: "555-456-7890", Status: entity.PatientStatusActive},
		{ID: "PAT-2023-015", Name: "Kevin Hall", Age: 60, Gender: entity.GenderMale, Phone: "555-567-8901", Status: entity.PatientStatusCritical},
	}
}

func Doctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "DOC-2023-001", Name: "Maria Rodriguez", Department: "Cardiology", Specialization: "Interventional Cardiologist", Experience: 12, Patients: 1245, Rating: rating("4.8"), Email: "m.rodriguez@hospital.com", Phone: "555-123-4567", Status: entity.DoctorStatusAvailable},
		{ID: "DOC-2023-002", Name: "James Wilson", Department: "Orthopedics", Specialization: "Joint Replacement Specialist", Experience: 15, Patients: 980, Rating: rating("4.7"), Email: "j.wilson@hospital.com", Phone: "555-234-5678", Status: entity.DoctorStatusInClinic},
		{ID: "DOC-2023-003", Name: "Sarah Chen", Department: "Neurology", Specialization: "Neurologist", Experience: 10, Patients: 875, Rating: rating("4.9"), Email: "s.chen@hospital.com", Phone: "555-345-6789", Status: entity.DoctorStatusAvailable},
		{ID: "DOC-2023-004", Name: "David Kim", Department: "Dermatology", Specialization: "Dermatologist", Experience: 8, Patients: 1050, Rating: rating("4.6"), Email: "d.kim@hospital.com", Phone: "555-456-7890", Status: entity.DoctorStatusOnLeave},
		{ID: "DOC-2023-005", Name: "Lisa Martinez", Department: "Ophthalmology", Specialization: "Ophthalmic Surgeon", Experience: 14, Patients: 1320, Rating: rating("4.8"), Email: "l.martinez@hospital.com", Phone: "555-567-8901", Status: entity.DoctorStatusInClinic},
		{ID: "DOC-2023-006", Name: "Michael Taylor", Department: "General Medicine", Specialization: "General Physician", Experience: 20, Patients: 1560, Rating: rating("4.9"), Email: "m.taylor@hospital.com", Phone: "555-678-9012", Status: entity.DoctorStatusAvailable},
		{ID: "DOC-2023-007", Name: "Jennifer White", Department: "Pediatrics", Specialization: "Pediatrician", Experience: 11, Patients: 925, Rating: rating("4.7"), Email: "j.white@hospital.com", Phone: "555-789-0123", Status: entity.DoctorStatusInClinic},
		{ID: "DOC-2023-008", Name: "Robert Lee", Department: "Psychiatry", Specialization: "Psychiatrist", Experience: 16, Patients: 740, Rating: rating("4.5"), Email: "r.lee@hospital.com", Phone: "555-890-1234", Status: entity.DoctorStatusOnLeave},
		{ID: "DOC-2023-009", Name: "Emily Harris", Department: "Cardiology", Specialization: "Cardiac Surgeon", Experience: 18, Patients: 890, Rating: rating("4.8"), Email: "e.harris@hospital.com", Phone: "555-901-2345", Status: entity.DoctorStatusAvailable},
	}
}

// Appointments returns six appointments on the day of now and one on the next day
func Appointments(now time.Time) []entity.Appointment {
	tomorrow := now.AddDate(0, 0, 1)
	return []entity.Appointment{
		{ID: "APT-2023-001", PatientName: "John Smith", PatientID: "PAT-2023-001", DoctorName: "Maria Rodriguez", Department: "Cardiology", Date: now, Time: "9:00 AM", Status: entity.AppointmentStatusScheduled, Reason: "Heart palpitations"},
		{ID: "APT-2023-002", PatientName: "Emily Johnson", PatientID: "PAT-2023-002", DoctorName: "James Wilson", Department: "Orthopedics", Date: now, Time: "10:30 AM", Status: entity.AppointmentStatusInProgress, Reason: "Knee pain follow-up"},
		{ID: "APT-2023-003", PatientName: "Michael Brown", PatientID: "PAT-2023-003", DoctorName: "Sarah Chen", Department: "Neurology", Date: now, Time: "11:45 AM", Status: entity.AppointmentStatusScheduled, Reason: "Migraine assessment"},
		{ID: "APT-2023-004", PatientName: "Jessica Garcia", PatientID: "PAT-2023-004", DoctorName: "David Kim", Department: "Dermatology", Date: now, Time: "1:15 PM", Status: entity.AppointmentStatusCancelled, Reason: "Skin rash examination"},
		{ID: "APT-2023-005", PatientName: "Robert Anderson", PatientID: "PAT-2023-005", DoctorName: "Lisa Martinez", Department: "Ophthalmology", Date: now, Time: "2:30 PM", Status: entity.AppointmentStatusScheduled, Reason: "Vision check"},
		{ID: "APT-2023-006", PatientName: "Sarah Lee", PatientID: "PAT-2023-006", DoctorName: "Michael Taylor", Department: "General Medicine", Date: now, Time: "3:45 PM", Status: entity.AppointmentStatusCompleted, Reason: "Annual physical"},
		{ID: "APT-2023-007", PatientName: "David Miller", PatientID: "PAT-2023-007", DoctorName: "Jennifer White", Department: "Endocrinology", Date: tomorrow, Time: "10:15 AM", Status: entity.AppointmentStatusScheduled, Reason: "Diabetes consultation"},
	}
}

// Activities returns the recent activity feed, newest first
func Activities(now time.Time) []entity.Activity {
	return []entity.Activity{
		{ID: 4, Action: entity.ActivityPatientRegister, Title: "New patient registered", Description: "Patient ID: PAT-2023-04569", CreatedAt: now.Add(-5 * time.Minute)},
		{ID: 3, Action: entity.ActivityLabResultUpdate, Title: "Lab results updated", Description: "Dr. Sarah Johnson updated lab results for James Wilson", CreatedAt: now.Add(-15 * time.Minute)},
		{ID: 2, Action: entity.ActivityEmergencyAdmission, Title: "Emergency admission", Description: "Patient Maria Garcia admitted to ER", CreatedAt: now.Add(-time.Hour)},
		{ID: 1, Action: entity.ActivityMedicationAdminister, Title: "Medication administered", Description: "Nurse Taylor administered medication to Robert Chen", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func ReportMetrics() []entity.ReportMetric {
	return []entity.ReportMetric{
		{Key: "total_patients", Title: "Total Patients", Value: "1,254", Change: decimal.RequireFromString("12.5"), Position: 1},
		{Key: "new_patients", Title: "New Patients", Value: "235", Change: decimal.RequireFromString("18.3"), Position: 2},
		{Key: "patient_satisfaction", Title: "Patient Satisfaction", Value: "92%", Change: decimal.RequireFromString("3.2"), Position: 3},
	}
}

func Admissions() []entity.DepartmentAdmissions {
	return []entity.DepartmentAdmissions{
		{Department: "Cardiology", Admitted: 85, Discharged: 72, Position: 1},
		{Department: "Orthopedics", Admitted: 65, Discharged: 58, Position: 2},
		{Department: "Neurology", Admitted: 45, Discharged: 39, Position: 3},
		{Department: "Pediatrics", Admitted: 70, Discharged: 65, Position: 4},
		{Department: "General", Admitted: 90, Discharged: 82, Position: 5},
	}
}

func Demographics() []entity.DemographicBucket {
	return []entity.DemographicBucket{
		{Name: "0-18", Value: 210, Position: 1},
		{Name: "19-35", Value: 325, Position: 2},
		{Name: "36-50", Value: 290, Position: 3},
		{Name: "51-65", Value: 245, Position: 4},
		{Name: "65+", Value: 184, Position: 5},
	}
}

func Census(now time.Time) entity.Census {
	return entity.Census{ID: 1, TotalBeds: 300, OccupiedBeds: 219, RecordedAt: now}
}

func Settings() entity.Settings {
	return entity.Settings{
		General: entity.HospitalSettings{
			HospitalName: "MedCare General Hospital",
			Email:        "admin@medcare.hospital",
			Phone:        "555-123-4567",
			Address:      "123 Healthcare Ave, Medical District, MD 12345",
			Website:      "https://medcare.hospital",
		},
		Notifications: entity.NotificationPreferences{
			Email:            true,
			SMS:              false,
			Push:             true,
			System:           true,
			Appointments:     true,
			PatientAdmission: true,
			CriticalAlerts:   true,
			Updates:          false,
		},
	}
}

func rating(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
