package entity_test

import (
	"strings"
	"testing"
	"time"

	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/infrastructure/sampledata"
)

func TestFilterPatients_ByPhonePrefix(t *testing.T) {
	got := entity.FilterPatients(sampledata.Patients(), &entity.PatientFilter{Query: "555-123"})

	if len(got) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(got))
	}
	if got[0].ID != "PAT-2023-001" || got[1].ID != "PAT-2023-011" {
		t.Errorf("unexpected patients: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterPatients_CaseInsensitiveNameAndID(t *testing.T) {
	patients := sampledata.Patients()

	byName := entity.FilterPatients(patients, &entity.PatientFilter{Query: "JOHN"})
	if len(byName) != 2 {
		t.Errorf("expected John Smith and Emily Johnson, got %d results", len(byName))
	}

	byID := entity.FilterPatients(patients, &entity.PatientFilter{Query: "pat-2023-015"})
	if len(byID) != 1 || byID[0].Name != "Kevin Hall" {
		t.Errorf("expected Kevin Hall by ID, got %v", byID)
	}
}

func TestFilterPatients_EmptyQueryReturnsAll(t *testing.T) {
	patients := sampledata.Patients()

	for _, f := range []*entity.PatientFilter{nil, {}, {Query: ""}} {
		got := entity.FilterPatients(patients, f)
		if len(got) != len(patients) {
			t.Errorf("expected all %d patients, got %d", len(patients), len(got))
		}
	}
}

func TestFilterPatients_ResultIsOrderedSubset(t *testing.T) {
	patients := sampledata.Patients()

	for _, q := range []string{"a", "555", "Active", "zz", "-00", "e"} {
		got := entity.FilterPatients(patients, &entity.PatientFilter{Query: q})

		next := 0
		for _, p := range got {
			matched := strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) ||
				strings.Contains(strings.ToLower(p.ID), strings.ToLower(q)) ||
				strings.Contains(strings.ToLower(p.Phone), strings.ToLower(q))
			if !matched {
				t.Errorf("query %q: %s does not contain the query", q, p.ID)
			}

			for next < len(patients) && patients[next].ID != p.ID {
				next++
			}
			if next == len(patients) {
				t.Fatalf("query %q: %s is out of input order or not in the input", q, p.ID)
			}
			next++
		}
	}
}

func TestFilterDoctors_DepartmentAndQuery(t *testing.T) {
	got := entity.FilterDoctors(sampledata.Doctors(), &entity.DoctorFilter{Query: "surgeon", Department: "Cardiology"})

	if len(got) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(got))
	}
	if got[0].Name != "Emily Harris" {
		t.Errorf("expected Emily Harris, got %s", got[0].Name)
	}
}

func TestFilterDoctors_QueryAcrossDepartments(t *testing.T) {
	got := entity.FilterDoctors(sampledata.Doctors(), &entity.DoctorFilter{Query: "Surgeon"})

	if len(got) != 2 {
		t.Fatalf("expected ophthalmic and cardiac surgeons, got %d", len(got))
	}
	if got[0].ID != "DOC-2023-005" || got[1].ID != "DOC-2023-009" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterDoctors_DepartmentIsExactMatch(t *testing.T) {
	doctors := sampledata.Doctors()

	if got := entity.FilterDoctors(doctors, &entity.DoctorFilter{Department: "cardiology"}); len(got) != 0 {
		t.Errorf("expected no match for differently cased department, got %d", len(got))
	}
	if got := entity.FilterDoctors(doctors, &entity.DoctorFilter{Department: "Cardiology"}); len(got) != 2 {
		t.Errorf("expected 2 cardiologists, got %d", len(got))
	}
}

func TestDepartments_FirstOccurrenceOrder(t *testing.T) {
	got := entity.Departments(sampledata.Doctors())
	want := []string{"Cardiology", "Orthopedics", "Neurology", "Dermatology", "Ophthalmology", "General Medicine", "Pediatrics", "Psychiatry"}

	if len(got) != len(want) {
		t.Fatalf("expected %d departments, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFilterAppointments_ByCalendarDay(t *testing.T) {
	loc := time.UTC
	base := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)
	appointments := sampledata.Appointments(base)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	today := entity.FilterAppointments(appointments, &entity.AppointmentFilter{Date: &day, Location: loc})
	if len(today) != 6 {
		t.Errorf("expected 6 appointments today, got %d", len(today))
	}

	next := day.AddDate(0, 0, 1)
	tomorrow := entity.FilterAppointments(appointments, &entity.AppointmentFilter{Date: &next, Location: loc})
	if len(tomorrow) != 1 || tomorrow[0].ID != "APT-2023-007" {
		t.Errorf("expected only APT-2023-007 tomorrow, got %v", tomorrow)
	}
}

func TestFilterAppointments_DayDependsOnLocation(t *testing.T) {
	// 23:30 UTC is already the next day in UTC+2
	at := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	appointments := []entity.Appointment{{ID: "A", Date: at}}
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, plusTwo)
	got := entity.FilterAppointments(appointments, &entity.AppointmentFilter{Date: &day, Location: plusTwo})
	if len(got) != 1 {
		t.Errorf("expected appointment on 15 March in UTC+2, got %d", len(got))
	}

	got = entity.FilterAppointments(appointments, &entity.AppointmentFilter{Date: &day, Location: time.UTC})
	if len(got) != 0 {
		t.Errorf("expected no appointment on 14 March UTC when selecting 15 March UTC, got %d", len(got))
	}
}

func TestFilterAppointments_NoDateSelected(t *testing.T) {
	got := entity.FilterAppointments(sampledata.Appointments(time.Now()), &entity.AppointmentFilter{})
	if len(got) != 0 {
		t.Errorf("expected no appointments without a selected date, got %d", len(got))
	}
}

func TestAppointmentFilter_DayRange(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)
	f := &entity.AppointmentFilter{Date: &at, Location: time.UTC}

	start, end := f.DayRange()
	if !start.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end %v", end)
	}
}
