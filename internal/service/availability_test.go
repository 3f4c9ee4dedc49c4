package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// monday is a fixed reference date falling on a Monday.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.Local)

func TestAvailabilityService_DoctorSlots_WeekPattern(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mer,ven")

	// Window Mon-Wed: Monday and Wednesday are working days, Tuesday is not.
	// 09:00-12:00 on a 30 minute grid gives 6 slots per working day.
	slots, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 2)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}

	for _, slot := range slots {
		weekday := slot.Date.Weekday()
		if weekday == time.Tuesday {
			t.Errorf("slot on Tuesday must not appear: %s %s", slot.Date.Format("2006-01-02"), slot.Time)
		}
		if slot.Time < "09:00" || slot.Time >= "12:00" {
			t.Errorf("slot %s outside the workday", slot.Time)
		}
	}

	if slots[0].Time != "09:00" || slots[5].Time != "11:30" {
		t.Errorf("unexpected slot grid: first=%s sixth=%s", slots[0].Time, slots[5].Time)
	}
}

func TestAvailabilityService_DoctorSlots_AscendingOrder(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mer,ven")

	slots, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 6)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}

	for i := 1; i < len(slots); i++ {
		prev, curr := slots[i-1], slots[i]
		if curr.Date.Before(prev.Date) {
			t.Fatalf("dates out of order at %d: %s after %s", i, curr.Date, prev.Date)
		}
		if curr.Date.Equal(prev.Date) && curr.Time <= prev.Time {
			t.Fatalf("times out of order at %d: %s after %s", i, curr.Time, prev.Time)
		}
	}
}

func TestAvailabilityService_DoctorSlots_Idempotent(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mer,ven")

	first, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 6)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}
	second, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 6)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("slot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Date.Equal(second[i].Date) || first[i].Time != second[i].Time {
			t.Fatalf("slot %d differs between identical queries", i)
		}
	}
}

func TestAvailabilityService_DoctorSlots_BookedSlotHidden(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mer,ven")
	patientID := env.seedPatient()

	dto := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      monday.Format("2006-01-02"),
		StartTime: "10:00",
		VisitType: "first visit",
	}
	appointment, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if err != nil {
		t.Fatalf("booking should succeed: %v", err)
	}

	slots, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 0)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}

	if len(slots) != 5 {
		t.Fatalf("expected 5 remaining slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot.Time == "10:00" {
			t.Errorf("booked slot still offered")
		}
	}

	// Cancelling the appointment frees its slot again.
	if err := env.appointments.Cancel(context.Background(), appointment.ID, nil); err != nil {
		t.Fatalf("cancel should succeed: %v", err)
	}

	slots, err = env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 0)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots after cancellation, got %d", len(slots))
	}
}

func TestAvailabilityService_DoctorSlots_OffGridBookingLeavesGridVisible(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mer,ven")
	patientID := env.seedPatient()

	// An off-grid 45 minute appointment hides no grid slot: exclusion is by
	// exact start match. The creation path still rejects real conflicts.
	dto := domain.CreateAppointmentDTO{
		DoctorID:        doctorID,
		PatientID:       patientID,
		Date:            monday.Format("2006-01-02"),
		StartTime:       "09:15",
		DurationMinutes: 45,
		VisitType:       "first visit",
	}
	if _, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto); err != nil {
		t.Fatalf("booking should succeed: %v", err)
	}

	slots, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 0)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected all 6 grid slots visible, got %d", len(slots))
	}

	// The displayed 09:30 slot is not actually bookable.
	conflict := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      monday.Format("2006-01-02"),
		StartTime: "09:30",
		VisitType: "follow-up",
	}
	_, err = env.services.Appointments.Create(context.Background(), patientActor(patientID), conflict)
	if !errors.Is(err, domain.ErrDoctorSlotTaken) {
		t.Errorf("expected ErrDoctorSlotTaken, got: %v", err)
	}
}

func TestAvailabilityService_DoctorSlots_NoWorkingDays(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("")

	slots, err := env.services.Availability.DoctorSlots(context.Background(), doctorID, monday, 14)
	if err != nil {
		t.Fatalf("DoctorSlots should succeed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("doctor with no working days must yield no slots, got %d", len(slots))
	}
}

func TestAvailabilityService_DoctorSlots_UnknownDoctor(t *testing.T) {
	env := setupTestServices()

	_, err := env.services.Availability.DoctorSlots(context.Background(), 42, monday, 7)
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got: %v", err)
	}
}

func TestAvailabilityService_SpecializationSlots_Merged(t *testing.T) {
	env := setupTestServices()
	first := env.seedDoctor("lun")
	second := env.doctors.add(domain.Doctor{
		FirstName:      "Luca",
		LastName:       "Verdi",
		Specialization: "cardiology",
		Email:          "luca.verdi@clinic.local",
		WorkdayStart:   "09:00",
		WorkdayEnd:     "10:00",
		AvailableDays:  mustWeekdays(t, "lun"),
		Active:         true,
	})

	slots, err := env.services.Availability.SpecializationSlots(context.Background(), "cardiology", monday, 0)
	if err != nil {
		t.Fatalf("SpecializationSlots should succeed: %v", err)
	}

	// 6 slots from the first doctor, 2 from the second.
	if len(slots) != 8 {
		t.Fatalf("expected 8 merged slots, got %d", len(slots))
	}

	// Per-slot ordering: date, then time, then doctor.
	if slots[0].Time != "09:00" || slots[1].Time != "09:00" {
		t.Errorf("expected both doctors' 09:00 slots first, got %s and %s", slots[0].Time, slots[1].Time)
	}
	if slots[0].DoctorID != first || slots[1].DoctorID != second {
		t.Errorf("expected doctor order %d then %d, got %d then %d", first, second, slots[0].DoctorID, slots[1].DoctorID)
	}
}

func mustWeekdays(t *testing.T, s string) domain.WeekdaySet {
	t.Helper()
	set, err := domain.ParseWeekdaySet(s)
	if err != nil {
		t.Fatalf("bad weekday set %q: %v", s, err)
	}
	return set
}
