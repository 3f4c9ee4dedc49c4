package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/lock"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
)

type testEnv struct {
	services     *Services
	doctors      *mockDoctorRepo
	patients     *mockPatientRepo
	rooms        *mockRoomRepo
	appointments *mockAppointmentRepo
	waiting      *mockWaitingListRepo
}

func setupTestServices() *testEnv {
	doctors := newMockDoctorRepo()
	patients := newMockPatientRepo()
	rooms := newMockRoomRepo()
	appointments := newMockAppointmentRepo()
	waiting := newMockWaitingListRepo()

	repos := &repository.Repositories{
		Doctor:      doctors,
		Patient:     patients,
		Room:        rooms,
		Appointment: appointments,
		WaitingList: waiting,
	}

	cfg := &config.Config{
		Booking: config.BookingConfig{
			MinimumNotice:          24 * time.Hour,
			SlotGranularityMinutes: 30,
			AvailabilityWindowDays: 30,
		},
		JWT: config.JWTConfig{
			SigningKey:     "test-signing-key",
			AccessTokenTTL: time.Hour,
		},
	}

	services := NewServices(Deps{
		Repos:  repos,
		Logger: zap.NewNop(),
		Config: cfg,
		Locker: lock.NewKeyedMutexLocker(),
	})

	return &testEnv{
		services:     services,
		doctors:      doctors,
		patients:     patients,
		rooms:        rooms,
		appointments: appointments,
		waiting:      waiting,
	}
}

func (e *testEnv) seedDoctor(availableDays string) int64 {
	days, _ := domain.ParseWeekdaySet(availableDays)
	return e.doctors.add(domain.Doctor{
		FirstName:      "Anna",
		LastName:       "Rossi",
		Specialization: "cardiology",
		Email:          "anna.rossi@clinic.local",
		WorkdayStart:   "09:00",
		WorkdayEnd:     "12:00",
		AvailableDays:  days,
		Active:         true,
	})
}

func (e *testEnv) seedPatient() int64 {
	return e.patients.add(domain.Patient{
		FirstName: "Marco",
		LastName:  "Bianchi",
		Email:     "marco.bianchi@example.com",
		Phone:     "3331234567",
		Active:    true,
	})
}

func (e *testEnv) seedRoom(active bool) int64 {
	id := e.rooms.add(domain.Room{Number: "101", Capacity: 1, Active: true})
	e.rooms.rooms[id].Active = active
	return id
}

func patientActor(id int64) domain.Actor {
	return domain.Actor{ID: id, Role: domain.RolePatient}
}

func TestAppointmentService_Create_Success(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()

	dto := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}

	appointment, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if appointment.Status != domain.AppointmentStatusScheduled {
		t.Errorf("expected status scheduled, got %s", appointment.Status)
	}
	if appointment.DurationMinutes != 30 {
		t.Errorf("expected default duration 30, got %d", appointment.DurationMinutes)
	}
}

func TestAppointmentService_Create_DoctorOverlap(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()

	first := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}
	if _, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), first); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	// [10:00, 10:30) and [10:15, 10:45) overlap.
	second := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: otherPatientID,
		Date:      "2026-09-14",
		StartTime: "10:15",
		VisitType: "follow-up",
	}
	_, err := env.services.Appointments.Create(context.Background(), patientActor(otherPatientID), second)
	if !errors.Is(err, domain.ErrDoctorSlotTaken) {
		t.Errorf("expected ErrDoctorSlotTaken, got: %v", err)
	}
}

func TestAppointmentService_Create_AdjacentSlotsDoNotConflict(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()

	first := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}
	if _, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), first); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	// Half-open intervals: [10:00, 10:30) and [10:30, 11:00) touch but do not overlap.
	second := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: otherPatientID,
		Date:      "2026-09-14",
		StartTime: "10:30",
		VisitType: "follow-up",
	}
	if _, err := env.services.Appointments.Create(context.Background(), patientActor(otherPatientID), second); err != nil {
		t.Errorf("adjacent booking should succeed: %v", err)
	}
}

func TestAppointmentService_Create_ForAnotherPatient(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()

	dto := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: otherPatientID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}

	_, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if !errors.Is(err, domain.ErrNotOwnAppointment) {
		t.Errorf("expected ErrNotOwnAppointment, got: %v", err)
	}
}

func TestAppointmentService_Create_DoctorNotFound(t *testing.T) {
	env := setupTestServices()
	patientID := env.seedPatient()

	dto := domain.CreateAppointmentDTO{
		DoctorID:  999,
		PatientID: patientID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}

	_, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got: %v", err)
	}
}

func TestAppointmentService_Create_RoomInactive(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	roomID := env.seedRoom(false)

	dto := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		RoomID:    &roomID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}

	_, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if !errors.Is(err, domain.ErrRoomInactive) {
		t.Errorf("expected ErrRoomInactive, got: %v", err)
	}
}

func TestAppointmentService_Create_RoomSameStartCollision(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	otherDoctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()
	roomID := env.seedRoom(true)

	first := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		RoomID:    &roomID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}
	if _, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), first); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	// Different doctor, same room, same exact start.
	second := domain.CreateAppointmentDTO{
		DoctorID:  otherDoctorID,
		PatientID: otherPatientID,
		RoomID:    &roomID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		VisitType: "first visit",
	}
	_, err := env.services.Appointments.Create(context.Background(), patientActor(otherPatientID), second)
	if !errors.Is(err, domain.ErrRoomSlotTaken) {
		t.Errorf("expected ErrRoomSlotTaken, got: %v", err)
	}
}

func TestAppointmentService_Create_InvalidDate(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun")
	patientID := env.seedPatient()

	dto := domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      "14/09/2026",
		StartTime: "10:00",
		VisitType: "first visit",
	}

	_, err := env.services.Appointments.Create(context.Background(), patientActor(patientID), dto)
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got: %v", err)
	}
}

// bookAt creates an appointment whose start is the given duration from now,
// bypassing the service so the notice policy of the operation under test is
// the only one involved.
func (e *testEnv) bookAt(patientID, doctorID int64, fromNow time.Duration) int64 {
	start := time.Now().Add(fromNow)
	appointment, _ := e.appointments.Create(context.Background(), domain.CreateAppointmentDTO{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		VisitType: "follow-up",
	}, time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local))
	return appointment.ID
}

func TestAppointmentService_Cancel_InsufficientNotice(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 10*time.Hour)

	err := env.services.Appointments.Cancel(context.Background(), patientActor(patientID), id, nil)
	if !errors.Is(err, domain.ErrInsufficientNotice) {
		t.Errorf("expected ErrInsufficientNotice, got: %v", err)
	}
}

func TestAppointmentService_Cancel_Success(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 48*time.Hour)

	reason := "work commitment"
	if err := env.services.Appointments.Cancel(context.Background(), patientActor(patientID), id, &reason); err != nil {
		t.Fatalf("Cancel should succeed: %v", err)
	}

	cancelled, err := env.appointments.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("appointment disappeared: %v", err)
	}
	if cancelled.Status != domain.AppointmentStatusCancelled {
		t.Errorf("expected status cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != reason {
		t.Errorf("cancellation reason not stored: %v", cancelled.CancellationReason)
	}
}

func TestAppointmentService_Cancel_AlreadyCancelled(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 48*time.Hour)

	if err := env.services.Appointments.Cancel(context.Background(), patientActor(patientID), id, nil); err != nil {
		t.Fatalf("first cancel should succeed: %v", err)
	}

	err := env.services.Appointments.Cancel(context.Background(), patientActor(patientID), id, nil)
	if !errors.Is(err, domain.ErrAlreadyCancelled) {
		t.Errorf("expected ErrAlreadyCancelled, got: %v", err)
	}
}

func TestAppointmentService_Cancel_NotOwn(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 48*time.Hour)

	err := env.services.Appointments.Cancel(context.Background(), patientActor(otherPatientID), id, nil)
	if !errors.Is(err, domain.ErrNotOwnAppointment) {
		t.Errorf("expected ErrNotOwnAppointment, got: %v", err)
	}
}

func TestAppointmentService_Update_PartialFields(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 72*time.Hour)

	before, _ := env.appointments.GetByID(context.Background(), id)

	note := "bring previous test results"
	updated, err := env.services.Appointments.Update(context.Background(), patientActor(patientID), id, domain.UpdateAppointmentDTO{
		Note: &note,
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}

	if updated.Note == nil || *updated.Note != note {
		t.Errorf("note not applied: %v", updated.Note)
	}
	if updated.StartTime != before.StartTime {
		t.Errorf("start time must stay untouched, was %s, got %s", before.StartTime, updated.StartTime)
	}
	if updated.Status != domain.AppointmentStatusScheduled {
		t.Errorf("status must stay scheduled, got %s", updated.Status)
	}
}

func TestAppointmentService_Update_Cancelled(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 72*time.Hour)

	if err := env.services.Appointments.Cancel(context.Background(), patientActor(patientID), id, nil); err != nil {
		t.Fatalf("cancel should succeed: %v", err)
	}

	start := "11:00"
	_, err := env.services.Appointments.Update(context.Background(), patientActor(patientID), id, domain.UpdateAppointmentDTO{
		StartTime: &start,
	})
	if !errors.Is(err, domain.ErrCannotModifyCancelled) {
		t.Errorf("expected ErrCannotModifyCancelled, got: %v", err)
	}
}

func TestAppointmentService_Update_InsufficientNotice(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	id := env.bookAt(patientID, doctorID, 10*time.Hour)

	start := "11:00"
	_, err := env.services.Appointments.Update(context.Background(), patientActor(patientID), id, domain.UpdateAppointmentDTO{
		StartTime: &start,
	})
	if !errors.Is(err, domain.ErrInsufficientNotice) {
		t.Errorf("expected ErrInsufficientNotice, got: %v", err)
	}
}

func TestAppointmentService_List_ScopedToPatient(t *testing.T) {
	env := setupTestServices()
	doctorID := env.seedDoctor("lun,mar,mer,gio,ven")
	patientID := env.seedPatient()
	otherPatientID := env.seedPatient()

	env.bookAt(patientID, doctorID, 48*time.Hour)
	env.bookAt(otherPatientID, doctorID, 96*time.Hour)

	appointments, err := env.services.Appointments.List(context.Background(), patientActor(patientID), domain.AppointmentFilter{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appointments))
	}
	if appointments[0].PatientID != patientID {
		t.Errorf("appointment of another patient leaked into the listing")
	}
}
