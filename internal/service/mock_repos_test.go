package service

import (
	"context"
	"strings"
	"time"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/timegrid"
)

// In-memory repository doubles. They mirror the semantics of the Postgres
// layer closely enough for the service tests: sentinel errors on missing
// rows, cancelled appointments excluded from conflict queries, and the
// write-time conflict re-check in Create.

type mockDoctorRepo struct {
	doctors map[int64]*domain.Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*domain.Doctor), nextID: 1}
}

func (m *mockDoctorRepo) add(doctor domain.Doctor) int64 {
	id := m.nextID
	m.nextID++
	doctor.ID = id
	m.doctors[id] = &doctor
	return id
}

func (m *mockDoctorRepo) Create(_ context.Context, dto domain.CreateDoctorDTO, passwordHash string) (int64, error) {
	for _, d := range m.doctors {
		if d.Email == dto.Email {
			return 0, domain.ErrEmailTaken
		}
	}

	days, err := domain.ParseWeekdaySet(dto.AvailableDays)
	if err != nil {
		return 0, err
	}

	return m.add(domain.Doctor{
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Specialization: dto.Specialization,
		Email:          dto.Email,
		PasswordHash:   passwordHash,
		Phone:          dto.Phone,
		WorkdayStart:   dto.WorkdayStart,
		WorkdayEnd:     dto.WorkdayEnd,
		AvailableDays:  days,
		Active:         true,
		CreatedAt:      time.Now(),
	}), nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	if d, ok := m.doctors[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDoctorNotFound
}

func (m *mockDoctorRepo) GetByEmail(_ context.Context, email string) (*domain.Doctor, error) {
	for _, d := range m.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (m *mockDoctorRepo) List(_ context.Context, _, _ int) ([]domain.Doctor, error) {
	result := make([]domain.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		if d.Active {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDoctorRepo) ListBySpecialization(_ context.Context, specialization string) ([]domain.Doctor, error) {
	result := make([]domain.Doctor, 0)
	for _, d := range m.doctors {
		if d.Active && strings.EqualFold(d.Specialization, specialization) {
			result = append(result, *d)
		}
	}
	return result, nil
}

type mockPatientRepo struct {
	patients map[int64]*domain.Patient
	nextID   int64
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*domain.Patient), nextID: 1}
}

func (m *mockPatientRepo) add(patient domain.Patient) int64 {
	id := m.nextID
	m.nextID++
	patient.ID = id
	m.patients[id] = &patient
	return id
}

func (m *mockPatientRepo) Create(_ context.Context, dto domain.CreatePatientDTO, passwordHash string) (int64, error) {
	for _, p := range m.patients {
		if p.Email == dto.Email {
			return 0, domain.ErrEmailTaken
		}
	}

	birthDate, err := time.Parse("2006-01-02", dto.BirthDate)
	if err != nil {
		return 0, err
	}

	return m.add(domain.Patient{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		FiscalCode:   dto.FiscalCode,
		BirthDate:    birthDate,
		Email:        dto.Email,
		PasswordHash: passwordHash,
		Phone:        dto.Phone,
		Active:       true,
		CreatedAt:    time.Now(),
	}), nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id int64) (*domain.Patient, error) {
	if p, ok := m.patients[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPatientNotFound
}

func (m *mockPatientRepo) GetByEmail(_ context.Context, email string) (*domain.Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (m *mockPatientRepo) List(_ context.Context, _, _ int) ([]domain.Patient, error) {
	result := make([]domain.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		if p.Active {
			result = append(result, *p)
		}
	}
	return result, nil
}

type mockRoomRepo struct {
	rooms  map[int64]*domain.Room
	nextID int64
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[int64]*domain.Room), nextID: 1}
}

func (m *mockRoomRepo) add(room domain.Room) int64 {
	id := m.nextID
	m.nextID++
	room.ID = id
	m.rooms[id] = &room
	return id
}

func (m *mockRoomRepo) Create(_ context.Context, dto domain.CreateRoomDTO) (int64, error) {
	capacity := dto.Capacity
	if capacity <= 0 {
		capacity = 1
	}
	return m.add(domain.Room{
		Number:    dto.Number,
		Name:      dto.Name,
		Floor:     dto.Floor,
		Equipment: dto.Equipment,
		Capacity:  capacity,
		Active:    true,
		CreatedAt: time.Now(),
	}), nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (m *mockRoomRepo) List(_ context.Context, active *bool, _, _ int) ([]domain.Room, error) {
	result := make([]domain.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		if active == nil || r.Active == *active {
			result = append(result, *r)
		}
	}
	return result, nil
}

type mockAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*domain.Appointment), nextID: 1}
}

func minutesOf(clock string) int {
	minutes, _ := timegrid.MinutesOfDay(clock)
	return minutes
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (m *mockAppointmentRepo) Create(_ context.Context, dto domain.CreateAppointmentDTO, date time.Time) (*domain.Appointment, error) {
	duration := dto.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	newStart := minutesOf(dto.StartTime)
	newEnd := newStart + duration

	for _, a := range m.appointments {
		if a.Status == domain.AppointmentStatusCancelled || !sameDay(a.Date, date) {
			continue
		}
		if a.DoctorID == dto.DoctorID {
			start := minutesOf(a.StartTime)
			if timegrid.Overlaps(start, start+a.DurationMinutes, newStart, newEnd) {
				return nil, domain.ErrDoctorSlotTaken
			}
		}
		if dto.RoomID != nil && a.RoomID != nil && *a.RoomID == *dto.RoomID && a.StartTime == dto.StartTime {
			return nil, domain.ErrRoomSlotTaken
		}
	}

	id := m.nextID
	m.nextID++
	now := time.Now()
	appointment := &domain.Appointment{
		ID:              id,
		DoctorID:        dto.DoctorID,
		PatientID:       dto.PatientID,
		RoomID:          dto.RoomID,
		Date:            date,
		StartTime:       dto.StartTime,
		DurationMinutes: duration,
		VisitType:       dto.VisitType,
		Status:          domain.AppointmentStatusScheduled,
		Note:            dto.Note,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.appointments[id] = appointment

	copied := *appointment
	return &copied, nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (m *mockAppointmentRepo) Update(_ context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	a, ok := m.appointments[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}

	if dto.Date != nil {
		date, err := time.Parse("2006-01-02", *dto.Date)
		if err != nil {
			return err
		}
		a.Date = date
	}
	if dto.StartTime != nil {
		a.StartTime = *dto.StartTime
	}
	if dto.RoomID != nil {
		a.RoomID = dto.RoomID
	}
	if dto.Note != nil {
		a.Note = dto.Note
	}
	a.UpdatedAt = time.Now()

	return nil
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, id int64, reason *string) error {
	a, ok := m.appointments[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = domain.AppointmentStatusCancelled
	a.CancellationReason = reason
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	result := make([]domain.Appointment, 0)
	for _, a := range m.appointments {
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.ExcludeStatus != nil && a.Status == *filter.ExcludeStatus {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	all, err := m.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (m *mockAppointmentRepo) FindByDoctorAndDateRange(_ context.Context, doctorID int64, from, to time.Time) ([]domain.Appointment, error) {
	result := make([]domain.Appointment, 0)
	for _, a := range m.appointments {
		if a.DoctorID != doctorID || a.Status == domain.AppointmentStatusCancelled {
			continue
		}
		day := a.Date.Format("2006-01-02")
		if day < from.Format("2006-01-02") || day > to.Format("2006-01-02") {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]domain.Appointment, error) {
	result := make([]domain.Appointment, 0)
	for _, a := range m.appointments {
		if a.RoomID == nil || *a.RoomID != roomID || a.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if sameDay(a.Date, date) {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindOverlapping(_ context.Context, doctorID int64, date time.Time, start string, durationMinutes int) ([]domain.Appointment, error) {
	newStart := minutesOf(start)
	newEnd := newStart + durationMinutes

	result := make([]domain.Appointment, 0)
	for _, a := range m.appointments {
		if a.DoctorID != doctorID || a.Status == domain.AppointmentStatusCancelled || !sameDay(a.Date, date) {
			continue
		}
		existing := minutesOf(a.StartTime)
		if timegrid.Overlaps(existing, existing+a.DurationMinutes, newStart, newEnd) {
			result = append(result, *a)
		}
	}
	return result, nil
}

type mockWaitingListRepo struct {
	entries map[int64]*domain.WaitingListEntry
	nextID  int64
}

func newMockWaitingListRepo() *mockWaitingListRepo {
	return &mockWaitingListRepo{entries: make(map[int64]*domain.WaitingListEntry), nextID: 1}
}

func (m *mockWaitingListRepo) Create(_ context.Context, dto domain.CreateWaitingListDTO) (int64, error) {
	id := m.nextID
	m.nextID++
	m.entries[id] = &domain.WaitingListEntry{
		ID:             id,
		PatientID:      dto.PatientID,
		DoctorID:       dto.DoctorID,
		Specialization: dto.Specialization,
		VisitType:      dto.VisitType,
		Priority:       dto.Priority,
		Note:           dto.Note,
		RequestedAt:    time.Now(),
	}
	return id, nil
}

func (m *mockWaitingListRepo) List(_ context.Context) ([]domain.WaitingListEntry, error) {
	result := make([]domain.WaitingListEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.Notified {
			result = append(result, *e)
		}
	}
	return result, nil
}
