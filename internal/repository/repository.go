package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

type Repositories struct {
	Doctor      DoctorRepository
	Patient     PatientRepository
	Room        RoomRepository
	Appointment AppointmentRepository
	WaitingList WaitingListRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Doctor:      NewDoctorRepository(db),
		Patient:     NewPatientRepository(db),
		Room:        NewRoomRepository(db),
		Appointment: NewAppointmentRepository(db),
		WaitingList: NewWaitingListRepository(db),
	}
}

type DoctorRepository interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Doctor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error)
}

type PatientRepository interface {
	Create(ctx context.Context, dto domain.CreatePatientDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Patient, error)
	List(ctx context.Context, limit, offset int) ([]domain.Patient, error)
}

type RoomRepository interface {
	Create(ctx context.Context, dto domain.CreateRoomDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, active *bool, limit, offset int) ([]domain.Room, error)
}

// AppointmentRepository is the appointment store of the booking engine.
// Create revalidates doctor and room conflicts inside its transaction and is
// the write-time guard against double booking; the Find* queries exclude
// cancelled appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO, date time.Time) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
	Cancel(ctx context.Context, id int64, reason *string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	FindByDoctorAndDateRange(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Appointment, error)
	FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Appointment, error)
	FindOverlapping(ctx context.Context, doctorID int64, date time.Time, start string, durationMinutes int) ([]domain.Appointment, error)
}

type WaitingListRepository interface {
	Create(ctx context.Context, dto domain.CreateWaitingListDTO) (int64, error)
	List(ctx context.Context) ([]domain.WaitingListEntry, error)
}
