package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/lock"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
)

type Appointments interface {
	Create(ctx context.Context, actor domain.Actor, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, actor domain.Actor, id int64, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error)
	Cancel(ctx context.Context, actor domain.Actor, id int64, reason *string) error
	List(ctx context.Context, actor domain.Actor, filter domain.AppointmentFilter) ([]domain.Appointment, error)
}

type Availability interface {
	DoctorSlots(ctx context.Context, doctorID int64, from time.Time, days int) ([]domain.Slot, error)
	SpecializationSlots(ctx context.Context, specialization string, from time.Time, days int) ([]domain.Slot, error)
}

type Doctors interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error)
}

type Patients interface {
	Register(ctx context.Context, dto domain.CreatePatientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context, limit, offset int) ([]domain.Patient, error)
}

type Rooms interface {
	Create(ctx context.Context, dto domain.CreateRoomDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, active *bool, limit, offset int) ([]domain.Room, error)
	DayAvailability(ctx context.Context, roomID int64, date time.Time) (*domain.RoomDayAvailability, error)
}

type WaitingList interface {
	Add(ctx context.Context, actor domain.Actor, dto domain.CreateWaitingListDTO) (*domain.WaitingListEntry, error)
	Ranked(ctx context.Context) ([]domain.WaitingListEntry, error)
}

type Auth interface {
	LoginPatient(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error)
	LoginDoctor(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error)
	ParseToken(accessToken string) (domain.Actor, error)
}

type Services struct {
	Appointments Appointments
	Availability Availability
	Doctors      Doctors
	Patients     Patients
	Rooms        Rooms
	WaitingList  WaitingList
	Auth         Auth
}

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
	Locker lock.Locker
}

func NewServices(deps Deps) *Services {
	return &Services{
		Appointments: NewAppointmentService(deps),
		Availability: NewAvailabilityService(deps),
		Doctors:      NewDoctorService(deps),
		Patients:     NewPatientService(deps),
		Rooms:        NewRoomService(deps),
		WaitingList:  NewWaitingListService(deps),
		Auth:         NewAuthService(deps),
	}
}
