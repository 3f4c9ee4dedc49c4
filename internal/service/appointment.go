package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/lock"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/timegrid"
)

const dateLayout = "2006-01-02"

type AppointmentService struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	rooms        repository.RoomRepository
	locker       lock.Locker
	booking      config.BookingConfig
	logger       *zap.Logger
}

func NewAppointmentService(deps Deps) *AppointmentService {
	return &AppointmentService{
		appointments: deps.Repos.Appointment,
		doctors:      deps.Repos.Doctor,
		patients:     deps.Repos.Patient,
		rooms:        deps.Repos.Room,
		locker:       deps.Locker,
		booking:      deps.Config.Booking,
		logger:       deps.Logger,
	}
}

// Create books a new appointment. The conflict checks and the insert run
// under a per doctor-day (and room-day) lock, and the repository re-validates
// inside its transaction, so two racing requests cannot both commit.
func (s *AppointmentService) Create(ctx context.Context, actor domain.Actor, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	if actor.Role == domain.RolePatient && actor.ID != dto.PatientID {
		return nil, domain.ErrNotOwnAppointment
	}

	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrInvalidTimeRange, dto.Date)
	}
	if !timegrid.ValidClock(dto.StartTime) {
		return nil, fmt.Errorf("%w: bad start time %q", domain.ErrInvalidTimeRange, dto.StartTime)
	}
	if dto.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: negative duration", domain.ErrInvalidTimeRange)
	}
	duration := dto.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	if _, err := s.doctors.GetByID(ctx, dto.DoctorID); err != nil {
		return nil, err
	}
	if _, err := s.patients.GetByID(ctx, dto.PatientID); err != nil {
		return nil, err
	}

	keys := []string{lock.DoctorDayKey(dto.DoctorID, date)}
	if dto.RoomID != nil {
		keys = append(keys, lock.RoomDayKey(*dto.RoomID, date))
	}

	var created *domain.Appointment
	err = s.locker.WithLock(ctx, keys, func(ctx context.Context) error {
		overlapping, err := s.appointments.FindOverlapping(ctx, dto.DoctorID, date, dto.StartTime, duration)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return domain.ErrDoctorSlotTaken
		}

		if dto.RoomID != nil {
			if err := s.checkRoom(ctx, *dto.RoomID, date, dto.StartTime); err != nil {
				return err
			}
		}

		created, err = s.appointments.Create(ctx, dto, date)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment created",
		zap.Int64("appointment_id", created.ID),
		zap.Int64("doctor_id", created.DoctorID),
		zap.String("date", created.Date.Format(dateLayout)),
		zap.String("start_time", created.StartTime),
	)

	return created, nil
}

// checkRoom applies the room rules: the room must exist and be active, and no
// non-cancelled appointment in it may share the exact same start time. Unlike
// the doctor rule this is a same-start collision check, not interval overlap.
func (s *AppointmentService) checkRoom(ctx context.Context, roomID int64, date time.Time, start string) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !room.Active {
		return domain.ErrRoomInactive
	}

	booked, err := s.appointments.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return err
	}
	for _, appointment := range booked {
		if appointment.StartTime == start {
			return domain.ErrRoomSlotTaken
		}
	}

	return nil
}

func (s *AppointmentService) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeActor(actor, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Update applies a partial modification. Only the not-cancelled and
// minimum-notice rules are enforced; the overlap checks run at creation only.
func (s *AppointmentService) Update(ctx context.Context, actor domain.Actor, id int64, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeActor(actor, appointment); err != nil {
		return nil, err
	}
	if appointment.Status == domain.AppointmentStatusCancelled {
		return nil, domain.ErrCannotModifyCancelled
	}
	if err := s.checkMinimumNotice(appointment); err != nil {
		return nil, err
	}

	if dto.Date != nil {
		if _, err := time.Parse(dateLayout, *dto.Date); err != nil {
			return nil, fmt.Errorf("%w: bad date %q", domain.ErrInvalidTimeRange, *dto.Date)
		}
	}
	if dto.StartTime != nil && !timegrid.ValidClock(*dto.StartTime) {
		return nil, fmt.Errorf("%w: bad start time %q", domain.ErrInvalidTimeRange, *dto.StartTime)
	}

	if err := s.appointments.Update(ctx, id, dto); err != nil {
		return nil, err
	}

	return s.appointments.GetByID(ctx, id)
}

func (s *AppointmentService) Cancel(ctx context.Context, actor domain.Actor, id int64, reason *string) error {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authorizeActor(actor, appointment); err != nil {
		return err
	}
	if appointment.Status == domain.AppointmentStatusCancelled {
		return domain.ErrAlreadyCancelled
	}
	if err := s.checkMinimumNotice(appointment); err != nil {
		return err
	}

	if err := s.appointments.Cancel(ctx, id, reason); err != nil {
		return err
	}

	s.logger.Info("appointment cancelled",
		zap.Int64("appointment_id", id),
		zap.Int64("doctor_id", appointment.DoctorID),
	)

	return nil
}

// List scopes the result to the caller: patients see their own appointments,
// doctors their own schedule.
func (s *AppointmentService) List(ctx context.Context, actor domain.Actor, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	switch actor.Role {
	case domain.RolePatient:
		filter.PatientID = &actor.ID
	case domain.RoleDoctor:
		filter.DoctorID = &actor.ID
	}

	return s.appointments.List(ctx, filter)
}

// checkMinimumNotice enforces the cancellation policy: an appointment may
// only be modified or cancelled while its start is at least MinimumNotice
// away.
func (s *AppointmentService) checkMinimumNotice(appointment *domain.Appointment) error {
	minutes, err := timegrid.MinutesOfDay(appointment.StartTime)
	if err != nil {
		return err
	}

	start := time.Date(
		appointment.Date.Year(), appointment.Date.Month(), appointment.Date.Day(),
		minutes/60, minutes%60, 0, 0, time.Local,
	)

	if time.Until(start) < s.booking.MinimumNotice {
		return domain.ErrInsufficientNotice
	}

	return nil
}

func authorizeActor(actor domain.Actor, appointment *domain.Appointment) error {
	switch actor.Role {
	case domain.RolePatient:
		if appointment.PatientID != actor.ID {
			return domain.ErrNotOwnAppointment
		}
	case domain.RoleDoctor:
		if appointment.DoctorID != actor.ID {
			return domain.ErrNotOwnAppointment
		}
	}

	return nil
}
