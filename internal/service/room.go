package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
)

type RoomService struct {
	rooms        repository.RoomRepository
	appointments repository.AppointmentRepository
	logger       *zap.Logger
}

func NewRoomService(deps Deps) *RoomService {
	return &RoomService{
		rooms:        deps.Repos.Room,
		appointments: deps.Repos.Appointment,
		logger:       deps.Logger,
	}
}

func (s *RoomService) Create(ctx context.Context, dto domain.CreateRoomDTO) (int64, error) {
	id, err := s.rooms.Create(ctx, dto)
	if err != nil {
		return 0, err
	}

	s.logger.Info("room created",
		zap.Int64("room_id", id),
		zap.String("number", dto.Number),
	)

	return id, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, active *bool, limit, offset int) ([]domain.Room, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.rooms.List(ctx, active, limit, offset)
}

// DayAvailability reports a room's occupancy for one date. An inactive room
// is unavailable no matter what is booked in it.
func (s *RoomService) DayAvailability(ctx context.Context, roomID int64, date time.Time) (*domain.RoomDayAvailability, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	booked, err := s.appointments.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	availability := &domain.RoomDayAvailability{
		Room:         *room,
		Date:         date,
		Available:    room.Active,
		Appointments: booked,
	}
	if !room.Active {
		availability.Reason = "room is not active"
	}

	return availability, nil
}
