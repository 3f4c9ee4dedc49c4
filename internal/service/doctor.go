package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/auth"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/timegrid"
)

type DoctorService struct {
	repo   repository.DoctorRepository
	logger *zap.Logger
}

func NewDoctorService(deps Deps) *DoctorService {
	return &DoctorService{
		repo:   deps.Repos.Doctor,
		logger: deps.Logger,
	}
}

func (s *DoctorService) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	startMinutes, err := timegrid.MinutesOfDay(dto.WorkdayStart)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidTimeRange, err)
	}
	endMinutes, err := timegrid.MinutesOfDay(dto.WorkdayEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidTimeRange, err)
	}
	if startMinutes >= endMinutes {
		return 0, fmt.Errorf("%w: workday start %s is not before end %s", domain.ErrInvalidTimeRange, dto.WorkdayStart, dto.WorkdayEnd)
	}

	days, err := domain.ParseWeekdaySet(dto.AvailableDays)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidTimeRange, err)
	}
	// Normalize the stored form (lowercase, Monday-first, no spaces).
	dto.AvailableDays = days.String()

	passwordHash, err := auth.HashPassword(dto.Password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := s.repo.Create(ctx, dto, passwordHash)
	if err != nil {
		return 0, err
	}

	s.logger.Info("doctor created",
		zap.Int64("doctor_id", id),
		zap.String("specialization", dto.Specialization),
	)

	return id, nil
}

func (s *DoctorService) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorService) List(ctx context.Context, limit, offset int) ([]domain.Doctor, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *DoctorService) ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	return s.repo.ListBySpecialization(ctx, specialization)
}
