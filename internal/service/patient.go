package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/auth"
)

type PatientService struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(deps Deps) *PatientService {
	return &PatientService{
		repo:   deps.Repos.Patient,
		logger: deps.Logger,
	}
}

func (s *PatientService) Register(ctx context.Context, dto domain.CreatePatientDTO) (int64, error) {
	dto.FiscalCode = strings.ToUpper(strings.TrimSpace(dto.FiscalCode))
	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))

	passwordHash, err := auth.HashPassword(dto.Password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := s.repo.Create(ctx, dto, passwordHash)
	if err != nil {
		return 0, err
	}

	s.logger.Info("patient registered", zap.Int64("patient_id", id))

	return id, nil
}

func (s *PatientService) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, limit, offset)
}
