package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
)

type WaitingListService struct {
	entries  repository.WaitingListRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	logger   *zap.Logger
}

func NewWaitingListService(deps Deps) *WaitingListService {
	return &WaitingListService{
		entries:  deps.Repos.WaitingList,
		patients: deps.Repos.Patient,
		doctors:  deps.Repos.Doctor,
		logger:   deps.Logger,
	}
}

func (s *WaitingListService) Add(ctx context.Context, actor domain.Actor, dto domain.CreateWaitingListDTO) (*domain.WaitingListEntry, error) {
	if actor.Role == domain.RolePatient && actor.ID != dto.PatientID {
		return nil, domain.ErrNotOwnAppointment
	}

	patient, err := s.patients.GetByID(ctx, dto.PatientID)
	if err != nil {
		return nil, err
	}

	var doctorName *string
	if dto.DoctorID != nil {
		doctor, err := s.doctors.GetByID(ctx, *dto.DoctorID)
		if err != nil {
			return nil, err
		}
		name := doctor.FullName()
		doctorName = &name
	}

	if dto.Priority == "" {
		dto.Priority = domain.PriorityMedium
	}
	if !dto.Priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}

	id, err := s.entries.Create(ctx, dto)
	if err != nil {
		return nil, err
	}

	s.logger.Info("waiting list entry created",
		zap.Int64("entry_id", id),
		zap.String("priority", string(dto.Priority)),
	)

	return &domain.WaitingListEntry{
		ID:             id,
		PatientID:      dto.PatientID,
		DoctorID:       dto.DoctorID,
		Specialization: dto.Specialization,
		VisitType:      dto.VisitType,
		Priority:       dto.Priority,
		Note:           dto.Note,
		PatientName:    patient.FullName(),
		PatientPhone:   patient.Phone,
		DoctorName:     doctorName,
	}, nil
}

// Ranked returns the open entries ordered urgent-first, earliest-first within
// the same priority.
func (s *WaitingListService) Ranked(ctx context.Context) ([]domain.WaitingListEntry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}

	domain.SortWaitingList(entries)

	return entries, nil
}
