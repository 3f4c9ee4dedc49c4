package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/timegrid"
)

type AvailabilityService struct {
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	booking      config.BookingConfig
	logger       *zap.Logger
}

func NewAvailabilityService(deps Deps) *AvailabilityService {
	return &AvailabilityService{
		doctors:      deps.Repos.Doctor,
		appointments: deps.Repos.Appointment,
		booking:      deps.Config.Booking,
		logger:       deps.Logger,
	}
}

// DoctorSlots resolves the free slots of one doctor over [from, from+days]
// inclusive. Slots come out in ascending (date, time) order; callers rely on
// that for pagination and display.
//
// A slot is excluded only when a non-cancelled appointment starts at exactly
// the same time. Appointments with off-grid durations therefore leave
// adjacent grid slots visible; the creation path still rejects the conflict.
func (s *AvailabilityService) DoctorSlots(ctx context.Context, doctorID int64, from time.Time, days int) ([]domain.Slot, error) {
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, doctor, from, days)
}

// SpecializationSlots merges the slots of every active doctor with the given
// specialization, ordered by (date, time) and, within a slot, by doctor.
func (s *AvailabilityService) SpecializationSlots(ctx context.Context, specialization string, from time.Time, days int) ([]domain.Slot, error) {
	doctors, err := s.doctors.ListBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}

	merged := make([]domain.Slot, 0)
	for i := range doctors {
		slots, err := s.resolve(ctx, &doctors[i], from, days)
		if err != nil {
			return nil, err
		}
		merged = append(merged, slots...)
	}

	sortSlots(merged)

	return merged, nil
}

func (s *AvailabilityService) resolve(ctx context.Context, doctor *domain.Doctor, from time.Time, days int) ([]domain.Slot, error) {
	if days < 0 {
		days = 0
	}
	if days > s.booking.AvailabilityWindowDays {
		days = s.booking.AvailabilityWindowDays
	}

	from = truncateToDay(from)
	to := from.AddDate(0, 0, days)

	booked, err := s.appointments.FindByDoctorAndDateRange(ctx, doctor.ID, from, to)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, appointment := range booked {
		taken[slotKey(appointment.Date, appointment.StartTime)] = true
	}

	slots := make([]domain.Slot, 0)
	if len(doctor.AvailableDays) == 0 {
		return slots, nil
	}

	// The day grid is identical for every date, so it is generated once.
	times, err := timegrid.Slots(doctor.WorkdayStart, doctor.WorkdayEnd, s.booking.SlotGranularityMinutes)
	if err != nil {
		return nil, err
	}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !doctor.AvailableDays.Contains(date.Weekday()) {
			continue
		}
		for _, t := range times {
			if taken[slotKey(date, t)] {
				continue
			}
			slots = append(slots, domain.Slot{
				Date:           date,
				Time:           t,
				DoctorID:       doctor.ID,
				DoctorName:     doctor.FullName(),
				Specialization: doctor.Specialization,
			})
		}
	}

	return slots, nil
}

func slotKey(date time.Time, clock string) string {
	return date.Format(dateLayout) + " " + clock
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sortSlots(slots []domain.Slot) {
	sortFn := func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		if slots[i].Time != slots[j].Time {
			return slots[i].Time < slots[j].Time
		}
		return slots[i].DoctorID < slots[j].DoctorID
	}
	sort.SliceStable(slots, sortFn)
}
