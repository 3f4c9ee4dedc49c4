// Command seed fills the database with demo data: a handful of doctors with
// weekly availability patterns, patients, rooms and a few appointments and
// waiting list requests. Meant for local development, not production.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/auth"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/database"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/logger"
)

const seedPassword = "password123"

var specializations = []string{
	"cardiology", "dermatology", "orthopedics", "pediatrics", "neurology",
}

var availabilityPatterns = []string{
	"lun,mer,ven",
	"mar,gio",
	"lun,mar,mer,gio,ven",
	"lun,gio,sab",
}

var visitTypes = []string{
	"first visit", "follow-up", "consultation", "screening",
}

func main() {
	_ = godotenv.Load()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	ctx := context.Background()

	passwordHash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatal("failed to hash seed password", zap.Error(err))
	}

	doctorIDs := seedDoctors(ctx, log, repos, passwordHash)
	patientIDs := seedPatients(ctx, log, repos, passwordHash)
	roomIDs := seedRooms(ctx, log, repos)
	seedAppointments(ctx, log, repos, doctorIDs, patientIDs, roomIDs)
	seedWaitingList(ctx, log, repos, doctorIDs, patientIDs)

	log.Info("seeding finished",
		zap.Int("doctors", len(doctorIDs)),
		zap.Int("patients", len(patientIDs)),
		zap.Int("rooms", len(roomIDs)),
	)
}

func seedDoctors(ctx context.Context, log *zap.Logger, repos *repository.Repositories, passwordHash string) []int64 {
	ids := make([]int64, 0, 10)

	for i := 0; i < 10; i++ {
		dto := domain.CreateDoctorDTO{
			FirstName:      gofakeit.FirstName(),
			LastName:       gofakeit.LastName(),
			Specialization: specializations[i%len(specializations)],
			Email:          fmt.Sprintf("doctor%d@clinic.local", i+1),
			Password:       seedPassword,
			Phone:          gofakeit.Phone(),
			WorkdayStart:   "09:00",
			WorkdayEnd:     "17:00",
			AvailableDays:  availabilityPatterns[i%len(availabilityPatterns)],
		}

		id, err := repos.Doctor.Create(ctx, dto, passwordHash)
		if err != nil {
			log.Warn("skipping doctor", zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func seedPatients(ctx context.Context, log *zap.Logger, repos *repository.Repositories, passwordHash string) []int64 {
	ids := make([]int64, 0, 30)

	for i := 0; i < 30; i++ {
		city := gofakeit.City()
		address := gofakeit.Street()
		postalCode := gofakeit.Zip()

		dto := domain.CreatePatientDTO{
			FirstName:  gofakeit.FirstName(),
			LastName:   gofakeit.LastName(),
			FiscalCode: gofakeit.Regex("[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]"),
			BirthDate:  gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Email:      fmt.Sprintf("patient%d@example.com", i+1),
			Password:   seedPassword,
			Phone:      gofakeit.Phone(),
			Address:    &address,
			City:       &city,
			PostalCode: &postalCode,
		}

		id, err := repos.Patient.Create(ctx, dto, passwordHash)
		if err != nil {
			log.Warn("skipping patient", zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func seedRooms(ctx context.Context, log *zap.Logger, repos *repository.Repositories) []int64 {
	ids := make([]int64, 0, 6)

	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("Visit room %d", i+1)
		floor := i/3 + 1
		dto := domain.CreateRoomDTO{
			Number:   fmt.Sprintf("%d0%d", floor, i%3+1),
			Name:     &name,
			Floor:    &floor,
			Capacity: 2,
		}

		id, err := repos.Room.Create(ctx, dto)
		if err != nil {
			log.Warn("skipping room", zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func seedAppointments(ctx context.Context, log *zap.Logger, repos *repository.Repositories, doctorIDs, patientIDs, roomIDs []int64) {
	if len(doctorIDs) == 0 || len(patientIDs) == 0 {
		return
	}

	starts := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "14:00", "15:30"}

	for i := 0; i < 20; i++ {
		date := time.Now().AddDate(0, 0, 2+i%10)
		roomID := roomIDs[i%len(roomIDs)]

		dto := domain.CreateAppointmentDTO{
			DoctorID:  doctorIDs[i%len(doctorIDs)],
			PatientID: patientIDs[i%len(patientIDs)],
			RoomID:    &roomID,
			Date:      date.Format("2006-01-02"),
			StartTime: starts[i%len(starts)],
			VisitType: visitTypes[i%len(visitTypes)],
		}

		if _, err := repos.Appointment.Create(ctx, dto, truncateToDay(date)); err != nil {
			log.Warn("skipping appointment", zap.Error(err))
		}
	}
}

func seedWaitingList(ctx context.Context, log *zap.Logger, repos *repository.Repositories, doctorIDs, patientIDs []int64) {
	if len(patientIDs) == 0 {
		return
	}

	priorities := []domain.Priority{
		domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent,
	}

	for i := 0; i < 8; i++ {
		dto := domain.CreateWaitingListDTO{
			PatientID: patientIDs[(i*3)%len(patientIDs)],
			VisitType: visitTypes[i%len(visitTypes)],
			Priority:  priorities[i%len(priorities)],
		}
		if i%2 == 0 && len(doctorIDs) > 0 {
			dto.DoctorID = &doctorIDs[i%len(doctorIDs)]
		} else {
			specialization := specializations[i%len(specializations)]
			dto.Specialization = &specialization
		}

		if _, err := repos.WaitingList.Create(ctx, dto); err != nil {
			log.Warn("skipping waiting list entry", zap.Error(err))
		}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
