package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

const doctorColumns = `
	id, first_name, last_name, specialization, email, password_hash, phone,
	TO_CHAR(workday_start, 'HH24:MI') AS workday_start,
	TO_CHAR(workday_end, 'HH24:MI') AS workday_end,
	available_days, active, created_at
`

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepo {
	return &DoctorRepo{
		db: db,
	}
}

func (r *DoctorRepo) Create(ctx context.Context, dto domain.CreateDoctorDTO, passwordHash string) (int64, error) {
	query := `
		INSERT INTO doctors (first_name, last_name, specialization, email, password_hash, phone, workday_start, workday_end, available_days, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9, true)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.FirstName,
		dto.LastName,
		dto.Specialization,
		dto.Email,
		passwordHash,
		dto.Phone,
		dto.WorkdayStart,
		dto.WorkdayEnd,
		dto.AvailableDays,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("creating doctor: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := fmt.Sprintf("SELECT %s FROM doctors WHERE id = $1", doctorColumns)
	return r.scanDoctor(r.db.QueryRow(ctx, query, id))
}

func (r *DoctorRepo) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	query := fmt.Sprintf("SELECT %s FROM doctors WHERE email = $1", doctorColumns)
	return r.scanDoctor(r.db.QueryRow(ctx, query, email))
}

func (r *DoctorRepo) scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var availableDays string

	err := row.Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.Specialization,
		&doctor.Email,
		&doctor.PasswordHash,
		&doctor.Phone,
		&doctor.WorkdayStart,
		&doctor.WorkdayEnd,
		&availableDays,
		&doctor.Active,
		&doctor.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("getting doctor: %w", err)
	}

	doctor.AvailableDays, err = domain.ParseWeekdaySet(availableDays)
	if err != nil {
		return nil, fmt.Errorf("parsing available days for doctor %d: %w", doctor.ID, err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) List(ctx context.Context, limit, offset int) ([]domain.Doctor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM doctors
		WHERE active = true
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`, doctorColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	defer rows.Close()

	return r.collectDoctors(rows)
}

func (r *DoctorRepo) ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM doctors
		WHERE active = true
		AND LOWER(specialization) = LOWER($1)
		ORDER BY last_name, first_name
	`, doctorColumns)

	rows, err := r.db.Query(ctx, query, specialization)
	if err != nil {
		return nil, fmt.Errorf("listing doctors by specialization: %w", err)
	}
	defer rows.Close()

	return r.collectDoctors(rows)
}

func (r *DoctorRepo) collectDoctors(rows pgx.Rows) ([]domain.Doctor, error) {
	doctors := make([]domain.Doctor, 0)

	for rows.Next() {
		var doctor domain.Doctor
		var availableDays string

		if err := rows.Scan(
			&doctor.ID,
			&doctor.FirstName,
			&doctor.LastName,
			&doctor.Specialization,
			&doctor.Email,
			&doctor.PasswordHash,
			&doctor.Phone,
			&doctor.WorkdayStart,
			&doctor.WorkdayEnd,
			&availableDays,
			&doctor.Active,
			&doctor.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning doctor row: %w", err)
		}

		set, err := domain.ParseWeekdaySet(availableDays)
		if err != nil {
			return nil, fmt.Errorf("parsing available days for doctor %d: %w", doctor.ID, err)
		}
		doctor.AvailableDays = set

		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating doctor rows: %w", err)
	}

	return doctors, nil
}
