package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

const patientColumns = `
	id, first_name, last_name, fiscal_code, birth_date, email, password_hash,
	phone, address, city, postal_code, emergency_contact_name,
	emergency_contact_phone, medical_notes, active, created_at
`

type PatientRepo struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) *PatientRepo {
	return &PatientRepo{
		db: db,
	}
}

func (r *PatientRepo) Create(ctx context.Context, dto domain.CreatePatientDTO, passwordHash string) (int64, error) {
	birthDate, err := time.Parse("2006-01-02", dto.BirthDate)
	if err != nil {
		return 0, fmt.Errorf("parsing birth date: %w", err)
	}

	query := `
		INSERT INTO patients (first_name, last_name, fiscal_code, birth_date, email, password_hash, phone, address, city, postal_code, emergency_contact_name, emergency_contact_phone, medical_notes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, true)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(ctx, query,
		dto.FirstName,
		dto.LastName,
		dto.FiscalCode,
		birthDate,
		dto.Email,
		passwordHash,
		dto.Phone,
		dto.Address,
		dto.City,
		dto.PostalCode,
		dto.EmergencyContactName,
		dto.EmergencyContactPhone,
		dto.MedicalNotes,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("creating patient: %w", err)
	}

	return id, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	query := fmt.Sprintf("SELECT %s FROM patients WHERE id = $1", patientColumns)
	return r.scanPatient(r.db.QueryRow(ctx, query, id))
}

func (r *PatientRepo) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	query := fmt.Sprintf("SELECT %s FROM patients WHERE email = $1", patientColumns)
	return r.scanPatient(r.db.QueryRow(ctx, query, email))
}

func (r *PatientRepo) scanPatient(row pgx.Row) (*domain.Patient, error) {
	var patient domain.Patient

	err := row.Scan(
		&patient.ID,
		&patient.FirstName,
		&patient.LastName,
		&patient.FiscalCode,
		&patient.BirthDate,
		&patient.Email,
		&patient.PasswordHash,
		&patient.Phone,
		&patient.Address,
		&patient.City,
		&patient.PostalCode,
		&patient.EmergencyContactName,
		&patient.EmergencyContactPhone,
		&patient.MedicalNotes,
		&patient.Active,
		&patient.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("getting patient: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) List(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM patients
		WHERE active = true
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`, patientColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	defer rows.Close()

	patients := make([]domain.Patient, 0)
	for rows.Next() {
		var patient domain.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.FirstName,
			&patient.LastName,
			&patient.FiscalCode,
			&patient.BirthDate,
			&patient.Email,
			&patient.PasswordHash,
			&patient.Phone,
			&patient.Address,
			&patient.City,
			&patient.PostalCode,
			&patient.EmergencyContactName,
			&patient.EmergencyContactPhone,
			&patient.MedicalNotes,
			&patient.Active,
			&patient.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning patient row: %w", err)
		}

		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating patient rows: %w", err)
	}

	return patients, nil
}
