package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

const appointmentColumns = `
	a.id, a.doctor_id, a.patient_id, a.room_id, a.date,
	TO_CHAR(a.start_time, 'HH24:MI') AS start_time,
	a.duration_minutes, a.visit_type, a.status, a.note,
	a.cancellation_reason, a.created_at, a.updated_at
`

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

// Create inserts a new scheduled appointment. The doctor-overlap and room
// start-time checks are re-executed inside the transaction so that a booking
// racing past the service-level validation still cannot commit a conflict.
func (r *AppointmentRepo) Create(ctx context.Context, dto domain.CreateAppointmentDTO, date time.Time) (*domain.Appointment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	duration := dto.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	overlapQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE doctor_id = $1
		AND date = $2
		AND status != 'cancelled'
		AND start_time < $3::time + make_interval(mins => $4)
		AND start_time + make_interval(mins => duration_minutes) > $3::time
	`

	var count int
	err = tx.QueryRow(ctx, overlapQuery, dto.DoctorID, date, dto.StartTime, duration).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking doctor availability: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrDoctorSlotTaken
	}

	if dto.RoomID != nil {
		roomQuery := `
			SELECT COUNT(*)
			FROM appointments
			WHERE room_id = $1
			AND date = $2
			AND start_time = $3::time
			AND status != 'cancelled'
		`

		err = tx.QueryRow(ctx, roomQuery, *dto.RoomID, date, dto.StartTime).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("checking room availability: %w", err)
		}
		if count > 0 {
			return nil, domain.ErrRoomSlotTaken
		}
	}

	insertQuery := `
		INSERT INTO appointments (doctor_id, patient_id, room_id, date, start_time, duration_minutes, visit_type, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::time, $6, $7, $8, $9, $10, $10)
		RETURNING id, doctor_id, patient_id, room_id, date,
		          TO_CHAR(start_time, 'HH24:MI'),
		          duration_minutes, visit_type, status, note,
		          cancellation_reason, created_at, updated_at
	`

	now := time.Now()
	var appointment domain.Appointment
	err = tx.QueryRow(ctx, insertQuery,
		dto.DoctorID,
		dto.PatientID,
		dto.RoomID,
		date,
		dto.StartTime,
		duration,
		dto.VisitType,
		domain.AppointmentStatusScheduled,
		dto.Note,
		now,
	).Scan(
		&appointment.ID,
		&appointment.DoctorID,
		&appointment.PatientID,
		&appointment.RoomID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.DurationMinutes,
		&appointment.VisitType,
		&appointment.Status,
		&appointment.Note,
		&appointment.CancellationReason,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		return nil, mapConflictError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, mapConflictError(err)
	}

	return &appointment, nil
}

// mapConflictError translates a unique-violation on one of the partial
// booking indexes into the corresponding domain conflict.
func mapConflictError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_doctor_slot":
			return domain.ErrDoctorSlotTaken
		case "uq_room_slot":
			return domain.ErrRoomSlotTaken
		}
	}
	return fmt.Errorf("creating appointment: %w", err)
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       d.first_name || ' ' || d.last_name AS doctor_name,
		       p.first_name || ' ' || p.last_name AS patient_name,
		       rm.number AS room_number
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		JOIN patients p ON a.patient_id = p.id
		LEFT JOIN rooms rm ON a.room_id = rm.id
		WHERE a.id = $1
	`, appointmentColumns)

	var appointment domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.DoctorID,
		&appointment.PatientID,
		&appointment.RoomID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.DurationMinutes,
		&appointment.VisitType,
		&appointment.Status,
		&appointment.Note,
		&appointment.CancellationReason,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
		&appointment.DoctorName,
		&appointment.PatientName,
		&appointment.RoomNumber,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("getting appointment: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.Date != nil {
		updateFields = append(updateFields, fmt.Sprintf("date = $%d", argCount))
		args = append(args, *dto.Date)
		argCount++
	}

	if dto.StartTime != nil {
		updateFields = append(updateFields, fmt.Sprintf("start_time = $%d::time", argCount))
		args = append(args, *dto.StartTime)
		argCount++
	}

	if dto.RoomID != nil {
		updateFields = append(updateFields, fmt.Sprintf("room_id = $%d", argCount))
		args = append(args, *dto.RoomID)
		argCount++
	}

	if dto.Note != nil {
		updateFields = append(updateFields, fmt.Sprintf("note = $%d", argCount))
		args = append(args, *dto.Note)
		argCount++
	}

	if len(updateFields) == 0 {
		return nil
	}

	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE appointments
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapConflictError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}

	return nil
}

func (r *AppointmentRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	query := `
		UPDATE appointments
		SET status = $1, cancellation_reason = $2, updated_at = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, domain.AppointmentStatusCancelled, reason, time.Now(), id)
	if err != nil {
		return fmt.Errorf("cancelling appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	baseQuery := fmt.Sprintf(`
		SELECT %s,
		       d.first_name || ' ' || d.last_name AS doctor_name,
		       p.first_name || ' ' || p.last_name AS patient_name,
		       rm.number AS room_number
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		JOIN patients p ON a.patient_id = p.id
		LEFT JOIN rooms rm ON a.room_id = rm.id
	`, appointmentColumns)

	conditions, args := buildAppointmentConditions(filter, "a.")

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY a.date DESC, a.start_time DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.DoctorID,
			&appointment.PatientID,
			&appointment.RoomID,
			&appointment.Date,
			&appointment.StartTime,
			&appointment.DurationMinutes,
			&appointment.VisitType,
			&appointment.Status,
			&appointment.Note,
			&appointment.CancellationReason,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
			&appointment.DoctorName,
			&appointment.PatientName,
			&appointment.RoomNumber,
		); err != nil {
			return nil, fmt.Errorf("scanning appointment row: %w", err)
		}

		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointment rows: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	conditions, args := buildAppointmentConditions(filter, "")

	query := "SELECT COUNT(*) FROM appointments"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting appointments: %w", err)
	}

	return count, nil
}

func buildAppointmentConditions(filter domain.AppointmentFilter, prefix string) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.DoctorID != nil {
		conditions = append(conditions, fmt.Sprintf("%sdoctor_id = $%d", prefix, argCount))
		args = append(args, *filter.DoctorID)
		argCount++
	}

	if filter.PatientID != nil {
		conditions = append(conditions, fmt.Sprintf("%spatient_id = $%d", prefix, argCount))
		args = append(args, *filter.PatientID)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("%sstatus = $%d", prefix, argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.ExcludeStatus != nil {
		conditions = append(conditions, fmt.Sprintf("%sstatus != $%d", prefix, argCount))
		args = append(args, *filter.ExcludeStatus)
		argCount++
	}

	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("%sdate >= $%d", prefix, argCount))
		args = append(args, *filter.DateFrom)
		argCount++
	}

	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("%sdate <= $%d", prefix, argCount))
		args = append(args, *filter.DateTo)
		argCount++
	}

	return conditions, args
}

func (r *AppointmentRepo) FindByDoctorAndDateRange(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		WHERE a.doctor_id = $1
		AND a.date >= $2
		AND a.date <= $3
		AND a.status != 'cancelled'
		ORDER BY a.date, a.start_time
	`, appointmentColumns)

	return r.queryAppointments(ctx, query, doctorID, from, to)
}

func (r *AppointmentRepo) FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		WHERE a.room_id = $1
		AND a.date = $2
		AND a.status != 'cancelled'
		ORDER BY a.start_time
	`, appointmentColumns)

	return r.queryAppointments(ctx, query, roomID, date)
}

func (r *AppointmentRepo) FindOverlapping(ctx context.Context, doctorID int64, date time.Time, start string, durationMinutes int) ([]domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		WHERE a.doctor_id = $1
		AND a.date = $2
		AND a.status != 'cancelled'
		AND a.start_time < $3::time + make_interval(mins => $4)
		AND a.start_time + make_interval(mins => a.duration_minutes) > $3::time
		ORDER BY a.start_time
	`, appointmentColumns)

	return r.queryAppointments(ctx, query, doctorID, date, start, durationMinutes)
}

func (r *AppointmentRepo) queryAppointments(ctx context.Context, query string, args ...interface{}) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.DoctorID,
			&appointment.PatientID,
			&appointment.RoomID,
			&appointment.Date,
			&appointment.StartTime,
			&appointment.DurationMinutes,
			&appointment.VisitType,
			&appointment.Status,
			&appointment.Note,
			&appointment.CancellationReason,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning appointment row: %w", err)
		}

		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointment rows: %w", err)
	}

	return appointments, nil
}
