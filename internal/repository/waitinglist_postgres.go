package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

type WaitingListRepo struct {
	db *pgxpool.Pool
}

func NewWaitingListRepository(db *pgxpool.Pool) *WaitingListRepo {
	return &WaitingListRepo{
		db: db,
	}
}

func (r *WaitingListRepo) Create(ctx context.Context, dto domain.CreateWaitingListDTO) (int64, error) {
	query := `
		INSERT INTO waiting_list (patient_id, doctor_id, specialization, visit_type, priority, note, notified)
		VALUES ($1, $2, $3, $4, $5, $6, false)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.PatientID,
		dto.DoctorID,
		dto.Specialization,
		dto.VisitType,
		dto.Priority,
		dto.Note,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("creating waiting list entry: %w", err)
	}

	return id, nil
}

// List returns entries that have not been notified yet, in insertion order.
// Priority ranking happens in the service layer.
func (r *WaitingListRepo) List(ctx context.Context) ([]domain.WaitingListEntry, error) {
	query := `
		SELECT w.id, w.patient_id, w.doctor_id, w.specialization, w.visit_type,
		       w.priority, w.note, w.requested_at, w.notified,
		       p.first_name || ' ' || p.last_name AS patient_name,
		       p.phone AS patient_phone,
		       d.first_name || ' ' || d.last_name AS doctor_name
		FROM waiting_list w
		JOIN patients p ON w.patient_id = p.id
		LEFT JOIN doctors d ON w.doctor_id = d.id
		WHERE w.notified = false
		ORDER BY w.requested_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing waiting list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.WaitingListEntry, 0)
	for rows.Next() {
		var entry domain.WaitingListEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.PatientID,
			&entry.DoctorID,
			&entry.Specialization,
			&entry.VisitType,
			&entry.Priority,
			&entry.Note,
			&entry.RequestedAt,
			&entry.Notified,
			&entry.PatientName,
			&entry.PatientPhone,
			&entry.DoctorName,
		); err != nil {
			return nil, fmt.Errorf("scanning waiting list row: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waiting list rows: %w", err)
	}

	return entries, nil
}
