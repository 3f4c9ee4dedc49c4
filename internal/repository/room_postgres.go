package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

type RoomRepo struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepo {
	return &RoomRepo{
		db: db,
	}
}

func (r *RoomRepo) Create(ctx context.Context, dto domain.CreateRoomDTO) (int64, error) {
	capacity := dto.Capacity
	if capacity <= 0 {
		capacity = 1
	}

	query := `
		INSERT INTO rooms (number, name, floor, equipment, capacity, active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Number,
		dto.Name,
		dto.Floor,
		dto.Equipment,
		capacity,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("creating room: %w", err)
	}

	return id, nil
}

func (r *RoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query := `
		SELECT id, number, name, floor, equipment, capacity, active, created_at
		FROM rooms
		WHERE id = $1
	`

	var room domain.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Number,
		&room.Name,
		&room.Floor,
		&room.Equipment,
		&room.Capacity,
		&room.Active,
		&room.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("getting room: %w", err)
	}

	return &room, nil
}

func (r *RoomRepo) List(ctx context.Context, active *bool, limit, offset int) ([]domain.Room, error) {
	query := `
		SELECT id, number, name, floor, equipment, capacity, active, created_at
		FROM rooms
	`

	var args []interface{}
	if active != nil {
		query += " WHERE active = $1"
		args = append(args, *active)
	}

	query += fmt.Sprintf(" ORDER BY number LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Name,
			&room.Floor,
			&room.Equipment,
			&room.Capacity,
			&room.Active,
			&room.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning room row: %w", err)
		}

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}

	return rooms, nil
}
