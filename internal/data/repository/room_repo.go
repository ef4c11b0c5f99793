package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	UpdateStatus(ctx context.Context, roomID int64, status entity.RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (number, capacity, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		room.Number,
		room.Capacity,
		room.Status,
	).Scan(&room.ID)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.Int("number", room.Number),
		)
		return fmt.Errorf("create room %d: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `
		SELECT id, number, capacity, status
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Number,
		&room.Capacity,
		&room.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, number, capacity, status
		FROM rooms
		ORDER BY number
	`

	rows, err := q(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Capacity,
			&room.Status,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate room rows", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, roomID int64, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2 WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, roomID, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %d status to %s: %w", roomID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", roomID)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", id)
	}

	r.log.Info("Room deleted", zap.Int64("room_id", id))
	return nil
}
