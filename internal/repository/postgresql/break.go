package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

// Create implements attendance.BreakRepository.
func (b *breakRepository) Create(ctx context.Context, brk attendance.Break) (attendance.Break, error) {
	q := GetQuerier(ctx, b.db)

	if brk.ID == "" {
		brk.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_breaks (
			id, attendance_id, type, start_time, end_time, duration_minutes, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		brk.ID,
		brk.AttendanceID,
		brk.Type,
		brk.StartTime,
		brk.EndTime,
		brk.DurationMinutes,
		brk.Notes,
	).Scan(&brk.CreatedAt, &brk.UpdatedAt)

	if err != nil {
		return attendance.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return brk, nil
}

// GetByID implements attendance.BreakRepository.
func (b *breakRepository) GetByID(ctx context.Context, id string) (attendance.Break, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, type, start_time, end_time, duration_minutes, notes,
			   created_at, updated_at
		FROM attendance_breaks
		WHERE id = $1
	`

	var brk attendance.Break
	err := q.QueryRow(ctx, query, id).Scan(
		&brk.ID, &brk.AttendanceID, &brk.Type, &brk.StartTime, &brk.EndTime,
		&brk.DurationMinutes, &brk.Notes, &brk.CreatedAt, &brk.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Break{}, attendance.ErrBreakNotFound
		}
		return attendance.Break{}, fmt.Errorf("failed to get break: %w", err)
	}

	return brk, nil
}

// ListByAttendance implements attendance.BreakRepository.
func (b *breakRepository) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.Break, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, type, start_time, end_time, duration_minutes, notes,
			   created_at, updated_at
		FROM attendance_breaks
		WHERE attendance_id = $1
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	var breaks []attendance.Break
	for rows.Next() {
		var brk attendance.Break
		err := rows.Scan(
			&brk.ID, &brk.AttendanceID, &brk.Type, &brk.StartTime, &brk.EndTime,
			&brk.DurationMinutes, &brk.Notes, &brk.CreatedAt, &brk.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		breaks = append(breaks, brk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate breaks: %w", err)
	}

	return breaks, nil
}

// Update implements attendance.BreakRepository.
func (b *breakRepository) Update(ctx context.Context, brk attendance.Break) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE attendance_breaks SET
			type = $2,
			start_time = $3,
			end_time = $4,
			duration_minutes = $5,
			notes = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		brk.ID, brk.Type, brk.StartTime, brk.EndTime, brk.DurationMinutes, brk.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update break: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrBreakNotFound
	}

	return nil
}

// Delete implements attendance.BreakRepository.
func (b *breakRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, b.db)

	query := `DELETE FROM attendance_breaks WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete break: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrBreakNotFound
	}

	return nil
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepository{db: db}
}
