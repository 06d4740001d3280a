package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

// Create implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	if ws.ID == "" {
		ws.ID = uuid.New().String()
	}

	query := `
		INSERT INTO work_schedules (
			id, employee_id, start_time, end_time, break_duration_minutes,
			working_days, timezone, is_flexible, grace_period_minutes,
			effective_from, effective_to
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ws.ID,
		ws.EmployeeID,
		ws.StartTime,
		ws.EndTime,
		ws.BreakDurationMinutes,
		ws.WorkingDays,
		ws.TimeZone,
		ws.IsFlexible,
		ws.GracePeriodMinutes,
		ws.EffectiveFrom,
		ws.EffectiveTo,
	).Scan(&ws.CreatedAt, &ws.UpdatedAt)

	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, employee_id, start_time, end_time, break_duration_minutes,
			   working_days, timezone, is_flexible, grace_period_minutes,
			   effective_from, effective_to, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.EmployeeID, &ws.StartTime, &ws.EndTime, &ws.BreakDurationMinutes,
		&ws.WorkingDays, &ws.TimeZone, &ws.IsFlexible, &ws.GracePeriodMinutes,
		&ws.EffectiveFrom, &ws.EffectiveTo, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

// GetActiveByEmployee implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, employee_id, start_time, end_time, break_duration_minutes,
			   working_days, timezone, is_flexible, grace_period_minutes,
			   effective_from, effective_to, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, employeeID, at).Scan(
		&ws.ID, &ws.EmployeeID, &ws.StartTime, &ws.EndTime, &ws.BreakDurationMinutes,
		&ws.WorkingDays, &ws.TimeZone, &ws.IsFlexible, &ws.GracePeriodMinutes,
		&ws.EffectiveFrom, &ws.EffectiveTo, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active work schedule: %w", err)
	}

	return &ws, nil
}

// Update implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) Update(ctx context.Context, ws schedule.WorkSchedule) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_schedules SET
			start_time = $2,
			end_time = $3,
			break_duration_minutes = $4,
			working_days = $5,
			timezone = $6,
			is_flexible = $7,
			grace_period_minutes = $8,
			effective_to = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		ws.ID, ws.StartTime, ws.EndTime, ws.BreakDurationMinutes, ws.WorkingDays,
		ws.TimeZone, ws.IsFlexible, ws.GracePeriodMinutes, ws.EffectiveTo,
	)
	if err != nil {
		return fmt.Errorf("failed to update work schedule: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// Delete implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	query := `DELETE FROM work_schedules WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}
