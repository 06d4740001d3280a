package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	if hol.ID == "" {
		hol.ID = uuid.New().String()
	}

	query := `
		INSERT INTO holidays (
			id, name, date, type, is_recurring, description
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		hol.ID, hol.Name, hol.Date, hol.Type, hol.IsRecurring, hol.Description,
	).Scan(&hol.CreatedAt, &hol.UpdatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return hol, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date, type, is_recurring, description, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	var hol holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&hol.ID, &hol.Name, &hol.Date, &hol.Type, &hol.IsRecurring, &hol.Description,
		&hol.CreatedAt, &hol.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return hol, nil
}

// GetByDate implements holiday.HolidayRepository.
func (h *holidayRepository) GetByDate(ctx context.Context, date time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	// Recurring holidays match on month and day regardless of year.
	query := `
		SELECT id, name, date, type, is_recurring, description, created_at, updated_at
		FROM holidays
		WHERE date = $1
		   OR (is_recurring AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(DAY FROM date) = $3)
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, date, int(date.Month()), date.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays by date: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		err := rows.Scan(
			&hol.ID, &hol.Name, &hol.Date, &hol.Type, &hol.IsRecurring, &hol.Description,
			&hol.CreatedAt, &hol.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date, type, is_recurring, description, created_at, updated_at
		FROM holidays
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		err := rows.Scan(
			&hol.ID, &hol.Name, &hol.Date, &hol.Type, &hol.IsRecurring, &hol.Description,
			&hol.CreatedAt, &hol.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepository) Update(ctx context.Context, hol holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE holidays SET
			name = $2,
			date = $3,
			type = $4,
			is_recurring = $5,
			description = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		hol.ID, hol.Name, hol.Date, hol.Type, hol.IsRecurring, hol.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	query := `DELETE FROM holidays WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
