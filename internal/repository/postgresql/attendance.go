package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
	a.expected_check_in, a.expected_check_out, a.late_by_minutes, a.early_by_minutes,
	a.work_hours, a.total_hours, a.overtime,
	a.location, a.latitude, a.longitude, a.location_type,
	a.is_regularized, a.regularization_id, a.notes,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.ExpectedCheckIn, &rec.ExpectedCheckOut, &rec.LateByMinutes, &rec.EarlyByMinutes,
		&rec.WorkHours, &rec.TotalHours, &rec.Overtime,
		&rec.Location, &rec.Latitude, &rec.Longitude, &rec.LocationType,
		&rec.IsRegularized, &rec.RegularizationID, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status,
			expected_check_in, expected_check_out, late_by_minutes, early_by_minutes,
			work_hours, total_hours, overtime,
			location, latitude, longitude, location_type,
			is_regularized, regularization_id, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			status = EXCLUDED.status,
			expected_check_in = EXCLUDED.expected_check_in,
			expected_check_out = EXCLUDED.expected_check_out,
			late_by_minutes = EXCLUDED.late_by_minutes,
			early_by_minutes = EXCLUDED.early_by_minutes,
			work_hours = EXCLUDED.work_hours,
			total_hours = EXCLUDED.total_hours,
			overtime = EXCLUDED.overtime,
			location = EXCLUDED.location,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location_type = EXCLUDED.location_type,
			is_regularized = EXCLUDED.is_regularized,
			regularization_id = EXCLUDED.regularization_id,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.ExpectedCheckIn,
		rec.ExpectedCheckOut,
		rec.LateByMinutes,
		rec.EarlyByMinutes,
		rec.WorkHours,
		rec.TotalHours,
		rec.Overtime,
		rec.Location,
		rec.Latitude,
		rec.Longitude,
		rec.LocationType,
		rec.IsRegularized,
		rec.RegularizationID,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &rec, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, strings.ToUpper(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	args = append(args, filter.Take, filter.Skip)
	query := `SELECT ` + attendanceColumns + `, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
			&rec.ExpectedCheckIn, &rec.ExpectedCheckOut, &rec.LateByMinutes, &rec.EarlyByMinutes,
			&rec.WorkHours, &rec.TotalHours, &rec.Overtime,
			&rec.Location, &rec.Latitude, &rec.Longitude, &rec.LocationType,
			&rec.IsRegularized, &rec.RegularizationID, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// ListForRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForRange(ctx context.Context, from, to time.Time, employeeID *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	args := []interface{}{from, to}
	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date >= $1 AND a.date <= $2`

	if employeeID != nil {
		args = append(args, *employeeID)
		query += fmt.Sprintf(" AND a.employee_id = $%d", len(args))
	}
	query += " ORDER BY a.date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			employee_id = $2,
			check_in = $3,
			check_out = $4,
			status = $5,
			expected_check_in = $6,
			expected_check_out = $7,
			late_by_minutes = $8,
			early_by_minutes = $9,
			work_hours = $10,
			total_hours = $11,
			overtime = $12,
			location = $13,
			latitude = $14,
			longitude = $15,
			location_type = $16,
			is_regularized = $17,
			regularization_id = $18,
			notes = $19,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.ExpectedCheckIn,
		rec.ExpectedCheckOut,
		rec.LateByMinutes,
		rec.EarlyByMinutes,
		rec.WorkHours,
		rec.TotalHours,
		rec.Overtime,
		rec.Location,
		rec.Latitude,
		rec.Longitude,
		rec.LocationType,
		rec.IsRegularized,
		rec.RegularizationID,
		rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
