package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type regularizationRepository struct {
	db *database.DB
}

// Create implements regularization.RegularizationRepository.
func (r *regularizationRepository) Create(ctx context.Context, reg regularization.Regularization) (regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}

	query := `
		INSERT INTO regularization_requests (
			id, employee_id, date, requested_check_in, requested_check_out,
			reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		reg.ID,
		reg.EmployeeID,
		reg.Date,
		reg.RequestedCheckIn,
		reg.RequestedCheckOut,
		reg.Reason,
		reg.Status,
	).Scan(&reg.CreatedAt, &reg.UpdatedAt)

	if err != nil {
		return regularization.Regularization{}, fmt.Errorf("failed to create regularization request: %w", err)
	}

	return reg, nil
}

// GetByID implements regularization.RegularizationRepository.
func (r *regularizationRepository) GetByID(ctx context.Context, id string) (regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.requested_check_in, r.requested_check_out,
			   r.reason, r.status, r.approved_by_id, r.approved_at, r.rejected_reason,
			   r.created_at, r.updated_at, e.full_name
		FROM regularization_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	var reg regularization.Regularization
	err := q.QueryRow(ctx, query, id).Scan(
		&reg.ID, &reg.EmployeeID, &reg.Date, &reg.RequestedCheckIn, &reg.RequestedCheckOut,
		&reg.Reason, &reg.Status, &reg.ApprovedByID, &reg.ApprovedAt, &reg.RejectedReason,
		&reg.CreatedAt, &reg.UpdatedAt, &reg.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return regularization.Regularization{}, regularization.ErrRegularizationNotFound
		}
		return regularization.Regularization{}, fmt.Errorf("failed to get regularization request: %w", err)
	}

	return reg, nil
}

// HasPendingForDate implements regularization.RegularizationRepository.
func (r *regularizationRepository) HasPendingForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM regularization_requests
			WHERE employee_id = $1 AND date = $2 AND status = 'PENDING'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending regularization: %w", err)
	}

	return exists, nil
}

// List implements regularization.RegularizationRepository.
func (r *regularizationRepository) List(ctx context.Context, filter regularization.RegularizationFilter) ([]regularization.Regularization, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, strings.ToUpper(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("r.date >= $%d", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("r.date <= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM regularization_requests r WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count regularization requests: %w", err)
	}

	args = append(args, filter.Take, filter.Skip)
	query := `
		SELECT r.id, r.employee_id, r.date, r.requested_check_in, r.requested_check_out,
			   r.reason, r.status, r.approved_by_id, r.approved_at, r.rejected_reason,
			   r.created_at, r.updated_at, e.full_name
		FROM regularization_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE ` + where + `
		ORDER BY r.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list regularization requests: %w", err)
	}
	defer rows.Close()

	var regs []regularization.Regularization
	for rows.Next() {
		var reg regularization.Regularization
		err := rows.Scan(
			&reg.ID, &reg.EmployeeID, &reg.Date, &reg.RequestedCheckIn, &reg.RequestedCheckOut,
			&reg.Reason, &reg.Status, &reg.ApprovedByID, &reg.ApprovedAt, &reg.RejectedReason,
			&reg.CreatedAt, &reg.UpdatedAt, &reg.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan regularization request: %w", err)
		}
		regs = append(regs, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate regularization requests: %w", err)
	}

	return regs, total, nil
}

// UpdateStatus implements regularization.RegularizationRepository.
func (r *regularizationRepository) UpdateStatus(ctx context.Context, reg regularization.Regularization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE regularization_requests SET
			status = $2,
			approved_by_id = $3,
			approved_at = $4,
			rejected_reason = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		reg.ID, reg.Status, reg.ApprovedByID, reg.ApprovedAt, reg.RejectedReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update regularization status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return regularization.ErrRegularizationNotFound
	}

	return nil
}

func NewRegularizationRepository(db *database.DB) regularization.RegularizationRepository {
	return &regularizationRepository{db: db}
}
