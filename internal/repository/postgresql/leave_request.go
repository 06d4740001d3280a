package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
			   l.status, l.approved_by_id, l.created_at, l.updated_at, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ApprovedByID, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, l.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, strings.ToUpper(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	args = append(args, filter.Take, filter.Skip)
	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
			   l.status, l.approved_by_id, l.created_at, l.updated_at, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ApprovedByID, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			approved_by_id = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, req.ID, req.Status, req.ApprovedByID)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
