package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := parseLeaveFilter(r)
	filter.EmployeeID = &employeeID

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Take:       result.Take,
		Skip:       result.Skip,
		TotalItems: result.TotalCount,
	})
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseLeaveFilter(r)

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, &response.Meta{
		Take:       result.Take,
		Skip:       result.Skip,
		TotalItems: result.TotalCount,
	})
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	req := leave.ApproveLeaveRequest{
		ID:           chi.URLParam(r, "id"),
		ApprovedByID: approverID,
	}

	result, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	req := leave.RejectLeaveRequest{
		ID:           chi.URLParam(r, "id"),
		ApprovedByID: approverID,
	}

	result, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

func parseLeaveFilter(r *http.Request) leave.LeaveFilter {
	q := r.URL.Query()

	var filter leave.LeaveFilter
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Take = parseQueryInt(q.Get("take"))
	filter.Skip = parseQueryInt(q.Get("skip"))

	return filter
}
