package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type RegularizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type regularizationHandlerImpl struct {
	regularizationService regularization.RegularizationService
}

func NewRegularizationHandler(regularizationService regularization.RegularizationService) RegularizationHandler {
	return &regularizationHandlerImpl{
		regularizationService: regularizationService,
	}
}

// Create implements RegularizationHandler.
func (h *regularizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req regularization.CreateRegularizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.regularizationService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Regularization request submitted", result)
}

// List implements RegularizationHandler.
func (h *regularizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter regularization.RegularizationFilter
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	filter.Take = parseQueryInt(q.Get("take"))
	filter.Skip = parseQueryInt(q.Get("skip"))

	result, err := h.regularizationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Regularizations, &response.Meta{
		Take:       result.Take,
		Skip:       result.Skip,
		TotalItems: result.TotalCount,
	})
}

// Get implements RegularizationHandler.
func (h *regularizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.regularizationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements RegularizationHandler.
func (h *regularizationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	req := regularization.ApproveRegularizationRequest{
		ID:           chi.URLParam(r, "id"),
		ApprovedByID: approverID,
	}

	result, err := h.regularizationService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regularization request approved", result)
}

// Reject implements RegularizationHandler.
func (h *regularizationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req regularization.RejectRegularizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ApprovedByID = approverID

	result, err := h.regularizationService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regularization request rejected", result)
}
