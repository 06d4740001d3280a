package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateBreak(w http.ResponseWriter, r *http.Request)
	ListBreaks(w http.ResponseWriter, r *http.Request)
	UpdateBreak(w http.ResponseWriter, r *http.Request)
	DeleteBreak(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req attendance.CheckInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.CheckIn(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req attendance.CheckOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.CheckOut(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := parseRecordFilter(r)
	filter.EmployeeID = &employeeID

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Take:       result.Take,
		Skip:       result.Skip,
		TotalItems: result.TotalCount,
	})
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseRecordFilter(r)

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Take:       result.Take,
		Skip:       result.Skip,
		TotalItems: result.TotalCount,
	})
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// CreateBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) CreateBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AttendanceID = chi.URLParam(r, "id")

	result, err := h.attendanceService.CreateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break recorded", result)
}

// ListBreaks implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListBreaks(w http.ResponseWriter, r *http.Request) {
	attendanceID := chi.URLParam(r, "id")

	result, err := h.attendanceService.ListBreaks(r.Context(), attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "breakId")

	result, err := h.attendanceService.UpdateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break updated", result)
}

// DeleteBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteBreak(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "breakId")

	if err := h.attendanceService.DeleteBreak(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break deleted", nil)
}

func parseRecordFilter(r *http.Request) attendance.RecordFilter {
	q := r.URL.Query()

	var filter attendance.RecordFilter
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

	return filter
}

func parseQueryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
