package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetEmployeeSchedule(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.WorkScheduleService
}

func NewScheduleHandler(scheduleService schedule.WorkScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Create implements ScheduleHandler.
func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work schedule created", result)
}

// GetEmployeeSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	result, err := h.scheduleService.GetEmployeeSchedule(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ScheduleHandler.
func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule updated", result)
}

// Delete implements ScheduleHandler.
func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule deleted", nil)
}
