package http

import (
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/analytics"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	AdvancedSummary(w http.ResponseWriter, r *http.Request)
	Trends(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Summary implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := parseSummaryRequest(r)

	result, err := h.analyticsService.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AdvancedSummary implements AnalyticsHandler.
func (h *analyticsHandlerImpl) AdvancedSummary(w http.ResponseWriter, r *http.Request) {
	req := parseSummaryRequest(r)

	result, err := h.analyticsService.GetAdvancedSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Trends implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Trends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := analytics.TrendsRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		GroupBy:   q.Get("group_by"),
	}
	if v := q.Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}

	result, err := h.analyticsService.GetTrends(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseSummaryRequest(r *http.Request) analytics.SummaryRequest {
	q := r.URL.Query()

	req := analytics.SummaryRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if v := q.Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}

	return req
}
