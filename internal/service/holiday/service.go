package holiday

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	h := holiday.Holiday{
		Name:        strings.TrimSpace(req.Name),
		Date:        date,
		Type:        holiday.Type(strings.ToUpper(req.Type)),
		IsRecurring: req.IsRecurring,
		Description: req.Description,
	}

	saved, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(saved), nil
}

// Get implements holiday.HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapHolidayToResponse(h), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		h.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil && *req.Date != "" {
		date, _ := time.Parse("2006-01-02", *req.Date)
		h.Date = date
	}
	if req.Type != nil {
		h.Type = holiday.Type(strings.ToUpper(*req.Type))
	}
	if req.IsRecurring != nil {
		h.IsRecurring = *req.IsRecurring
	}
	if req.Description != nil {
		h.Description = req.Description
	}

	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return mapHolidayToResponse(h), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		IsRecurring: h.IsRecurring,
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   h.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
