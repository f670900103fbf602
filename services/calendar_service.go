package services

import (
	"fmt"
	"time"

	"hotel-management-backend/models"
	"hotel-management-backend/utils"
)

// CalendarService windows reservations for the front end's month and week
// views. Pure derivation over normalized reservation data.
type CalendarService struct {
	Reservations *ReservationService
}

func NewCalendarService(reservations *ReservationService) *CalendarService {
	return &CalendarService{Reservations: reservations}
}

type MonthView struct {
	Year         int                  `json:"year"`
	Month        int                  `json:"month"`
	Reservations []models.Reservation `json:"reservations"`
}

type WeekView struct {
	Year         int                  `json:"year"`
	Week         int                  `json:"week"`
	WeekStart    string               `json:"week_start"`
	WeekEnd      string               `json:"week_end"`
	Reservations []models.Reservation `json:"reservations"`
}

func (s *CalendarService) Month(year, month int) (*MonthView, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12", ErrValidation)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	list, err := s.Reservations.GetAll()
	if err != nil {
		return nil, err
	}

	view := &MonthView{Year: year, Month: month, Reservations: []models.Reservation{}}
	for _, r := range list {
		ci := utils.DateOnly(r.CheckIn)
		co := utils.DateOnly(r.CheckOut)
		if ci.Before(end) && !co.Before(start) {
			view.Reservations = append(view.Reservations, r)
		}
	}
	return view, nil
}

func (s *CalendarService) Week(year, week int) (*WeekView, error) {
	if week < 1 || week > 53 {
		return nil, fmt.Errorf("%w: week must be 1-53", ErrValidation)
	}

	// Monday of week 1 is the Monday on or before January 1st.
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	weekday := (int(jan1.Weekday()) + 6) % 7 // Monday = 0
	weekStart := jan1.AddDate(0, 0, -weekday+(week-1)*7)
	weekEnd := weekStart.AddDate(0, 0, 6)

	list, err := s.Reservations.GetAll()
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		Year:         year,
		Week:         week,
		WeekStart:    utils.FormatDate(weekStart),
		WeekEnd:      utils.FormatDate(weekEnd),
		Reservations: []models.Reservation{},
	}
	for _, r := range list {
		ci := utils.DateOnly(r.CheckIn)
		co := utils.DateOnly(r.CheckOut)
		if !ci.After(weekEnd) && !co.Before(weekStart) {
			view.Reservations = append(view.Reservations, r)
		}
	}
	return view, nil
}
