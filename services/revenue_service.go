package services

import (
	"time"

	"hotel-management-backend/models"
	"hotel-management-backend/utils"
)

// RevenueService aggregates reservation totals by day, month and platform.
// Revenue is attributed to the check-in date, matching how the front end
// charts it.
type RevenueService struct {
	Reservations *ReservationService
	Platforms    *PlatformService
}

func NewRevenueService(reservations *ReservationService, platforms *PlatformService) *RevenueService {
	return &RevenueService{Reservations: reservations, Platforms: platforms}
}

type DailyRevenue struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
	CheckIns     int     `json:"check_ins"`
	CheckOuts    int     `json:"check_outs"`
}

type MonthlyRevenue struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
	CheckIns     int     `json:"check_ins"`
	CheckOuts    int     `json:"check_outs"`
}

type PlatformRevenue struct {
	Platform     string  `json:"platform"`
	PlatformID   uint    `json:"platform_id"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
}

func activeStatus(status string) bool {
	return status == models.StatusReserved || status == models.StatusCheckedIn
}

func (s *RevenueService) Daily(start, end time.Time) ([]DailyRevenue, error) {
	list, err := s.Reservations.GetAll()
	if err != nil {
		return nil, err
	}

	start = utils.DateOnly(start)
	end = utils.DateOnly(end)

	byDate := map[string]*DailyRevenue{}
	order := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := utils.FormatDate(d)
		byDate[key] = &DailyRevenue{Date: key}
		order = append(order, key)
	}

	for _, r := range list {
		ci := utils.FormatDate(r.CheckIn)
		if day, ok := byDate[ci]; ok {
			day.Revenue += r.TotalPrice
			day.CheckIns++
			if activeStatus(r.Status) {
				day.Reservations++
			}
		}
		co := utils.FormatDate(r.CheckOut)
		if day, ok := byDate[co]; ok {
			day.CheckOuts++
		}
	}

	out := make([]DailyRevenue, 0, len(order))
	for _, key := range order {
		out = append(out, *byDate[key])
	}
	return out, nil
}

func (s *RevenueService) Monthly(year int) ([]MonthlyRevenue, error) {
	list, err := s.Reservations.GetAll()
	if err != nil {
		return nil, err
	}

	months := make([]MonthlyRevenue, 12)
	for i := range months {
		months[i] = MonthlyRevenue{Year: year, Month: i + 1}
	}

	for _, r := range list {
		if r.CheckIn.Year() != year {
			continue
		}
		m := &months[int(r.CheckIn.Month())-1]
		m.Revenue += r.TotalPrice
		m.CheckIns++
		if activeStatus(r.Status) {
			m.Reservations++
		}
	}
	for _, r := range list {
		if r.CheckOut.Year() != year {
			continue
		}
		months[int(r.CheckOut.Month())-1].CheckOuts++
	}
	return months, nil
}

func (s *RevenueService) ByPlatform(start, end time.Time) ([]PlatformRevenue, error) {
	list, err := s.Reservations.GetAll()
	if err != nil {
		return nil, err
	}
	names, err := s.Platforms.NameMap()
	if err != nil {
		return nil, err
	}

	start = utils.DateOnly(start)
	end = utils.DateOnly(end)

	byPlatform := map[uint]*PlatformRevenue{}
	order := []uint{}
	for _, r := range list {
		ci := utils.DateOnly(r.CheckIn)
		if ci.Before(start) || ci.After(end) {
			continue
		}
		entry, ok := byPlatform[r.PlatformID]
		if !ok {
			name := names[r.PlatformID]
			if name == "" {
				name = "Unknown"
			}
			entry = &PlatformRevenue{Platform: name, PlatformID: r.PlatformID}
			byPlatform[r.PlatformID] = entry
			order = append(order, r.PlatformID)
		}
		entry.Revenue += r.TotalPrice
		entry.Reservations++
	}

	out := make([]PlatformRevenue, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlatform[id])
	}
	return out, nil
}
