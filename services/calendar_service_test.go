package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management-backend/models"
)

func TestCalendarMonthWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalendarService(NewReservationService(db))
	room := seedRoom(t, db, "501")
	customer := seedCustomer(t, db, "ana")
	platform := seedPlatform(t, db, "Airbnb")

	inside := seedReservation(t, db, room.ID, customer.ID, platform.ID,
		date(2026, time.March, 10), date(2026, time.March, 12), models.StatusReserved)
	// Spans the month boundary, still belongs to March.
	spanning := seedReservation(t, db, room.ID, customer.ID, platform.ID,
		date(2026, time.February, 27), date(2026, time.March, 2), models.StatusReserved)
	seedReservation(t, db, room.ID, customer.ID, platform.ID,
		date(2026, time.April, 5), date(2026, time.April, 8), models.StatusReserved)

	view, err := svc.Month(2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, 3, view.Month)
	require.Len(t, view.Reservations, 2)

	ids := []uint{view.Reservations[0].ID, view.Reservations[1].ID}
	assert.Contains(t, ids, inside.ID)
	assert.Contains(t, ids, spanning.ID)

	_, err = svc.Month(2026, 13)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalendarWeekWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewCalendarService(NewReservationService(db))
	room := seedRoom(t, db, "502")
	customer := seedCustomer(t, db, "ben")
	platform := seedPlatform(t, db, "Agoda")

	// 2026-01-01 is a Thursday, so week 1 starts Monday 2025-12-29.
	seedReservation(t, db, room.ID, customer.ID, platform.ID,
		date(2025, time.December, 30), date(2026, time.January, 2), models.StatusReserved)
	seedReservation(t, db, room.ID, customer.ID, platform.ID,
		date(2026, time.January, 20), date(2026, time.January, 22), models.StatusReserved)

	view, err := svc.Week(2026, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-29", view.WeekStart)
	assert.Equal(t, "2026-01-04", view.WeekEnd)
	assert.Len(t, view.Reservations, 1)

	_, err = svc.Week(2026, 0)
	assert.ErrorIs(t, err, ErrValidation)
}
