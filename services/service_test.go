package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management-backend/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.BookingPlatform{},
		&models.Room{},
		&models.Admin{},
		&models.Reservation{},
		&models.RoomNote{},
	))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRoom(t *testing.T, db *gorm.DB, number string) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		RoomType:      "Standard",
		MaxGuests:     2,
		PricePerNight: 120,
		Status:        models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedPlatform(t *testing.T, db *gorm.DB, name string) models.BookingPlatform {
	t.Helper()
	platform := models.BookingPlatform{Name: name}
	require.NoError(t, db.Create(&platform).Error)
	return platform
}

func seedAdmin(t *testing.T, db *gorm.DB, name string) models.Admin {
	t.Helper()
	admin := models.Admin{Name: name, Role: "staff", IsActive: true}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

// seedReservation writes a raw reservation row, bypassing the lifecycle
// manager, so tests can plant legacy data.
func seedReservation(t *testing.T, db *gorm.DB, roomID, customerID, platformID uint, checkIn, checkOut time.Time, status string) models.Reservation {
	t.Helper()
	r := models.Reservation{
		CustomerID:       customerID,
		RoomID:           roomID,
		PlatformID:       platformID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           2,
		TotalPrice:       600,
		Status:           status,
		BookingReference: "SEED-REF",
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}
