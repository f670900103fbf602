package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

type createReservationRequest struct {
	CustomerID       uint    `json:"customer_id" binding:"required"`
	RoomID           uint    `json:"room_id" binding:"required"`
	PlatformID       uint    `json:"platform_id" binding:"required"`
	CheckIn          string  `json:"check_in" binding:"required"`
	CheckOut         string  `json:"check_out" binding:"required"`
	Guests           int     `json:"guests" binding:"required"`
	TotalPrice       float64 `json:"total_price"`
	BookingReference string  `json:"booking_reference" binding:"required"`
	Notes            string  `json:"notes"`
	Status           string  `json:"status"`
}

// GetReservations (GET /api/reservations)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetReservation (GET /api/reservations/:id)
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateReservation (POST /api/reservations)
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	created, err := ctrl.Svc.Create(services.CreateReservationInput{
		CustomerID:       req.CustomerID,
		RoomID:           req.RoomID,
		PlatformID:       req.PlatformID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           req.Guests,
		TotalPrice:       req.TotalPrice,
		BookingReference: req.BookingReference,
		Notes:            req.Notes,
		Status:           req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStatus (PUT /api/reservations/:id/status?status=)
func (ctrl *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status := c.Query("status")

	updated, err := ctrl.Svc.SetStatus(id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CheckAvailability (GET /api/reservations/room/:room_id/availability?check_in=&check_out=)
func (ctrl *ReservationController) CheckAvailability(c *gin.Context) {
	roomID, ok := paramID(c, "room_id")
	if !ok {
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	conflict, err := ctrl.Svc.HasConflict(roomID, checkIn, checkOut, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":   roomID,
		"check_in":  utils.FormatDate(checkIn),
		"check_out": utils.FormatDate(checkOut),
		"available": !conflict,
	})
}
