package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
)

type CheckInOutController struct {
	Svc *services.ReservationService
}

func NewCheckInOutController(svc *services.ReservationService) *CheckInOutController {
	return &CheckInOutController{Svc: svc}
}

// CheckIn (POST /api/checkinout/checkin/:id)
func (ctrl *CheckInOutController) CheckIn(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := ctrl.Svc.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// CheckOut (POST /api/checkinout/checkout/:id)
func (ctrl *CheckInOutController) CheckOut(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := ctrl.Svc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// Upcoming (GET /api/checkinout/upcoming?days=7)
func (ctrl *CheckInOutController) Upcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	summary, err := ctrl.Svc.Upcoming(days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
