package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type CalendarController struct {
	Svc *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{Svc: svc}
}

// GetMonth (GET /api/calendar/month/:year/:month)
func (ctrl *CalendarController) GetMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "year and month must be numeric")
		return
	}

	view, err := ctrl.Svc.Month(year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetWeek (GET /api/calendar/week/:year/:week)
func (ctrl *CalendarController) GetWeek(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	week, err2 := strconv.Atoi(c.Param("week"))
	if err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "year and week must be numeric")
		return
	}

	view, err := ctrl.Svc.Week(year, week)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
