package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type RevenueController struct {
	Svc *services.RevenueService
}

func NewRevenueController(svc *services.RevenueService) *RevenueController {
	return &RevenueController{Svc: svc}
}

// GetDaily (GET /api/revenue/daily/:start/:end)
func (ctrl *RevenueController) GetDaily(c *gin.Context) {
	start, err := utils.ParseDate(c.Param("start"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	end, err := utils.ParseDate(c.Param("end"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	daily, err := ctrl.Svc.Daily(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start_date": utils.FormatDate(start),
		"end_date":   utils.FormatDate(end),
		"daily_data": daily,
	})
}

// GetMonthly (GET /api/revenue/monthly/:year)
func (ctrl *RevenueController) GetMonthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "year must be numeric")
		return
	}

	monthly, err := ctrl.Svc.Monthly(year)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"monthly_data": monthly,
	})
}

// GetByPlatform (GET /api/revenue/platform/:start/:end)
func (ctrl *RevenueController) GetByPlatform(c *gin.Context) {
	start, err := utils.ParseDate(c.Param("start"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	end, err := utils.ParseDate(c.Param("end"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	platformData, err := ctrl.Svc.ByPlatform(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start_date":    utils.FormatDate(start),
		"end_date":      utils.FormatDate(end),
		"platform_data": platformData,
	})
}
