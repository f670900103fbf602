package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type PlatformController struct {
	Svc *services.PlatformService
}

func NewPlatformController(svc *services.PlatformService) *PlatformController {
	return &PlatformController{Svc: svc}
}

// GetPlatforms (GET /api/platforms)
func (ctrl *PlatformController) GetPlatforms(c *gin.Context) {
	platforms, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// CreatePlatform (POST /api/platforms)
func (ctrl *PlatformController) CreatePlatform(c *gin.Context) {
	var platform models.BookingPlatform
	if err := c.ShouldBindJSON(&platform); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid platform payload: "+err.Error())
		return
	}
	if err := ctrl.Svc.Create(&platform); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, platform)
}
