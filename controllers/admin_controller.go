package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GetAdmins (GET /api/admins)
func (ctrl *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// GetAdmin (GET /api/admins/:id)
func (ctrl *AdminController) GetAdmin(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	admin, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// CreateAdmin (POST /api/admins)
func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid admin payload: "+err.Error())
		return
	}
	if err := ctrl.Svc.Create(&admin); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// DeleteAdmin (DELETE /api/admins/:id)
func (ctrl *AdminController) DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
