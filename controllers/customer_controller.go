package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type CustomerController struct {
	Svc          *services.CustomerService
	Reservations *services.ReservationService
}

func NewCustomerController(svc *services.CustomerService, reservations *services.ReservationService) *CustomerController {
	return &CustomerController{Svc: svc, Reservations: reservations}
}

// GetCustomers (GET /api/customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}
	if err := ctrl.Svc.Create(&customer); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomerReservations (GET /api/customers/:id/reservations)
func (ctrl *CustomerController) GetCustomerReservations(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := ctrl.Svc.GetByID(id); err != nil {
		respondServiceError(c, err)
		return
	}
	list, err := ctrl.Reservations.ForCustomer(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer_id":  id,
		"reservations": list,
	})
}
