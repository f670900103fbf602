package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
)

type CleaningController struct {
	Rooms *services.RoomService
}

func NewCleaningController(rooms *services.RoomService) *CleaningController {
	return &CleaningController{Rooms: rooms}
}

// GetCleaningRooms (GET /api/cleaning/rooms)
func (ctrl *CleaningController) GetCleaningRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.CleaningRooms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cleaning_rooms": rooms,
		"count":          len(rooms),
	})
}

// CompleteCleaning (POST /api/cleaning/complete/:room_id)
func (ctrl *CleaningController) CompleteCleaning(c *gin.Context) {
	room, err := ctrl.Rooms.CompleteCleaning(c.Param("room_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
