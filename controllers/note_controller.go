package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type NoteController struct {
	Svc *services.NoteService
}

func NewNoteController(svc *services.NoteService) *NoteController {
	return &NoteController{Svc: svc}
}

type createNoteRequest struct {
	RoomID        string  `json:"room_id" binding:"required"`
	AdminID       string  `json:"admin_id" binding:"required"`
	NoteType      string  `json:"note_type" binding:"required"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ReservationID *uint   `json:"reservation_id"`
	Progress      *string `json:"progress"`
}

// GetNotes (GET /api/room-notes?room_id=&progress=)
// Omitting progress returns everything; progress= (empty) selects notes
// without a recorded progress.
func (ctrl *NoteController) GetNotes(c *gin.Context) {
	var progress *string
	if v, present := c.GetQuery("progress"); present {
		progress = &v
	}

	notes, err := ctrl.Svc.List(c.Query("room_id"), progress)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetUrgentNotes (GET /api/room-notes/urgent)
func (ctrl *NoteController) GetUrgentNotes(c *gin.Context) {
	notes, err := ctrl.Svc.Urgent()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urgent_notes": notes, "count": len(notes)})
}

// GetAfterCheckoutNotes (GET /api/room-notes/after-checkout)
func (ctrl *NoteController) GetAfterCheckoutNotes(c *gin.Context) {
	notes, err := ctrl.Svc.AfterCheckout()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"after_checkout_notes": notes, "count": len(notes)})
}

// GetAlerts (GET /api/room-notes/alerts?progress=)
// Combined pending feed for the staff dashboard; progress filtering follows
// the GetNotes semantics.
func (ctrl *NoteController) GetAlerts(c *gin.Context) {
	var progress *string
	if v, present := c.GetQuery("progress"); present {
		progress = &v
	}

	alerts, err := ctrl.Svc.Alerts(progress)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// CreateNote (POST /api/room-notes)
func (ctrl *NoteController) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid note payload: "+err.Error())
		return
	}

	note, err := ctrl.Svc.Create(services.CreateNoteInput{
		RoomRef:       req.RoomID,
		AdminRef:      req.AdminID,
		NoteType:      req.NoteType,
		Title:         req.Title,
		Description:   req.Description,
		ReservationID: req.ReservationID,
		Progress:      req.Progress,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// CompleteNote (POST /api/room-notes/:id/complete)
func (ctrl *NoteController) CompleteNote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	note, err := ctrl.Svc.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateProgress (PUT /api/room-notes/:id/progress?progress=)
func (ctrl *NoteController) UpdateProgress(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	note, err := ctrl.Svc.UpdateProgress(id, c.Query("progress"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
