package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management-backend/models"
)

func TestNoteCreateResolvesRefs(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	room := seedRoom(t, db, "105")
	admin := seedAdmin(t, db, "Mika")

	byName, err := svc.Create(CreateNoteInput{
		RoomRef:  "105",
		AdminRef: "Mika",
		NoteType: models.NoteTypeUrgent,
		Title:    "Broken AC",
	})
	require.NoError(t, err)
	assert.Equal(t, "105", byName.RoomID)
	assert.Equal(t, admin.ID, byName.AdminID)
	assert.Equal(t, models.NoteStatusPending, byName.Status)

	// A numeric room ref that matches a room id folds to the room number.
	byID, err := svc.Create(CreateNoteInput{
		RoomRef:  fmt.Sprintf("%d", room.ID),
		AdminRef: fmt.Sprintf("%d", admin.ID),
		NoteType: models.NoteTypeAfterCheckout,
		Title:    "Deep clean",
	})
	require.NoError(t, err)
	assert.Equal(t, "105", byID.RoomID)
}

func TestNoteCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	seedRoom(t, db, "106")
	seedAdmin(t, db, "Mika")

	_, err := svc.Create(CreateNoteInput{RoomRef: "106", AdminRef: "Mika", NoteType: models.NoteTypeUrgent})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(CreateNoteInput{RoomRef: "106", AdminRef: "Mika", NoteType: "reminder", Title: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(CreateNoteInput{RoomRef: "106", AdminRef: "Nobody", NoteType: models.NoteTypeUrgent, Title: "x"})
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestNoteListProgressFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	seedRoom(t, db, "107")
	seedAdmin(t, db, "Mika")

	inProgress := models.NoteProgressInProgress
	_, err := svc.Create(CreateNoteInput{
		RoomRef: "107", AdminRef: "Mika",
		NoteType: models.NoteTypeUrgent, Title: "Leak", Progress: &inProgress,
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateNoteInput{
		RoomRef: "107", AdminRef: "Mika",
		NoteType: models.NoteTypeUrgent, Title: "Towels",
	})
	require.NoError(t, err)

	all, err := svc.List("107", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none := ""
	unstarted, err := svc.List("107", &none)
	require.NoError(t, err)
	require.Len(t, unstarted, 1)
	assert.Equal(t, "Towels", unstarted[0].Title)

	started, err := svc.List("107", &inProgress)
	require.NoError(t, err)
	require.Len(t, started, 1)
	assert.Equal(t, "Leak", started[0].Title)
}

func TestNoteFinishedStampsCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	seedRoom(t, db, "108")
	seedAdmin(t, db, "Mika")

	note, err := svc.Create(CreateNoteInput{
		RoomRef: "108", AdminRef: "Mika",
		NoteType: models.NoteTypeAfterCheckout, Title: "Restock minibar",
	})
	require.NoError(t, err)

	note, err = svc.UpdateProgress(note.ID, models.NoteProgressInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.NoteStatusPending, note.Status)
	assert.Nil(t, note.CompletedAt)

	note, err = svc.UpdateProgress(note.ID, models.NoteProgressFinished)
	require.NoError(t, err)
	assert.Equal(t, models.NoteStatusCompleted, note.Status)
	require.NotNil(t, note.CompletedAt)

	_, err = svc.UpdateProgress(note.ID, "paused")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProgress(9999, models.NoteProgressFinished)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUrgentAndAfterCheckoutQueues(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	seedRoom(t, db, "109")
	seedAdmin(t, db, "Mika")

	urgent, err := svc.Create(CreateNoteInput{
		RoomRef: "109", AdminRef: "Mika",
		NoteType: models.NoteTypeUrgent, Title: "No hot water",
	})
	require.NoError(t, err)
	after, err := svc.Create(CreateNoteInput{
		RoomRef: "109", AdminRef: "Mika",
		NoteType: models.NoteTypeAfterCheckout, Title: "Change linens",
	})
	require.NoError(t, err)

	queue, err := svc.Urgent()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, urgent.ID, queue[0].ID)

	queue, err = svc.AfterCheckout()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, after.ID, queue[0].ID)

	// Completed notes drop out of the queues.
	_, err = svc.UpdateProgress(urgent.ID, models.NoteProgressFinished)
	require.NoError(t, err)
	queue, err = svc.Urgent()
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestAlertsCombineBothQueues(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoteService(db)
	seedRoom(t, db, "110")
	seedAdmin(t, db, "Mika")

	inProgress := models.NoteProgressInProgress
	urgent, err := svc.Create(CreateNoteInput{
		RoomRef: "110", AdminRef: "Mika",
		NoteType: models.NoteTypeUrgent, Title: "Smoke alarm beeping", Progress: &inProgress,
	})
	require.NoError(t, err)
	after, err := svc.Create(CreateNoteInput{
		RoomRef: "110", AdminRef: "Mika",
		NoteType: models.NoteTypeAfterCheckout, Title: "Carpet shampoo",
	})
	require.NoError(t, err)

	alerts, err := svc.Alerts(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, alerts.TotalCount)
	require.Len(t, alerts.Urgent, 1)
	require.Len(t, alerts.AfterCheckout, 1)
	assert.Equal(t, urgent.ID, alerts.Urgent[0].ID)
	assert.Equal(t, after.ID, alerts.AfterCheckout[0].ID)

	// Progress filter narrows both queues.
	alerts, err = svc.Alerts(&inProgress)
	require.NoError(t, err)
	assert.Equal(t, 1, alerts.TotalCount)
	assert.Len(t, alerts.Urgent, 1)
	assert.Empty(t, alerts.AfterCheckout)

	none := ""
	alerts, err = svc.Alerts(&none)
	require.NoError(t, err)
	assert.Equal(t, 1, alerts.TotalCount)
	assert.Empty(t, alerts.Urgent)
	assert.Len(t, alerts.AfterCheckout, 1)

	// Completing a note removes it from the feed.
	done, err := svc.Complete(after.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NoteStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	alerts, err = svc.Alerts(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, alerts.TotalCount)
	assert.Empty(t, alerts.AfterCheckout)
}
