package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management-backend/models"
)

func TestAdminCreateDefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := models.Admin{Name: "Kei", Role: "manager"}
	require.NoError(t, svc.Create(&admin))

	// Activation comes from the column default; Create itself leaves the
	// flag alone.
	got, err := svc.GetByID(admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestAdminDeactivationSurvivesReads(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := models.Admin{Name: "Rin", Role: "staff"}
	require.NoError(t, svc.Create(&admin))
	require.NoError(t, db.Model(&models.Admin{}).Where("id = ?", admin.ID).
		Update("is_active", false).Error)

	got, err := svc.GetByID(admin.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestAdminCreateRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	err := svc.Create(&models.Admin{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	admin := models.Admin{Name: "Sol", Role: "staff"}
	require.NoError(t, svc.Create(&admin))

	require.NoError(t, svc.Delete(admin.ID))
	_, err := svc.GetByID(admin.ID)
	assert.ErrorIs(t, err, ErrAdminNotFound)

	assert.ErrorIs(t, svc.Delete(admin.ID), ErrAdminNotFound)
}
