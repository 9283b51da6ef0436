package entity

import (
	"testing"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolyClinic(t *testing.T) *PolyClinic {
	t.Helper()
	polyclinic, err := NewPolyClinic(uuid.New(), NewPolyClinicParams{
		Name:        "Cardiology",
		Description: "Heart care department",
		Head:        "Dr. Siti Rahma",
		Services:    []string{"ECG", "Echocardiography"},
	})
	require.NoError(t, err)
	return polyclinic
}

func TestNewPolyClinicRejectsDuplicateServices(t *testing.T) {
	_, err := NewPolyClinic(uuid.New(), NewPolyClinicParams{
		Name:        "Cardiology",
		Description: "Heart care department",
		Head:        "Dr. Siti Rahma",
		Services:    []string{"ECG", "ECG"},
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPolyClinicAddService(t *testing.T) {
	polyclinic := newTestPolyClinic(t)

	require.NoError(t, polyclinic.AddService("Stress Test"))
	assert.Contains(t, []string(polyclinic.Services), "Stress Test")
}

func TestPolyClinicAddServiceDuplicateIsConflict(t *testing.T) {
	polyclinic := newTestPolyClinic(t)

	err := polyclinic.AddService("ECG")
	assert.True(t, apperrors.IsConflict(err))
}

func TestPolyClinicRemoveService(t *testing.T) {
	polyclinic := newTestPolyClinic(t)

	require.NoError(t, polyclinic.RemoveService("ECG"))
	assert.NotContains(t, []string(polyclinic.Services), "ECG")

	err := polyclinic.RemoveService("ECG")
	assert.True(t, apperrors.IsValidation(err))
}

func TestPolyClinicLifecycle(t *testing.T) {
	polyclinic := newTestPolyClinic(t)

	polyclinic.Deactivate()
	assert.False(t, polyclinic.IsActive())

	polyclinic.Activate()
	assert.True(t, polyclinic.IsActive())
}
