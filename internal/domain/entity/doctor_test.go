package entity

import (
	"testing"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoctor(t *testing.T) {
	doctor, err := NewDoctor(uuid.New(), NewDoctorParams{
		FullName:   "Dr. Siti Rahma",
		Specialist: "Cardiology",
		Email:      "siti@clinic.example",
		Phone:      "+62-812-0000-0000",
	})
	require.NoError(t, err)

	assert.Equal(t, DoctorStatusActive, doctor.Status)
	assert.True(t, doctor.IsActive())
	assert.False(t, doctor.CreatedAt.IsZero())
}

func TestNewDoctorValidation(t *testing.T) {
	tests := []struct {
		name   string
		params NewDoctorParams
	}{
		{"empty full name", NewDoctorParams{FullName: "  ", Specialist: "Cardiology"}},
		{"empty specialist", NewDoctorParams{FullName: "Dr. Siti", Specialist: ""}},
		{"bad email", NewDoctorParams{FullName: "Dr. Siti", Specialist: "Cardiology", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDoctor(uuid.New(), tt.params)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestDoctorUpdate(t *testing.T) {
	doctor, err := NewDoctor(uuid.New(), NewDoctorParams{
		FullName:   "Dr. Siti Rahma",
		Specialist: "Cardiology",
	})
	require.NoError(t, err)

	before := doctor.UpdatedAt
	time.Sleep(time.Millisecond)

	name := "Dr. Siti Rahma, Sp.JP"
	require.NoError(t, doctor.Update(DoctorPatch{FullName: &name}))

	assert.Equal(t, name, doctor.FullName)
	assert.Equal(t, "Cardiology", doctor.Specialist)
	assert.True(t, doctor.UpdatedAt.After(before))
}

func TestDoctorUpdateRejectsEmptyName(t *testing.T) {
	doctor, err := NewDoctor(uuid.New(), NewDoctorParams{
		FullName:   "Dr. Siti Rahma",
		Specialist: "Cardiology",
	})
	require.NoError(t, err)

	empty := "   "
	err = doctor.Update(DoctorPatch{FullName: &empty})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDoctorLifecycle(t *testing.T) {
	doctor, err := NewDoctor(uuid.New(), NewDoctorParams{
		FullName:   "Dr. Siti Rahma",
		Specialist: "Cardiology",
	})
	require.NoError(t, err)

	doctor.Deactivate()
	assert.False(t, doctor.IsActive())

	doctor.Activate()
	assert.True(t, doctor.IsActive())
}
