package entity

import (
	"testing"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestNewPromoValidatesWindow(t *testing.T) {
	now := time.Now()
	_, err := NewPromo(uuid.New(), NewPromoParams{
		Title:       "Health check package",
		Description: "Discounted general checkup",
		StartDate:   timePtr(now.Add(48 * time.Hour)),
		EndDate:     timePtr(now.Add(24 * time.Hour)),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPromoIsCurrentlyActive(t *testing.T) {
	now := time.Now()
	past := timePtr(now.Add(-24 * time.Hour))
	future := timePtr(now.Add(24 * time.Hour))

	tests := []struct {
		name       string
		start, end *time.Time
		deactivate bool
		want       bool
	}{
		{"no window", nil, nil, false, true},
		{"inside window", past, future, false, true},
		{"not started", future, nil, false, false},
		{"expired", nil, past, false, false},
		{"inactive status wins", past, future, true, false},
		{"open start", nil, future, false, true},
		{"open end", past, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo, err := NewPromo(uuid.New(), NewPromoParams{
				Title:       "Promo",
				Description: "Description",
				StartDate:   tt.start,
				EndDate:     tt.end,
			})
			require.NoError(t, err)
			if tt.deactivate {
				promo.Deactivate()
			}
			assert.Equal(t, tt.want, promo.IsCurrentlyActive())
		})
	}
}

func TestPromoUpdateRejectsInvertedWindow(t *testing.T) {
	now := time.Now()
	promo, err := NewPromo(uuid.New(), NewPromoParams{
		Title:       "Promo",
		Description: "Description",
		StartDate:   timePtr(now),
	})
	require.NoError(t, err)

	err = promo.Update(PromoPatch{EndDate: timePtr(now.Add(-time.Hour))})
	assert.True(t, apperrors.IsValidation(err))
}
