package entity

import (
	"testing"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestimonialRateBounds(t *testing.T) {
	for _, rate := range []int{0, 6, -1} {
		_, err := NewTestimonial(uuid.New(), NewTestimonialParams{
			Name:        "Budi",
			Testimonial: "Great service",
			Rate:        rate,
		})
		assert.True(t, apperrors.IsValidation(err), "rate %d should be rejected", rate)
	}

	for rate := 1; rate <= 5; rate++ {
		_, err := NewTestimonial(uuid.New(), NewTestimonialParams{
			Name:        "Budi",
			Testimonial: "Great service",
			Rate:        rate,
		})
		assert.NoError(t, err, "rate %d should be accepted", rate)
	}
}

func TestTestimonialUpdateRejectsBadRate(t *testing.T) {
	testimonial, err := NewTestimonial(uuid.New(), NewTestimonialParams{
		Name:        "Budi",
		Testimonial: "Great service",
		Rate:        4,
	})
	require.NoError(t, err)

	bad := 9
	err = testimonial.Update(TestimonialPatch{Rate: &bad})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 4, testimonial.Rate)
}
