package entity

import (
	"testing"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFAQ(t *testing.T) {
	faq, err := NewFAQ(uuid.New(), "What are the opening hours?", "08:00-20:00 daily")
	require.NoError(t, err)
	assert.Equal(t, "What are the opening hours?", faq.Question)
}

func TestNewFAQValidation(t *testing.T) {
	_, err := NewFAQ(uuid.New(), "", "answer")
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewFAQ(uuid.New(), "question", "   ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestFAQUpdate(t *testing.T) {
	faq, err := NewFAQ(uuid.New(), "Question?", "Answer.")
	require.NoError(t, err)

	answer := "Updated answer."
	require.NoError(t, faq.Update(FAQPatch{Answer: &answer}))
	assert.Equal(t, "Updated answer.", faq.Answer)
	assert.Equal(t, "Question?", faq.Question)
}
