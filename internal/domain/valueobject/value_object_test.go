package valueobject

import (
	"testing"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityID(t *testing.T) {
	raw := uuid.New()

	id, err := NewEntityID(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw, id.UUID())
	assert.Equal(t, raw.String(), id.String())
}

func TestNewEntityIDRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-uuid", "1234"} {
		_, err := NewEntityID(input)
		assert.True(t, apperrors.IsValidation(err), "input %q should be rejected", input)
	}
}

func TestEntityIDEquals(t *testing.T) {
	raw := uuid.New()
	a, err := NewEntityID(raw.String())
	require.NoError(t, err)
	b, err := NewEntityID(raw.String())
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
}

func TestNewEmail(t *testing.T) {
	email, err := NewEmail(" admin@clinic.example ")
	require.NoError(t, err)
	assert.Equal(t, "admin@clinic.example", email.String())

	for _, input := range []string{"", "plain", "a@b", "@clinic.example"} {
		_, err := NewEmail(input)
		assert.True(t, apperrors.IsValidation(err), "input %q should be rejected", input)
	}
}

func TestNewPhoneNumber(t *testing.T) {
	phone, err := NewPhoneNumber("+62-812-0000-0000")
	require.NoError(t, err)
	assert.Equal(t, "+62-812-0000-0000", phone.String())

	_, err = NewPhoneNumber("   ")
	assert.True(t, apperrors.IsValidation(err))
}
