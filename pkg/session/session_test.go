package session

import (
	"testing"
	"time"

	"clinic-cms-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *Service {
	return NewService(config.SessionConfig{
		Secret:     secret,
		CookieName: "clinic_session",
		TTL:        time.Hour,
	})
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, err := svc.Issue(userID, "admin@clinic.example")
	require.NoError(t, err)

	sess, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, "admin@clinic.example", sess.Email)
	assert.NotEmpty(t, sess.TokenID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a")
	verifier := newTestService("secret-b")

	token, err := issuer.Issue(uuid.New(), "admin@clinic.example")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.Verify("not.a.jwt")
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewService(config.SessionConfig{
		Secret: "test-secret",
		TTL:    -time.Hour,
	})

	token, err := svc.Issue(uuid.New(), "admin@clinic.example")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
