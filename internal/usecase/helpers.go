package usecase

import (
	"context"

	"clinic-cms-backend/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext resolves the audit actor from the authenticated session,
// nil when the mutation ran outside a session (tooling, tests).
func actorFromContext(ctx context.Context) *uuid.UUID {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil
	}
	id := sess.UserID
	return &id
}
