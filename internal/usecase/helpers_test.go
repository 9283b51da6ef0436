package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// recordingAudit captures audit calls so tests can assert on them without a
// database.
type recordingAudit struct {
	actions         []string
	deletedEntities []interface{}
}

func (a *recordingAudit) LogCreate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
	a.actions = append(a.actions, action)
}

func (a *recordingAudit) LogUpdate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	a.actions = append(a.actions, action)
}

func (a *recordingAudit) LogDelete(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
	a.actions = append(a.actions, action)
	a.deletedEntities = append(a.deletedEntities, oldValue)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
