package service

import (
	"context"

	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records admin mutations. Writes are best-effort: a failed
// audit entry is logged and never fails the mutation itself.
type AuditService interface {
	LogCreate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
	s.write(db, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.write(db, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, db *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
	s.write(db, actorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(db *gorm.DB, actorID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
