package usecase

import (
	"context"

	"clinic-cms-backend/internal/converter"
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetAll(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) GetAll(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToListResponse(logs), nil
}
