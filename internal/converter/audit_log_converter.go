package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		ActorID:   log.ActorID,
		Action:    log.Action,
		Metadata:  map[string]interface{}(log.Metadata),
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToListResponse(logs []entity.AuditLog) *dto.AuditLogListResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return &dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}
}
