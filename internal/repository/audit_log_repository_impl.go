package repository

import (
	"context"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	store domainRepo.DocumentStore
}

func NewAuditLogRepository(store domainRepo.DocumentStore) domainRepo.AuditLogRepository {
	return &auditLogRepository{store: store}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	return r.store.Set(ctx, entity.CollectionAuditLogs, log.ID.String(), converter.AuditLogToDocument(log), false)
}
