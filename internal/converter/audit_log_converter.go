package converter

import (
	"time"

	"calorie-planner/internal/domain/entity"
)

func AuditLogToDocument(log *entity.AuditLog) entity.JSON {
	doc := entity.JSON{
		"action":    log.Action,
		"entity":    log.Entity,
		"entityId":  log.EntityID,
		"oldValue":  log.OldValue,
		"newValue":  log.NewValue,
		"createdAt": log.CreatedAt.UTC().Format(time.RFC3339),
	}
	if log.UserID != nil {
		doc["userId"] = log.UserID.String()
	}
	return doc
}
