package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Action    string
	Entity    string
	EntityID  string
	OldValue  interface{}
	NewValue  interface{}
	CreatedAt time.Time
}

// Common audit actions
const (
	AuditActionUserRegister   = "user.register"
	AuditActionUserLogin      = "user.login"
	AuditActionUserLogout     = "user.logout"
	AuditActionProfileUpdate  = "profile.update"
	AuditActionSettingsUpdate = "settings.update"
)
