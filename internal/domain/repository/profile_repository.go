package repository

import (
	"context"

	"calorie-planner/internal/domain/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// FindByUserID returns nil, nil when the user has no document.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Create(ctx context.Context, profile *entity.UserProfile) error
	Merge(ctx context.Context, userID uuid.UUID, fields entity.JSON) error
	SaveRecord(ctx context.Context, userID uuid.UUID, record *entity.ProfileRecord) error
}
