package repository

import (
	"context"

	"calorie-planner/internal/domain/entity"
)

type CredentialRepository interface {
	// FindByEmail returns nil, nil when no credential exists.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	Create(ctx context.Context, credential *entity.Credential) error
}
