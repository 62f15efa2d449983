package repository

import (
	"context"

	"calorie-planner/internal/domain/entity"
)

type SettingsRepository interface {
	// Find returns nil, nil when no settings were saved yet.
	Find(ctx context.Context) (*entity.SiteSettings, error)
	Replace(ctx context.Context, settings *entity.SiteSettings) error
}
