package repository

import (
	"context"
	"errors"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"
)

type settingsRepository struct {
	store domainRepo.DocumentStore
}

func NewSettingsRepository(store domainRepo.DocumentStore) domainRepo.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Find(ctx context.Context) (*entity.SiteSettings, error) {
	doc, err := r.store.Get(ctx, entity.CollectionSettings, entity.SettingsDocumentID)
	if err != nil {
		if errors.Is(err, domainRepo.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return converter.DocumentToSettings(doc), nil
}

func (r *settingsRepository) Replace(ctx context.Context, settings *entity.SiteSettings) error {
	return r.store.Set(ctx, entity.CollectionSettings, entity.SettingsDocumentID, converter.SettingsToDocument(settings), false)
}
