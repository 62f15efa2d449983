package repository

import (
	"context"
	"errors"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"

	"github.com/google/uuid"
)

type profileRepository struct {
	store domainRepo.DocumentStore
}

func NewProfileRepository(store domainRepo.DocumentStore) domainRepo.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	doc, err := r.store.Get(ctx, entity.CollectionUsers, userID.String())
	if err != nil {
		if errors.Is(err, domainRepo.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return converter.DocumentToProfile(userID, doc), nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	return r.store.Set(ctx, entity.CollectionUsers, profile.UserID.String(), converter.ProfileToDocument(profile), true)
}

func (r *profileRepository) Merge(ctx context.Context, userID uuid.UUID, fields entity.JSON) error {
	return r.store.Set(ctx, entity.CollectionUsers, userID.String(), fields, true)
}

func (r *profileRepository) SaveRecord(ctx context.Context, userID uuid.UUID, record *entity.ProfileRecord) error {
	return r.store.Set(ctx, entity.CollectionUsers, userID.String(), converter.RecordToDocument(record), true)
}
