package repository

import (
	"context"
	"errors"
	"strings"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"
)

type credentialRepository struct {
	store domainRepo.DocumentStore
}

func NewCredentialRepository(store domainRepo.DocumentStore) domainRepo.CredentialRepository {
	return &credentialRepository{store: store}
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	key := credentialKey(email)
	doc, err := r.store.Get(ctx, entity.CollectionCredentials, key)
	if err != nil {
		if errors.Is(err, domainRepo.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return converter.DocumentToCredential(key, doc)
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credential.Email = credentialKey(credential.Email)
	return r.store.Set(ctx, entity.CollectionCredentials, credential.Email, converter.CredentialToDocument(credential), false)
}
