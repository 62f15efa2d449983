package converter

import (
	"fmt"
	"time"

	"calorie-planner/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

const (
	credentialFieldUserID       = "userId"
	credentialFieldPasswordHash = "passwordHash"
	credentialFieldCreatedAt    = "createdAt"
)

func DocumentToCredential(email string, doc entity.JSON) (*entity.Credential, error) {
	userID, err := uuid.Parse(cast.ToString(doc[credentialFieldUserID]))
	if err != nil {
		return nil, fmt.Errorf("credential %s has invalid user id: %w", email, err)
	}

	credential := &entity.Credential{
		Email:        email,
		UserID:       userID,
		PasswordHash: cast.ToString(doc[credentialFieldPasswordHash]),
	}
	if createdAt, err := cast.ToTimeE(doc[credentialFieldCreatedAt]); err == nil {
		credential.CreatedAt = createdAt
	}
	return credential, nil
}

func CredentialToDocument(credential *entity.Credential) entity.JSON {
	return entity.JSON{
		credentialFieldUserID:       credential.UserID.String(),
		credentialFieldPasswordHash: credential.PasswordHash,
		credentialFieldCreatedAt:    credential.CreatedAt.UTC().Format(time.RFC3339),
	}
}
