package repository

import (
	"context"
	"testing"
	"time"

	"calorie-planner/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_RoundTripThroughRedis(t *testing.T) {
	ctx := context.Background()
	_, client := newRedisClient(t)
	repo := NewProfileRepository(NewRedisDocumentStore(client))
	userID := uuid.New()

	missing, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.UserProfile{
		UserID:    userID,
		Email:     "ann@example.com",
		Role:      entity.RoleUser,
		CreatedAt: &createdAt,
	}))
	require.NoError(t, repo.SaveRecord(ctx, userID, &entity.ProfileRecord{
		Age:               30,
		Gender:            "male",
		Weight:            70,
		Height:            170,
		Activity:          "moderate",
		EstimatedCalories: decimal.RequireFromString("2590.61"),
	}))

	profile, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "ann@example.com", profile.Email)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 30, *profile.Age)
	assert.Equal(t, 70.0, *profile.Weight)
	assert.Equal(t, "2590.61", profile.Calories.StringFixed(2))
	require.NotNil(t, profile.CreatedAt)
	assert.True(t, createdAt.Equal(*profile.CreatedAt))
	assert.True(t, profile.HasEstimationInputs())
}

func TestProfileRepository_GormStore(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(NewGormDocumentStore(newSQLiteDB(t)))
	userID := uuid.New()

	require.NoError(t, repo.Merge(ctx, userID, entity.JSON{entity.FieldName: "Ann"}))
	require.NoError(t, repo.SaveRecord(ctx, userID, &entity.ProfileRecord{
		Age: 25, Gender: "female", Weight: 60, Height: 160, Activity: "sedentary",
		EstimatedCalories: decimal.RequireFromString("1665.72"),
	}))

	profile, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, "1665.72", profile.Calories.StringFixed(2))
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(NewMemoryDocumentStore())
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.Credential{
		Email:        "  Ann@Example.com ",
		UserID:       userID,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}))

	cred, err := repo.FindByEmail(ctx, "ann@example.COM")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, userID, cred.UserID)
	assert.Equal(t, "ann@example.com", cred.Email)

	none, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()
	repo := NewSettingsRepository(store)

	settings, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)

	require.NoError(t, repo.Replace(ctx, &entity.SiteSettings{AppName: "FitPlan", Theme: "dark"}))

	settings, err = repo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FitPlan", settings.AppName)
	assert.Equal(t, "dark", settings.Theme)

	calls := store.SetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, entity.SettingsDocumentID, calls[0].ID)
	assert.False(t, calls[0].Merge)
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()
	repo := NewAuditLogRepository(store)
	userID := uuid.New()

	log := &entity.AuditLog{UserID: &userID, Action: entity.AuditActionSettingsUpdate, Entity: "settings", EntityID: "fitnessApp", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, log))
	assert.NotEqual(t, uuid.Nil, log.ID)

	doc, err := store.Get(ctx, entity.CollectionAuditLogs, log.ID.String())
	require.NoError(t, err)
	assert.Equal(t, userID.String(), doc["userId"])
	assert.Equal(t, entity.AuditActionSettingsUpdate, doc["action"])
}
