package usecase

import (
	"context"
	"testing"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/repository"
	"calorie-planner/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUsecase(t *testing.T) (ProfileUsecase, *repository.MemoryDocumentStore) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := repository.NewMemoryDocumentStore()
	audit := service.NewAuditService(log, repository.NewAuditLogRepository(store))
	return NewProfileUsecase(log, repository.NewProfileRepository(store), audit), store
}

func seedUser(t *testing.T, store *repository.MemoryDocumentStore, userID uuid.UUID, doc entity.JSON) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), entity.CollectionUsers, userID.String(), doc, false))
}

func ptr[T any](v T) *T { return &v }

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	uc, store := newProfileUsecase(t)
	userID := uuid.New()
	seedUser(t, store, userID, entity.JSON{entity.FieldEmail: "ann@example.com", entity.FieldName: "Ann"})

	res, err := uc.GetProfile(ctx, identity.SignedIn(userID, "ann@example.com", entity.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.Name)
	assert.Equal(t, entity.PlanFree, res.Plan)
	assert.Equal(t, entity.DefaultGoal, res.Goal)
	assert.Equal(t, entity.RoleUser, res.Role)

	_, err = uc.GetProfile(ctx, identity.Anonymous())
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = uc.GetProfile(ctx, identity.SignedIn(uuid.New(), "", entity.RoleUser))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile_MergesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	uc, store := newProfileUsecase(t)
	userID := uuid.New()
	seedUser(t, store, userID, entity.JSON{entity.FieldName: "Ann", entity.FieldEmail: "ann@example.com"})

	res, err := uc.UpdateProfile(ctx, identity.SignedIn(userID, "", entity.RoleUser), &dto.UpdateProfileRequest{
		Goal: ptr("Run a marathon"),
		Plan: ptr(entity.PlanPremium),
	})
	require.NoError(t, err)
	assert.Equal(t, "Run a marathon", res.Goal)
	assert.Equal(t, entity.PlanPremium, res.Plan)

	doc, err := store.Get(ctx, entity.CollectionUsers, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ann", doc[entity.FieldName])
	assert.Equal(t, "ann@example.com", doc[entity.FieldEmail])
	assert.NotContains(t, doc, entity.FieldCalories)
}

func TestUpdateProfile_RecomputesCaloriesWhenBodyChanges(t *testing.T) {
	ctx := context.Background()
	uc, store := newProfileUsecase(t)
	userID := uuid.New()
	seedUser(t, store, userID, entity.JSON{
		entity.FieldAge:      30,
		entity.FieldGender:   "male",
		entity.FieldWeight:   80.0,
		entity.FieldHeight:   170.0,
		entity.FieldActivity: "moderate",
		entity.FieldCalories: 2798.31,
	})

	res, err := uc.UpdateProfile(ctx, identity.SignedIn(userID, "", entity.RoleUser), &dto.UpdateProfileRequest{
		Weight: ptr(70.0),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Calories)
	assert.Equal(t, "2590.61", res.Calories.StringFixed(2))

	doc, err := store.Get(ctx, entity.CollectionUsers, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 70.0, doc[entity.FieldWeight])
	assert.Equal(t, 2590.61, doc[entity.FieldCalories])
}

func TestUpdateProfile_WritesAuditEntry(t *testing.T) {
	ctx := context.Background()
	uc, store := newProfileUsecase(t)
	userID := uuid.New()
	seedUser(t, store, userID, entity.JSON{entity.FieldName: "Ann"})

	_, err := uc.UpdateProfile(ctx, identity.SignedIn(userID, "", entity.RoleUser), &dto.UpdateProfileRequest{Name: ptr("Anna")})
	require.NoError(t, err)

	var audits []repository.StoreCall
	for _, call := range store.SetCalls() {
		if call.Collection == entity.CollectionAuditLogs {
			audits = append(audits, call)
		}
	}
	require.Len(t, audits, 1)
	assert.Equal(t, entity.AuditActionProfileUpdate, audits[0].Data["action"])
}

func TestUpdateProfile_NoFieldsIsNoop(t *testing.T) {
	uc, store := newProfileUsecase(t)
	userID := uuid.New()
	seedUser(t, store, userID, entity.JSON{entity.FieldName: "Ann"})

	_, err := uc.UpdateProfile(context.Background(), identity.SignedIn(userID, "", entity.RoleUser), &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Len(t, store.SetCalls(), 1)
}
