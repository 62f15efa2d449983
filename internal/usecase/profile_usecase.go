package usecase

import (
	"context"
	"errors"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/domain/repository"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/service"
	"calorie-planner/pkg/calorie"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotSignedIn     = errors.New("sign in required")
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, ident identity.Identity) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, ident identity.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, ident identity.Identity) (*dto.ProfileResponse, error) {
	if !ident.IsSignedIn() {
		return nil, ErrNotSignedIn
	}

	profile, err := u.profileRepo.FindByUserID(ctx, ident.UserID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, ident identity.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !ident.IsSignedIn() {
		return nil, ErrNotSignedIn
	}

	current, err := u.profileRepo.FindByUserID(ctx, ident.UserID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrProfileNotFound
	}

	updated := *current
	fields := entity.JSON{}
	if req.Name != nil {
		updated.Name = *req.Name
		fields[entity.FieldName] = *req.Name
	}
	if req.Goal != nil {
		updated.Goal = *req.Goal
		fields[entity.FieldGoal] = *req.Goal
	}
	if req.Plan != nil {
		updated.Plan = *req.Plan
		fields[entity.FieldPlan] = *req.Plan
	}
	bodyChanged := false
	if req.Weight != nil {
		updated.Weight = req.Weight
		fields[entity.FieldWeight] = *req.Weight
		bodyChanged = true
	}
	if req.Height != nil {
		updated.Height = req.Height
		fields[entity.FieldHeight] = *req.Height
		bodyChanged = true
	}

	// stored calories must keep matching the stored inputs
	if bodyChanged && updated.HasEstimationInputs() {
		kcal := calorie.Round(calorie.Estimate(
			*updated.Age,
			calorie.Gender(updated.Gender),
			*updated.Weight,
			*updated.Height,
			calorie.ActivityLevel(updated.Activity),
		))
		updated.Calories = &kcal
		fields[entity.FieldCalories] = kcal.InexactFloat64()
	}

	if len(fields) == 0 {
		return converter.ProfileToResponse(current), nil
	}

	if err := u.profileRepo.Merge(ctx, ident.UserID, fields); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	userID := ident.UserID
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionProfileUpdate, entity.CollectionUsers, userID.String(), converter.ProfileToDocument(current), fields); err != nil {
		u.log.Warnf("Failed to audit profile update: %+v", err)
	}

	return converter.ProfileToResponse(&updated), nil
}
