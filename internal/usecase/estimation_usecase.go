package usecase

import (
	"context"
	"fmt"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/domain/repository"
	"calorie-planner/internal/identity"
	"calorie-planner/pkg/calorie"
	"calorie-planner/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PersistenceOutcome tells whether an estimate reached the profile store.
type PersistenceOutcome string

const (
	PersistenceNotAttempted PersistenceOutcome = "not_attempted"
	PersistenceSaved        PersistenceOutcome = "saved"
	PersistenceFailed       PersistenceOutcome = "failed"
)

// Calculator form defaults for users without a stored profile.
const (
	DefaultGender = calorie.GenderMale
	DefaultWeight = 70.0
	DefaultHeight = 170.0
)

// ValidationError rejects input before anything is computed or stored.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid estimation input: %v", e.Fields)
}

// PersistenceError reports a failed profile write. The estimate it belongs
// to is still valid and is returned alongside it.
type PersistenceError struct {
	UserID uuid.UUID
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save profile for user %s: %v", e.UserID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type EstimateResult struct {
	Calories    decimal.Decimal
	Display     string
	Multiplier  float64
	Record      entity.ProfileRecord
	Identity    identity.State
	Persistence PersistenceOutcome
}

type EstimationUsecase interface {
	// Estimate computes the daily caloric need. Signed-in users get the
	// inputs and result merged into their profile; a failed write returns
	// both the result and a *PersistenceError.
	Estimate(ctx context.Context, ident identity.Identity, req *dto.EstimateRequest) (*EstimateResult, error)
	Defaults(ctx context.Context, ident identity.Identity) *dto.CalculatorDefaults
}

type estimationUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	profileRepo repository.ProfileRepository
}

func NewEstimationUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	profileRepo repository.ProfileRepository,
) EstimationUsecase {
	return &estimationUsecase{
		log:         log,
		validator:   validator,
		profileRepo: profileRepo,
	}
}

func (u *estimationUsecase) Estimate(ctx context.Context, ident identity.Identity, req *dto.EstimateRequest) (*EstimateResult, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}

	gender := calorie.Gender(req.Gender)
	if gender == "" {
		gender = DefaultGender
	}
	level := calorie.ActivityLevel(req.Activity)
	multiplier, known := calorie.Multiplier(level)
	if !known {
		level = calorie.DefaultActivity
	}

	kcal := calorie.Round(calorie.Estimate(req.Age, gender, req.Weight, req.Height, level))

	result := &EstimateResult{
		Calories:   kcal,
		Display:    kcal.StringFixed(2),
		Multiplier: multiplier,
		Record: entity.ProfileRecord{
			Age:               req.Age,
			Gender:            string(gender),
			Weight:            req.Weight,
			Height:            req.Height,
			Activity:          string(level),
			EstimatedCalories: kcal,
		},
		Identity:    ident.State,
		Persistence: PersistenceNotAttempted,
	}

	if !ident.IsSignedIn() {
		return result, nil
	}

	if err := u.profileRepo.SaveRecord(ctx, ident.UserID, &result.Record); err != nil {
		u.log.WithField("user_id", ident.UserID).Warnf("Failed to save estimation: %+v", err)
		result.Persistence = PersistenceFailed
		return result, &PersistenceError{UserID: ident.UserID, Err: err}
	}

	result.Persistence = PersistenceSaved
	return result, nil
}

func (u *estimationUsecase) Defaults(ctx context.Context, ident identity.Identity) *dto.CalculatorDefaults {
	defaults := &dto.CalculatorDefaults{
		Gender:   string(DefaultGender),
		Weight:   DefaultWeight,
		Height:   DefaultHeight,
		Activity: string(calorie.DefaultActivity),
	}

	if !ident.IsSignedIn() {
		return defaults
	}

	profile, err := u.profileRepo.FindByUserID(ctx, ident.UserID)
	if err != nil {
		u.log.WithField("user_id", ident.UserID).Warnf("Failed to load profile for calculator defaults: %+v", err)
		return defaults
	}
	if profile == nil {
		return defaults
	}

	defaults.Age = profile.Age
	if profile.Gender != "" {
		defaults.Gender = profile.Gender
	}
	if profile.Weight != nil {
		defaults.Weight = *profile.Weight
	}
	if profile.Height != nil {
		defaults.Height = *profile.Height
	}
	if profile.Activity != "" {
		defaults.Activity = profile.Activity
	}
	defaults.Calories = profile.Calories

	return defaults
}
