package converter

import (
	"time"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// DocumentToProfile reads a user document. Stores hand back numbers as
// float64, int or strings depending on the backend, so values are cast
// leniently and unreadable fields are left unset.
func DocumentToProfile(userID uuid.UUID, doc entity.JSON) *entity.UserProfile {
	profile := &entity.UserProfile{
		UserID:   userID,
		Email:    stringField(doc, entity.FieldEmail),
		Name:     stringField(doc, entity.FieldName),
		Avatar:   stringField(doc, entity.FieldAvatar),
		Provider: stringField(doc, entity.FieldProvider),
		Role:     stringField(doc, entity.FieldRole),
		Goal:     stringField(doc, entity.FieldGoal),
		Plan:     stringField(doc, entity.FieldPlan),
		Gender:   stringField(doc, entity.FieldGender),
		Activity: stringField(doc, entity.FieldActivity),
	}

	if v, ok := present(doc, entity.FieldAge); ok {
		if age, err := cast.ToIntE(v); err == nil {
			profile.Age = &age
		}
	}
	if v, ok := present(doc, entity.FieldWeight); ok {
		if weight, err := cast.ToFloat64E(v); err == nil {
			profile.Weight = &weight
		}
	}
	if v, ok := present(doc, entity.FieldHeight); ok {
		if height, err := cast.ToFloat64E(v); err == nil {
			profile.Height = &height
		}
	}
	if v, ok := present(doc, entity.FieldCalories); ok {
		if kcal, err := cast.ToFloat64E(v); err == nil {
			calories := decimal.NewFromFloat(kcal).Round(2)
			profile.Calories = &calories
		}
	}
	if v, ok := present(doc, entity.FieldCreatedAt); ok {
		if createdAt, err := cast.ToTimeE(v); err == nil {
			profile.CreatedAt = &createdAt
		}
	}

	return profile
}

// ProfileToDocument writes only the fields that are set.
func ProfileToDocument(profile *entity.UserProfile) entity.JSON {
	doc := entity.JSON{}
	setString(doc, entity.FieldEmail, profile.Email)
	setString(doc, entity.FieldName, profile.Name)
	setString(doc, entity.FieldAvatar, profile.Avatar)
	setString(doc, entity.FieldProvider, profile.Provider)
	setString(doc, entity.FieldRole, profile.Role)
	setString(doc, entity.FieldGoal, profile.Goal)
	setString(doc, entity.FieldPlan, profile.Plan)
	setString(doc, entity.FieldGender, profile.Gender)
	setString(doc, entity.FieldActivity, profile.Activity)

	if profile.Age != nil {
		doc[entity.FieldAge] = *profile.Age
	}
	if profile.Weight != nil {
		doc[entity.FieldWeight] = *profile.Weight
	}
	if profile.Height != nil {
		doc[entity.FieldHeight] = *profile.Height
	}
	if profile.Calories != nil {
		doc[entity.FieldCalories] = profile.Calories.InexactFloat64()
	}
	if profile.CreatedAt != nil {
		doc[entity.FieldCreatedAt] = profile.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

// RecordToDocument writes the full estimation record.
func RecordToDocument(record *entity.ProfileRecord) entity.JSON {
	return entity.JSON{
		entity.FieldAge:      record.Age,
		entity.FieldGender:   record.Gender,
		entity.FieldWeight:   record.Weight,
		entity.FieldHeight:   record.Height,
		entity.FieldActivity: record.Activity,
		entity.FieldCalories: record.EstimatedCalories.Round(2).InexactFloat64(),
	}
}

// ProfileToResponse fills display defaults for unset plan, goal and role.
func ProfileToResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		UserID:    profile.UserID,
		Email:     profile.Email,
		Name:      profile.Name,
		Avatar:    profile.Avatar,
		Role:      valueOr(profile.Role, entity.RoleUser),
		Plan:      valueOr(profile.Plan, entity.PlanFree),
		Goal:      valueOr(profile.Goal, entity.DefaultGoal),
		Age:       profile.Age,
		Gender:    profile.Gender,
		Weight:    profile.Weight,
		Height:    profile.Height,
		Activity:  profile.Activity,
		Calories:  profile.Calories,
		CreatedAt: profile.CreatedAt,
	}
}

func ProfileToUserResponse(profile *entity.UserProfile) *dto.UserResponse {
	if profile == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        profile.UserID,
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      valueOr(profile.Role, entity.RoleUser),
		CreatedAt: profile.CreatedAt,
	}
}

func present(doc entity.JSON, key string) (interface{}, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}

func stringField(doc entity.JSON, key string) string {
	v, ok := present(doc, key)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

func setString(doc entity.JSON, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
