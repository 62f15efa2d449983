package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field names of the user document.
const (
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldWeight    = "weight"
	FieldHeight    = "height"
	FieldActivity  = "activity"
	FieldCalories  = "calories"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldAvatar    = "avatar"
	FieldProvider  = "provider"
	FieldRole      = "role"
	FieldGoal      = "goal"
	FieldPlan      = "plan"
	FieldCreatedAt = "createdAt"
)

const (
	PlanFree    = "Free"
	PlanPremium = "Premium"

	DefaultGoal = "Stay healthy"
)

// UserProfile is the user document, keyed by user id. Nil fields are unset.
type UserProfile struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Avatar    string
	Provider  string
	Role      string
	Goal      string
	Plan      string
	CreatedAt *time.Time

	Age      *int
	Gender   string
	Weight   *float64
	Height   *float64
	Activity string
	Calories *decimal.Decimal
}

// HasEstimationInputs reports whether every estimator input is stored.
func (p *UserProfile) HasEstimationInputs() bool {
	return p.Age != nil && *p.Age > 0 &&
		p.Weight != nil && *p.Weight > 0 &&
		p.Height != nil && *p.Height > 0 &&
		p.Gender != ""
}

// ProfileRecord is what a successful estimation persists.
type ProfileRecord struct {
	Age               int
	Gender            string
	Weight            float64
	Height            float64
	Activity          string
	EstimatedCalories decimal.Decimal
}
