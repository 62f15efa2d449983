package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateProfileRequest fields left nil are not touched.
type UpdateProfileRequest struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Height *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0,lte=1000"`
	Goal   *string  `json:"goal" validate:"omitempty,max=200"`
	Plan   *string  `json:"plan" validate:"omitempty,oneof=Free Premium"`
}

type ProfileResponse struct {
	UserID    uuid.UUID        `json:"user_id"`
	Email     string           `json:"email,omitempty"`
	Name      string           `json:"name,omitempty"`
	Avatar    string           `json:"avatar,omitempty"`
	Role      string           `json:"role"`
	Plan      string           `json:"plan"`
	Goal      string           `json:"goal"`
	Age       *int             `json:"age,omitempty"`
	Gender    string           `json:"gender,omitempty"`
	Weight    *float64         `json:"weight,omitempty"`
	Height    *float64         `json:"height,omitempty"`
	Activity  string           `json:"activity,omitempty"`
	Calories  *decimal.Decimal `json:"calories,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty"`
}
