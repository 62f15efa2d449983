package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SocialBeginRequest struct {
	Provider string `validate:"required,oneof=google facebook"`
	Mode     string `validate:"required,oneof=login signup"`
}

type SocialCallbackRequest struct {
	Provider string `validate:"required,oneof=google facebook"`
	Code     string `validate:"required"`
	State    string `validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type SocialBeginResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

type SocialLoginResponse struct {
	Tokens   *TokenResponse `json:"tokens"`
	User     *UserResponse  `json:"user"`
	Provider string         `json:"provider"`
	Created  bool           `json:"created"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
