package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/delivery/http/middleware"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/usecase"
	"calorie-planner/pkg/jwt"
	"calorie-planner/pkg/response"
	"calorie-planner/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	authUsecase         usecase.AuthUsecase
	validator           *validator.CustomValidator
	jwtService          *jwt.JWTService
	frontendCallbackURL string
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService, frontendCallbackURL string) *AuthHandler {
	return &AuthHandler{
		authUsecase:         authUsecase,
		validator:           validator,
		jwtService:          jwtService,
		frontendCallbackURL: frontendCallbackURL,
	}
}

// SocialLogin starts a social sign-in
// @Summary Start social sign-in
// @Description Returns the provider consent URL. mode is login (default) or signup
// @Tags Auth
// @Produce json
// @Param provider path string true "google or facebook"
// @Param mode query string false "login or signup"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/{provider}/login [get]
func (h *AuthHandler) SocialLogin(w http.ResponseWriter, r *http.Request) {
	req := dto.SocialBeginRequest{
		Provider: mux.Vars(r)["provider"],
		Mode:     r.URL.Query().Get("mode"),
	}
	if req.Mode == "" {
		req.Mode = usecase.SocialModeLogin
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.authUsecase.BeginSocial(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProviderDisabled):
			response.BadRequest(w, "Sign-in provider is not available")
		default:
			response.InternalServerError(w, "Failed to start sign-in")
		}
		return
	}

	response.Success(w, http.StatusOK, "Redirect to provider", res)
}

// SocialCallback completes a social sign-in
// @Summary Social sign-in callback
// @Description Exchanges the authorization code. Redirects to the frontend when configured
// @Tags Auth
// @Produce json
// @Param provider path string true "google or facebook"
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by the login endpoint"
// @Success 200 {object} response.Response
// @Success 302
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) SocialCallback(w http.ResponseWriter, r *http.Request) {
	req := dto.SocialCallbackRequest{
		Provider: mux.Vars(r)["provider"],
		Code:     r.URL.Query().Get("code"),
		State:    r.URL.Query().Get("state"),
	}

	if err := h.validator.Validate(&req); err != nil {
		if h.frontendCallbackURL != "" {
			h.redirectError(w, r, "invalid_request")
			return
		}
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.authUsecase.CompleteSocial(r.Context(), &req)
	if err != nil {
		status, code, message := socialError(err)
		if h.frontendCallbackURL != "" {
			h.redirectError(w, r, code)
			return
		}
		response.Error(w, status, message, nil)
		return
	}

	if h.frontendCallbackURL != "" {
		fragment := url.Values{}
		fragment.Set("access_token", res.Tokens.AccessToken)
		fragment.Set("refresh_token", res.Tokens.RefreshToken)
		fragment.Set("expires_in", strconv.FormatInt(res.Tokens.ExpiresIn, 10))
		fragment.Set("created", strconv.FormatBool(res.Created))
		http.Redirect(w, r, h.frontendCallbackURL+"#"+fragment.Encode(), http.StatusFound)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", res)
}

func socialError(err error) (int, string, string) {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found", "No account found, please sign up first"
	case errors.Is(err, usecase.ErrInvalidState):
		return http.StatusBadRequest, "invalid_state", "Sign-in session expired, please try again"
	case errors.Is(err, usecase.ErrProviderDisabled):
		return http.StatusBadRequest, "provider_disabled", "Sign-in provider is not available"
	case errors.Is(err, usecase.ErrSocialAuthFailed):
		return http.StatusUnauthorized, "auth_failed", "Sign-in with provider failed"
	default:
		return http.StatusInternalServerError, "server_error", "Failed to complete sign-in"
	}
}

func (h *AuthHandler) redirectError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.frontendCallbackURL+"?error="+url.QueryEscape(code), http.StatusFound)
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user with email, password, and name
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Logout handles user logout
// @Summary Logout user
// @Description Logout and revoke tokens
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ident := identity.FromContext(r.Context())
	if !ident.IsSignedIn() {
		response.Unauthorized(w, "Invalid token")
		return
	}
	userID := ident.UserID
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Get refresh token from request body if provided
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	refreshTokenID := ""
	if req.RefreshToken != "" {
		claims, err := h.jwtService.ValidateToken(req.RefreshToken)
		if err == nil && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Get new access token using refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked, usecase.ErrUserNotFound:
			response.Error(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ident := identity.FromContext(r.Context())
	if !ident.IsSignedIn() {
		response.Unauthorized(w, "Invalid token")
		return
	}
	userID := ident.UserID

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
