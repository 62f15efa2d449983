package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calorie-planner/internal/converter"
	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/domain/repository"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/infrastructure/oauth"
	"calorie-planner/internal/service"
	"calorie-planner/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	SocialModeLogin  = "login"
	SocialModeSignup = "signup"

	providerPassword = "password"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("no account found, please sign up first")
	ErrInvalidState       = errors.New("invalid or expired oauth state")
	ErrProviderDisabled   = errors.New("sign-in provider is not available")
	ErrSocialAuthFailed   = errors.New("social sign-in failed")
)

type AuthUsecase interface {
	BeginSocial(ctx context.Context, req *dto.SocialBeginRequest) (*dto.SocialBeginResponse, error)
	CompleteSocial(ctx context.Context, req *dto.SocialCallbackRequest) (*dto.SocialLoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	// Authenticate resolves an access token to the signed-in identity and
	// the token id.
	Authenticate(ctx context.Context, accessToken string) (identity.Identity, string, error)
}

type authUsecase struct {
	log            *logrus.Logger
	profileRepo    repository.ProfileRepository
	credentialRepo repository.CredentialRepository
	providers      *oauth.Registry
	stateStore     *service.StateStore
	tokenStore     *service.TokenStore
	auditService   service.AuditService
	jwtService     *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	credentialRepo repository.CredentialRepository,
	providers *oauth.Registry,
	stateStore *service.StateStore,
	tokenStore *service.TokenStore,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		profileRepo:    profileRepo,
		credentialRepo: credentialRepo,
		providers:      providers,
		stateStore:     stateStore,
		tokenStore:     tokenStore,
		auditService:   auditService,
		jwtService:     jwtService,
	}
}

// SocialUserID derives a stable user id from the provider account.
func SocialUserID(provider, subject string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(provider+":"+subject))
}

func (u *authUsecase) BeginSocial(ctx context.Context, req *dto.SocialBeginRequest) (*dto.SocialBeginResponse, error) {
	provider, err := u.providers.Get(req.Provider)
	if err != nil {
		return nil, ErrProviderDisabled
	}

	state, err := u.stateStore.Issue(ctx, req.Provider+":"+req.Mode)
	if err != nil {
		u.log.Warnf("Failed to store oauth state: %+v", err)
		return nil, err
	}

	return &dto.SocialBeginResponse{
		AuthURL: provider.AuthCodeURL(state),
		State:   state,
	}, nil
}

func (u *authUsecase) CompleteSocial(ctx context.Context, req *dto.SocialCallbackRequest) (*dto.SocialLoginResponse, error) {
	provider, err := u.providers.Get(req.Provider)
	if err != nil {
		return nil, ErrProviderDisabled
	}

	value, err := u.stateStore.Consume(ctx, req.State)
	if err != nil {
		if errors.Is(err, service.ErrStateNotFound) {
			return nil, ErrInvalidState
		}
		u.log.Warnf("Failed to consume oauth state: %+v", err)
		return nil, err
	}
	stateProvider, mode, ok := strings.Cut(value, ":")
	if !ok || stateProvider != req.Provider {
		return nil, ErrInvalidState
	}

	socialUser, err := provider.FetchUser(ctx, req.Code)
	if err != nil {
		u.log.Warnf("Failed to fetch %s user: %+v", req.Provider, err)
		return nil, fmt.Errorf("%w: %v", ErrSocialAuthFailed, err)
	}

	userID := SocialUserID(socialUser.Provider, socialUser.Subject)
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}

	created := false
	if profile == nil {
		if mode != SocialModeSignup {
			return nil, ErrAccountNotFound
		}

		now := time.Now().UTC()
		profile = &entity.UserProfile{
			UserID:    userID,
			Email:     socialUser.Email,
			Name:      socialUser.Name,
			Avatar:    socialUser.Picture,
			Provider:  socialUser.Provider,
			Role:      entity.RoleUser,
			CreatedAt: &now,
		}
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			u.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}
		created = true
		u.audit(ctx, userID, entity.AuditActionUserRegister, converter.ProfileToDocument(profile))
	}

	tokens, err := u.issueTokens(ctx, profile)
	if err != nil {
		return nil, err
	}
	u.audit(ctx, userID, entity.AuditActionUserLogin, map[string]string{"provider": socialUser.Provider})

	return &dto.SocialLoginResponse{
		Tokens:   tokens,
		User:     converter.ProfileToUserResponse(profile),
		Provider: socialUser.Provider,
		Created:  created,
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := u.credentialRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find credential: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	now := time.Now().UTC()
	profile := &entity.UserProfile{
		UserID:    uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Name:      req.Name,
		Provider:  providerPassword,
		Role:      entity.RoleUser,
		CreatedAt: &now,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	credential := &entity.Credential{
		Email:        profile.Email,
		UserID:       profile.UserID,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
	}
	if err := u.credentialRepo.Create(ctx, credential); err != nil {
		u.log.Warnf("Failed to create credential: %+v", err)
		return nil, err
	}

	u.audit(ctx, profile.UserID, entity.AuditActionUserRegister, converter.ProfileToDocument(profile))

	return converter.ProfileToUserResponse(profile), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	credential, err := u.credentialRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find credential: %+v", err)
		return nil, err
	}
	if credential == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := u.profileRepo.FindByUserID(ctx, credential.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	tokens, err := u.issueTokens(ctx, profile)
	if err != nil {
		return nil, err
	}
	u.audit(ctx, profile.UserID, entity.AuditActionUserLogin, map[string]string{"provider": providerPassword})

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	if err := u.tokenStore.Revoke(ctx, jwt.AccessToken, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if refreshTokenID != "" {
		if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, userID, refreshTokenID); err != nil {
			u.log.Warnf("Failed to delete refresh token: %+v", err)
			return err
		}
	}

	u.audit(ctx, userID, entity.AuditActionUserLogout, nil)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenStore.IsValid(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	// Delete old refresh token
	if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	// the role may have changed since the token was issued
	profile, err := u.profileRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, profile)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	return converter.ProfileToUserResponse(profile), nil
}

func (u *authUsecase) Authenticate(ctx context.Context, accessToken string) (identity.Identity, string, error) {
	claims, err := u.jwtService.ValidateToken(accessToken)
	if err != nil || claims.TokenType != jwt.AccessToken {
		return identity.Anonymous(), "", ErrInvalidToken
	}

	valid, err := u.tokenStore.IsValid(ctx, jwt.AccessToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return identity.Unresolved(), "", err
	}
	if !valid {
		return identity.Anonymous(), "", ErrTokenRevoked
	}

	role := claims.Role
	if role == "" {
		role = entity.RoleUser
	}
	return identity.SignedIn(claims.UserID, claims.Email, role), claims.TokenID, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, profile *entity.UserProfile) (*dto.TokenResponse, error) {
	role := profile.Role
	if role == "" {
		role = entity.RoleUser
	}

	// Generate tokens
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(profile.UserID, profile.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(profile.UserID, profile.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Store tokens in Redis
	if err := u.tokenStore.Store(ctx, jwt.AccessToken, profile.UserID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, jwt.RefreshToken, profile.UserID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) audit(ctx context.Context, userID uuid.UUID, action string, newValue interface{}) {
	if err := u.auditService.LogCreate(ctx, &userID, action, entity.CollectionUsers, userID.String(), newValue); err != nil {
		u.log.Warnf("Failed to audit %s: %+v", action, err)
	}
}
