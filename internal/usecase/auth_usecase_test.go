package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calorie-planner/config"
	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/identity"
	"calorie-planner/internal/infrastructure/oauth"
	"calorie-planner/internal/repository"
	"calorie-planner/internal/service"
	"calorie-planner/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name string
	user *oauth.SocialUser
	err  error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://provider.example/auth?state=" + state
}

func (p *fakeProvider) FetchUser(context.Context, string) (*oauth.SocialUser, error) {
	return p.user, p.err
}

type authFixture struct {
	uc       AuthUsecase
	store    *repository.MemoryDocumentStore
	provider *fakeProvider
	redis    *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := repository.NewMemoryDocumentStore()
	provider := &fakeProvider{
		name: oauth.ProviderGoogle,
		user: &oauth.SocialUser{
			Provider: oauth.ProviderGoogle,
			Subject:  "g-123",
			Email:    "ann@example.com",
			Name:     "Ann",
			Picture:  "https://img.example/ann.png",
			Verified: true,
		},
	}

	uc := NewAuthUsecase(
		log,
		repository.NewProfileRepository(store),
		repository.NewCredentialRepository(store),
		oauth.NewRegistry(provider),
		service.NewStateStore(client, 10*time.Minute),
		service.NewTokenStore(client),
		service.NewAuditService(log, repository.NewAuditLogRepository(store)),
		jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute, RefreshExpiry: time.Hour}),
	)

	return &authFixture{uc: uc, store: store, provider: provider, redis: mr}
}

func (f *authFixture) begin(t *testing.T, mode string) string {
	t.Helper()
	res, err := f.uc.BeginSocial(context.Background(), &dto.SocialBeginRequest{Provider: oauth.ProviderGoogle, Mode: mode})
	require.NoError(t, err)
	assert.Contains(t, res.AuthURL, res.State)
	return res.State
}

func TestSocialSignupCreatesUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	state := f.begin(t, SocialModeSignup)

	res, err := f.uc.CompleteSocial(ctx, &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "code", State: state})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, SocialUserID(oauth.ProviderGoogle, "g-123"), res.User.ID)
	assert.Equal(t, entity.RoleUser, res.User.Role)
	require.NotNil(t, res.Tokens)

	doc, err := f.store.Get(ctx, entity.CollectionUsers, res.User.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", doc[entity.FieldEmail])
	assert.Equal(t, oauth.ProviderGoogle, doc[entity.FieldProvider])

	ident, tokenID, err := f.uc.Authenticate(ctx, res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.Equal(t, identity.StateSignedIn, ident.State)
	assert.Equal(t, res.User.ID, ident.UserID)
}

func TestSocialLoginWithoutAccount(t *testing.T) {
	f := newAuthFixture(t)
	state := f.begin(t, SocialModeLogin)

	_, err := f.uc.CompleteSocial(context.Background(), &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "code", State: state})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSocialLoginExistingAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.uc.CompleteSocial(ctx, &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "c", State: f.begin(t, SocialModeSignup)})
	require.NoError(t, err)

	res, err := f.uc.CompleteSocial(ctx, &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "c", State: f.begin(t, SocialModeLogin)})
	require.NoError(t, err)
	assert.False(t, res.Created)
}

func TestSocialStateIsSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	state := f.begin(t, SocialModeSignup)

	_, err := f.uc.CompleteSocial(ctx, &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "c", State: state})
	require.NoError(t, err)

	_, err = f.uc.CompleteSocial(ctx, &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "c", State: state})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSocialUnknownProvider(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.BeginSocial(context.Background(), &dto.SocialBeginRequest{Provider: oauth.ProviderFacebook, Mode: SocialModeLogin})
	assert.ErrorIs(t, err, ErrProviderDisabled)
}

func TestSocialProviderFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.provider.err = errors.New("exchange failed")
	state := f.begin(t, SocialModeSignup)

	_, err := f.uc.CompleteSocial(context.Background(), &dto.SocialCallbackRequest{Provider: oauth.ProviderGoogle, Code: "c", State: state})
	assert.ErrorIs(t, err, ErrSocialAuthFailed)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.uc.Register(ctx, &dto.RegisterRequest{Email: "Bob@Example.com", Password: "password123", Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	_, err = f.uc.Register(ctx, &dto.RegisterRequest{Email: "bob@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = f.uc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.uc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	tokens, err := f.uc.Login(ctx, &dto.LoginRequest{Email: "BOB@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	me, err := f.uc.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", me.Name)
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, &dto.RegisterRequest{Email: "c@example.com", Password: "password123"})
	require.NoError(t, err)
	tokens, err := f.uc.Login(ctx, &dto.LoginRequest{Email: "c@example.com", Password: "password123"})
	require.NoError(t, err)

	ident, accessID, err := f.uc.Authenticate(ctx, tokens.AccessToken)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"})
	refreshClaims, err := jwtService.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(ctx, ident.UserID, accessID, refreshClaims.TokenID))

	_, _, err = f.uc.Authenticate(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, &dto.RegisterRequest{Email: "d@example.com", Password: "password123"})
	require.NoError(t, err)
	tokens, err := f.uc.Login(ctx, &dto.LoginRequest{Email: "d@example.com", Password: "password123"})
	require.NoError(t, err)

	rotated, err := f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	_, err = f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = f.uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	f := newAuthFixture(t)

	ident, _, err := f.uc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, ident.IsSignedIn())
}
