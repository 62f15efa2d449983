package oauth

import (
	"context"
	"errors"
	"fmt"

	"calorie-planner/config"
)

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

var (
	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrExchangeFailed  = errors.New("oauth code exchange failed")
)

// SocialUser is the provider profile of a signed-in user.
type SocialUser struct {
	Provider string
	Subject  string
	Email    string
	Name     string
	Picture  string
	Verified bool
}

// Provider hides the OAuth2 dance for one identity provider.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	FetchUser(ctx context.Context, code string) (*SocialUser, error)
}

// Registry holds the providers that have credentials configured.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// NewRegistryFromConfig builds the registry from the enabled providers in cfg.
func NewRegistryFromConfig(cfg config.OAuthConfig) *Registry {
	var providers []Provider
	if cfg.Google.Enabled() {
		providers = append(providers, NewGoogleProvider(cfg.Google))
	}
	if cfg.Facebook.Enabled() {
		providers = append(providers, NewFacebookProvider(cfg.Facebook))
	}
	return NewRegistry(providers...)
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return p, nil
}
