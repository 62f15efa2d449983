package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"calorie-planner/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const facebookMeURL = "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)"

type facebookProvider struct {
	oauth2Config *oauth2.Config
	meURL        string
}

func NewFacebookProvider(cfg config.OAuthProviderConfig) Provider {
	return &facebookProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		meURL: facebookMeURL,
	}
}

type facebookProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (p *facebookProvider) Name() string { return ProviderFacebook }

func (p *facebookProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *facebookProvider) FetchUser(ctx context.Context, code string) (*SocialUser, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.meURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.oauth2Config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get facebook user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook graph api returned status %d", resp.StatusCode)
	}

	var profile facebookProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode facebook user info: %w", err)
	}

	return &SocialUser{
		Provider: ProviderFacebook,
		Subject:  profile.ID,
		Email:    profile.Email,
		Name:     profile.Name,
		Picture:  profile.Picture.Data.URL,
		// facebook only returns confirmed addresses
		Verified: profile.Email != "",
	}, nil
}
