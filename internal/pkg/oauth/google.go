package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUser is the subset of the userinfo endpoint response we consume.
type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type GoogleService interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (GoogleUser, error)
}

type googleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleServiceImpl) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *googleServiceImpl) ExchangeCode(ctx context.Context, code string) (GoogleUser, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return GoogleUser{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return GoogleUser{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleUser{}, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var gu GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return GoogleUser{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return gu, nil
}
