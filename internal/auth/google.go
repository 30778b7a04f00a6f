package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the identity resolved from the OAuth provider.
type Profile struct {
	Email string
	Name  string
}

// GoogleVerifier performs the Google OAuth code flow: it produces the
// consent URL and exchanges the callback code for a user profile in a
// single synchronous call.
type GoogleVerifier struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewGoogleVerifier creates a verifier for the given OAuth client.
func NewGoogleVerifier(clientID, clientSecret, callbackURL string) *GoogleVerifier {
	return &GoogleVerifier{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

// AuthCodeURL returns the provider consent URL carrying the given
// anti-forgery state.
func (v *GoogleVerifier) AuthCodeURL(state string) string {
	return v.config.AuthCodeURL(state)
}

// Exchange trades the callback authorization code for the Google
// profile of the user who granted consent.
func (v *GoogleVerifier) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := v.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	resp, err := v.config.Client(ctx, token).Get(v.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info struct {
		Email      string `json:"email"`
		Name       string `json:"name"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if info.Email == "" {
		return nil, errors.New("no email found in Google profile")
	}
	name := info.Name
	if name == "" {
		name = strings.TrimSpace(info.GivenName + " " + info.FamilyName)
	}
	if name == "" {
		return nil, errors.New("incomplete name in Google profile")
	}

	return &Profile{Email: info.Email, Name: name}, nil
}
