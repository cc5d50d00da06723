package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/repository"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleAuthenticator handles the OAuth code flow against Google and maps
// the resulting profile to a local user record.
type GoogleAuthenticator struct {
	oauth  *oauth2.Config
	users  repository.UserRepository
	logger *slog.Logger
}

func NewGoogleAuthenticator(cfg *common.AuthConfig, users repository.UserRepository, logger *slog.Logger) *GoogleAuthenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoogleAuthenticator{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		users:  users,
		logger: logger,
	}
}

// LoginURL returns the Google consent page URL for this state token.
func (g *GoogleAuthenticator) LoginURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, fetches the profile, and
// upserts the user keyed on the stable Google subject ID.
func (g *GoogleAuthenticator) HandleCallback(ctx context.Context, code string) (*entity.User, error) {
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		g.logger.Error("auth.google.exchange_error", "error", err)
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp, err := g.oauth.Client(ctx, tok).Get(userInfoURL)
	if err != nil {
		g.logger.Error("auth.google.userinfo_error", "error", err)
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var profile struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo missing subject id")
	}

	user, err := g.users.UpsertByGoogleID(ctx, &entity.User{
		GoogleID:       profile.ID,
		Email:          profile.Email,
		DisplayName:    profile.Name,
		ProfilePicture: profile.Picture,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("auth.google.login", "user_id", user.ID, "email", user.Email)
	return user, nil
}
