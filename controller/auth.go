package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"math/rand"

	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"golang.org/x/oauth2"
)

type oauthState struct {
	expiry time.Time
	token  *oauth2.Token
}

// SignInStart returns the provider URL to redirect the browser to.
func (c *controller) SignInStart() (string, error) {
	if c.auth == nil {
		return "", errors.New("auth provider is not configured")
	}

	state := generateRandomState()
	url := c.auth.OAuth.AuthCodeURL(state)

	c.mu.Lock()
	c.oauthStates[state] = &oauthState{
		expiry: time.Now().Add(5 * time.Minute),
	}
	c.mu.Unlock()

	return url, nil
}

// SignInComplete exchanges the provider's code, resolves the subject behind
// the token and upserts the matching profile. First time sign-ins get a
// fresh profile that still needs the setup page.
func (c *controller) SignInComplete(ctx context.Context, state, code string) (*model.Profile, error) {
	c.mu.Lock()
	s, ok := c.oauthStates[state]
	if ok {
		delete(c.oauthStates, state)
	}
	c.mu.Unlock()

	if !ok || time.Now().After(s.expiry) {
		return nil, errors.New("state parameter is not valid")
	}

	if c.auth == nil {
		return nil, errors.New("auth provider is not configured")
	}

	token, err := c.auth.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error exchanging code: %w", err)
	}

	info, err := c.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	p, err := c.db.GetProfile(ctx, info.Sub)
	if errors.Is(err, db.ErrProfileNotFound) {
		p = &model.Profile{
			ID:    info.Sub,
			Email: info.Email,
		}
		if err := c.db.SaveProfile(ctx, p); err != nil {
			return nil, fmt.Errorf("error creating profile: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	// Keep the stored email in sync with the provider.
	if p.Email != info.Email {
		p.Email = info.Email
		p.EmailVerified = false
		if err := c.db.SaveProfile(ctx, p); err != nil {
			return nil, fmt.Errorf("error updating profile email: %w", err)
		}
	}
	return p, nil
}

type userInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

func (c *controller) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*userInfo, error) {
	client := c.auth.OAuth.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.auth.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected userinfo status code: %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("error parsing userinfo response: %w", err)
	}
	if info.Sub == "" {
		return nil, errors.New("userinfo response is missing a subject")
	}
	return &info, nil
}

func generateRandomState() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, 15)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
