package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
)

const verificationTokenTTL = 24 * time.Hour

func (c *controller) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	return c.db.GetProfile(ctx, id)
}

func (c *controller) SetupProfile(ctx context.Context, id, displayName, favoriteTeam string) (*model.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, errors.New("display name must be provided")
	}

	p, err := c.db.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	p.DisplayName = displayName
	p.FavoriteTeam = nil
	if favoriteTeam != "" {
		t := model.ParseNHLTeam(favoriteTeam)
		if t == model.TEAM_FA {
			return nil, fmt.Errorf("'%s' is not an NHL team", favoriteTeam)
		}
		p.FavoriteTeam = t
	}

	if err := c.db.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) StartEmailVerification(ctx context.Context, profileID string) (*model.VerificationToken, error) {
	p, err := c.db.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.EmailVerified {
		return nil, errors.New("email address is already verified")
	}

	expiry := c.clock.Now().UTC().Add(verificationTokenTTL)
	return c.db.CreateVerificationToken(ctx, profileID, expiry)
}

func (c *controller) ConfirmEmailVerification(ctx context.Context, token uuid.UUID) (*model.Profile, error) {
	return c.db.ConsumeVerificationToken(ctx, token)
}

// DeleteAccount removes the profile and everything attached to it. The db
// layer runs the whole cascade in one transaction, so this either fully
// succeeds or leaves the account untouched.
func (c *controller) DeleteAccount(ctx context.Context, profileID string) error {
	if err := c.db.DeleteAccount(ctx, profileID); err != nil {
		return err
	}
	log.Printf("deleted account %s", profileID)
	return nil
}
