package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID            string // subject id from the auth provider
	Email         string
	DisplayName   string
	FavoriteTeam  *NHLTeam
	EmailVerified bool
	Created       time.Time
	Updated       time.Time
}

// VerificationToken is a one-time token mailed to a profile to confirm
// ownership of the address. Tokens expire and can only be consumed once.
type VerificationToken struct {
	Token     uuid.UUID
	ProfileID string
	Expiry    time.Time
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.Expiry)
}
