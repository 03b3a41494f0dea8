package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimProcessed ClaimStatus = "processed"
	ClaimRejected  ClaimStatus = "rejected"
	ClaimCancelled ClaimStatus = "cancelled"
)

func ParseClaimStatus(s string) ClaimStatus {
	switch strings.ToLower(s) {
	case "pending":
		return ClaimPending
	case "processed":
		return ClaimProcessed
	case "rejected":
		return ClaimRejected
	case "cancelled":
		return ClaimCancelled
	default:
		return ""
	}
}

type WaiverClaim struct {
	ID           uuid.UUID
	LeagueID     int32
	TeamID       int32
	PlayerID     string
	DropPlayerID string // optional, empty when no corresponding drop
	// Priority the team held when the claim was submitted. The processing
	// run re-reads the live priority, this is only for display.
	Priority  int
	Status    ClaimStatus
	Created   time.Time
	Processed time.Time
	// Denormalized for display, not persisted on the claim row.
	PlayerName     string
	DropPlayerName string
}

type WaiverPriority struct {
	TeamID int32
	Rank   int
}

// PriorityNotSet marks a rank the UI should render as "not set". Ranks are
// contiguous 1..N where N is the league team count; anything else means the
// priority row is missing or stale and needs a repair call.
const PriorityNotSet = 0

// AcquisitionKind says what actually happened when a team tried to add a
// player: free agents are added immediately, everyone else goes through
// waivers.
type AcquisitionKind string

const (
	AcquisitionImmediate AcquisitionKind = "immediate"
	AcquisitionClaim     AcquisitionKind = "claim"
)

type AcquisitionResult struct {
	Kind    AcquisitionKind
	ClaimID uuid.UUID // set only when Kind == AcquisitionClaim
	Player  *Player
}
