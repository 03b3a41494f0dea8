package model

import "time"

// How a player ended up on a roster.
const (
	AcquiredDraft     = "draft"
	AcquiredFreeAgent = "free_agent"
	AcquiredWaiver    = "waiver"
)

// RosterEntry records current ownership of a player by a fantasy team. A
// player appears at most once per league across all rosters.
type RosterEntry struct {
	TeamID   int32
	PlayerID string
	Acquired string
	Added    time.Time
}

// LineupSpot is one slot in a team's weekly lineup. Slot is a position
// code (C, LW, RW, D, G) for starters or "BN" for the bench.
type LineupSpot struct {
	TeamID   int32
	PlayerID string
	Slot     string
	Week     int
}

func (s *LineupSpot) IsStarter() bool {
	return s.Slot != "BN"
}
