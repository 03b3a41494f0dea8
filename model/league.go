package model

import "time"

type League struct {
	ID        int32
	Name      string
	Season    string // e.g. "2025-26"
	TeamCount int
	Archived  bool
	// Waiver settings. Claims are resolved once a day at WaiverHour in the
	// league's timezone. The zero values fall back to the defaults below.
	WaiverHour     int
	WaiverTimezone string
	Teams          []Team
	// Filled in for the league page's draft recap, empty elsewhere.
	DraftPicks []DraftPick
}

const (
	DefaultWaiverHour     = 3 // 3:00 AM
	DefaultWaiverTimezone = "America/New_York"
)

// WaiverLocation resolves the league's waiver timezone, falling back to the
// default if the configured name doesn't load.
func (l *League) WaiverLocation() *time.Location {
	tz := l.WaiverTimezone
	if tz == "" {
		tz = DefaultWaiverTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l *League) WaiverProcessingHour() int {
	if l.WaiverHour <= 0 || l.WaiverHour > 23 {
		return DefaultWaiverHour
	}
	return l.WaiverHour
}

type Team struct {
	ID        int32
	LeagueID  int32
	OwnerID   string // profile id of the GM
	Name      string
	LogoURL   string
	CreatedAt time.Time
}

type DraftPick struct {
	LeagueID int32
	TeamID   int32
	PlayerID string
	Round    int
	Pick     int
	// Joined in on reads for display.
	TeamName   string
	PlayerName string
}
