package model

import (
	"fmt"
	"time"
)

type Player struct {
	ID          string
	FirstName   string
	LastName    string
	Position    Position
	Team        *NHLTeam
	Jersey      int
	Shoots      string // L or R, empty for goalies without data
	BirthDate   time.Time
	// Season fantasy totals. Points are stored as points * 1000 so that
	// fractional scoring settings don't lose precision.
	Points      int32
	GamesPlayed int
	Active      bool
	Created     time.Time
	Updated     time.Time
	Changes     []Change
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

func (p *Player) FormattedPoints() string {
	return FormatPoints(p.Points)
}

func (p *Player) FormattedBirthDate() string {
	if p.BirthDate.IsZero() {
		return "unknown"
	}
	return p.BirthDate.Format(time.DateOnly)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}

// FormatPoints renders a milli-point total like 123450 as "123.45".
func FormatPoints(points int32) string {
	whole := points / 1000
	frac := (points % 1000) / 10
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%02d", whole, frac)
}

// A Change tracks a single property change on a player between two
// syncs from the stats provider.
type Change struct {
	Time         time.Time
	PropertyName string
	OldValue     string
	NewValue     string
}
