package model

import (
	"fmt"
	"slices"
)

// StandingsTeam is the view projection for one row of the standings table.
// It combines the fantasy team, its record from the matchup ledger, and the
// points totals of its drafted players.
type StandingsTeam struct {
	TeamID        int32
	TeamName      string
	OwnerName     string
	LogoURL       string
	Wins          int
	Losses        int
	PointsFor     int32 // points * 1000
	PointsAgainst int32 // points * 1000
	// Streak is positive for a win streak and negative for a losing
	// streak, e.g. 3 renders as "W3" and -2 as "L2".
	Streak int
}

func (s *StandingsTeam) FormattedRecord() string {
	return fmt.Sprintf("%d-%d", s.Wins, s.Losses)
}

func (s *StandingsTeam) FormattedStreak() string {
	if s.Streak > 0 {
		return fmt.Sprintf("W%d", s.Streak)
	}
	if s.Streak < 0 {
		return fmt.Sprintf("L%d", -s.Streak)
	}
	return "-"
}

func (s *StandingsTeam) FormattedPointsFor() string {
	return FormatPoints(s.PointsFor)
}

func (s *StandingsTeam) FormattedPointsAgainst() string {
	return FormatPoints(s.PointsAgainst)
}

// SortStandings returns a new slice ranked by wins descending with points-for
// as the tie break. The sort is stable so that teams tied on both keys keep
// the order they were given in, and the input slice is never modified.
func SortStandings(teams []StandingsTeam) []StandingsTeam {
	ranked := slices.Clone(teams)
	slices.SortStableFunc(ranked, func(a, b StandingsTeam) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.PointsFor != b.PointsFor {
			if b.PointsFor > a.PointsFor {
				return 1
			}
			return -1
		}
		return 0
	})
	return ranked
}
