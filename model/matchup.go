package model

import "fmt"

type TeamResult struct {
	TeamID   int32
	TeamName string
	// Score is stored as points * 1000, same as player points.
	Score int32
}

type MatchupStatus string

const (
	MatchupScheduled MatchupStatus = "scheduled"
	MatchupLive      MatchupStatus = "live"
	MatchupFinal     MatchupStatus = "final"
)

type Matchup struct {
	MatchupID int32
	Week      int
	TeamA     *TeamResult
	TeamB     *TeamResult // nil for a bye
	Status    MatchupStatus
	// Playoff round this matchup belongs to, 0 for the regular season.
	PlayoffRound int
}

func (m *Matchup) IsBye() bool {
	return m.TeamB == nil
}

// Winner returns the winning side of a final matchup, or nil for a
// tie, a bye, or a matchup that hasn't finished.
func (m *Matchup) Winner() *TeamResult {
	if m.Status != MatchupFinal || m.TeamB == nil {
		return nil
	}
	if m.TeamA.Score > m.TeamB.Score {
		return m.TeamA
	}
	if m.TeamB.Score > m.TeamA.Score {
		return m.TeamB
	}
	return nil
}

type PlayoffRound struct {
	Round    int
	Label    string
	Matchups []Matchup
}

// RoundLabel names a playoff round given the total number of rounds in the
// bracket. The last round is always the final.
func RoundLabel(round, totalRounds int) string {
	remaining := totalRounds - round
	switch remaining {
	case 0:
		return "Citrus Cup Final"
	case 1:
		return "Semifinals"
	case 2:
		return "Quarterfinals"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}
