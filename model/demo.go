package model

// Static sample data shown to guests who aren't signed in or haven't joined
// a league yet. This is an explicit mode selected by session state, it is
// never used to paper over a backend failure.

const DemoLeagueName = "Citrus Demo League"

func DemoLeague() *League {
	return &League{
		ID:        0,
		Name:      DemoLeagueName,
		Season:    "2025-26",
		TeamCount: 4,
	}
}

// DemoStandings returns the sample table already ranked. The demo dataset
// has no matchup ledger, so points-against is approximated as 85% of
// points-for, matching the sample sheet the marketing pages were built from.
func DemoStandings() []StandingsTeam {
	teams := []StandingsTeam{
		{TeamID: -1, TeamName: "Zamboni Drivers", OwnerName: "Sam", Wins: 10, Losses: 2, PointsFor: 1200000, Streak: 4},
		{TeamID: -2, TeamName: "Puck Hogs", OwnerName: "Riley", Wins: 10, Losses: 2, PointsFor: 1100000, Streak: 1},
		{TeamID: -3, TeamName: "Five Hole Heroes", OwnerName: "Jordan", Wins: 9, Losses: 3, PointsFor: 1500000, Streak: -1},
		{TeamID: -4, TeamName: "Benders", OwnerName: "Alex", Wins: 5, Losses: 7, PointsFor: 900000, Streak: -3},
	}
	for i := range teams {
		teams[i].PointsAgainst = int32(float64(teams[i].PointsFor) * 0.85)
	}
	return SortStandings(teams)
}

func DemoMatchups() []Matchup {
	return []Matchup{
		{MatchupID: -1, Week: 12, Status: MatchupFinal,
			TeamA: &TeamResult{TeamID: -1, TeamName: "Zamboni Drivers", Score: 98500},
			TeamB: &TeamResult{TeamID: -4, TeamName: "Benders", Score: 77250}},
		{MatchupID: -2, Week: 12, Status: MatchupFinal,
			TeamA: &TeamResult{TeamID: -3, TeamName: "Five Hole Heroes", Score: 112000},
			TeamB: &TeamResult{TeamID: -2, TeamName: "Puck Hogs", Score: 115750}},
	}
}
