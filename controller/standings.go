package controller

import (
	"context"
	"fmt"

	"github.com/Gstormsfh/citrus_league/model"
)

// GetStandings builds the ranked standings table for a league. Points for
// is each team's current roster summed up, so a team with no players shows
// 0. Records, points against and streaks come from the final matchups in
// the ledger. Teams with no results yet still get a zero row so a fresh
// league renders a full table.
func (c *controller) GetStandings(ctx context.Context, leagueID int32) ([]model.StandingsTeam, error) {
	teams, err := c.db.GetTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league teams: %w", err)
	}

	ownerIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		ownerIDs = append(ownerIDs, t.OwnerID)
	}
	owners, err := c.db.GetProfiles(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("error looking up team owners: %w", err)
	}

	rosterPoints, err := c.db.GetRosterPoints(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error summing roster points: %w", err)
	}

	rows := make(map[int32]*model.StandingsTeam, len(teams))
	for _, t := range teams {
		row := &model.StandingsTeam{
			TeamID:    t.ID,
			TeamName:  t.Name,
			LogoURL:   t.LogoURL,
			PointsFor: rosterPoints[t.ID],
		}
		// A deleted owner leaves the name blank but the row stays usable.
		if p, ok := owners[t.OwnerID]; ok {
			row.OwnerName = p.DisplayName
		}
		rows[t.ID] = row
	}

	matchups, err := c.db.GetAllResults(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading matchup results: %w", err)
	}

	for _, m := range matchups {
		if m.Status != model.MatchupFinal || m.IsBye() {
			continue
		}
		tallyResult(rows, m.TeamA, m.TeamB)
		tallyResult(rows, m.TeamB, m.TeamA)
	}

	table := make([]model.StandingsTeam, 0, len(rows))
	for _, t := range teams {
		table = append(table, *rows[t.ID])
	}
	return model.SortStandings(table), nil
}

// tallyResult folds one side of a final matchup into the team's standings
// row, updating the record, points against and the streak.
func tallyResult(rows map[int32]*model.StandingsTeam, us, them *model.TeamResult) {
	row, ok := rows[us.TeamID]
	if !ok {
		// A result for a team that has since left the league.
		return
	}

	row.PointsAgainst += them.Score

	switch {
	case us.Score > them.Score:
		row.Wins++
		if row.Streak > 0 {
			row.Streak++
		} else {
			row.Streak = 1
		}
	case us.Score < them.Score:
		row.Losses++
		if row.Streak < 0 {
			row.Streak--
		} else {
			row.Streak = -1
		}
	}
}

func (c *controller) GetDemoLeague() *model.League {
	return model.DemoLeague()
}

func (c *controller) GetDemoStandings() []model.StandingsTeam {
	return model.DemoStandings()
}

func (c *controller) GetDemoMatchups() []model.Matchup {
	return model.DemoMatchups()
}
