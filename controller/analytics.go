package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/Gstormsfh/citrus_league/model"
)

const topScorerCount = 5

// GetTeamAnalytics builds the roster breakdown for the analytics page:
// counts and point totals by position, the team's top scorers, and starter
// vs bench production for the given week.
func (c *controller) GetTeamAnalytics(ctx context.Context, teamID int32, week int) (*TeamAnalytics, error) {
	t, err := c.db.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	roster, err := c.db.GetRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error loading roster: %w", err)
	}

	a := &TeamAnalytics{
		Team:           t,
		PositionCount:  make(map[model.Position]int),
		PositionPoints: make(map[model.Position]int32),
	}

	players := make(map[string]*model.Player, len(roster))
	for _, entry := range roster {
		p, err := c.db.GetPlayer(ctx, entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("error loading rostered player %s: %w", entry.PlayerID, err)
		}
		players[p.ID] = p

		a.PositionCount[p.Position]++
		a.PositionPoints[p.Position] += p.Points
		a.TopScorers = append(a.TopScorers, *p)
	}

	slices.SortStableFunc(a.TopScorers, func(x, y model.Player) int {
		if y.Points > x.Points {
			return 1
		}
		if y.Points < x.Points {
			return -1
		}
		return 0
	})
	if len(a.TopScorers) > topScorerCount {
		a.TopScorers = a.TopScorers[:topScorerCount]
	}

	lineup, err := c.db.GetLineup(ctx, teamID, week)
	if err != nil {
		return nil, fmt.Errorf("error loading lineup: %w", err)
	}
	for _, spot := range lineup {
		p, ok := players[spot.PlayerID]
		if !ok {
			// Lineup spot for a player who has since been dropped.
			continue
		}
		if spot.IsStarter() {
			a.StarterPoints += p.Points
		} else {
			a.BenchPoints += p.Points
		}
	}

	return a, nil
}
