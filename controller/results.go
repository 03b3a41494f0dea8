package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gstormsfh/citrus_league/model"
)

// ImportResults records a batch of matchup results delivered by the scoring
// provider. Status defaults to final when the provider doesn't send one.
func (c *controller) ImportResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	if len(matchups) == 0 {
		return errors.New("no matchups to import")
	}

	if _, err := c.db.GetLeague(ctx, leagueID); err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}

	for i := range matchups {
		m := &matchups[i]
		if m.Week < 1 {
			return fmt.Errorf("matchup %d has no week", i)
		}
		if m.TeamA == nil {
			return fmt.Errorf("matchup %d is missing its home team", i)
		}
		if m.Status == "" {
			m.Status = model.MatchupFinal
		}
	}

	return c.db.SaveResults(ctx, leagueID, matchups)
}

// ImportDraft records the league's draft. Each pick also places the player
// on the drafting team's roster.
func (c *controller) ImportDraft(ctx context.Context, leagueID int32, picks []model.DraftPick) error {
	if len(picks) == 0 {
		return errors.New("no draft picks to import")
	}

	if _, err := c.db.GetLeague(ctx, leagueID); err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}

	for i := range picks {
		p := &picks[i]
		if p.TeamID == 0 || p.PlayerID == "" {
			return fmt.Errorf("pick %d is missing its team or player", i)
		}
		p.LeagueID = leagueID
		if err := c.db.SaveDraftPick(ctx, p); err != nil {
			return fmt.Errorf("error saving pick %d.%d: %w", p.Round, p.Pick, err)
		}
	}
	return nil
}

// GetScoreboard loads one week of results. A week below 1 means the latest
// week that has a final result, or week 1 for a league without any.
func (c *controller) GetScoreboard(ctx context.Context, leagueID int32, week int) (*Scoreboard, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	if week < 1 {
		finals, err := c.db.GetAllResults(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("error finding the latest week: %w", err)
		}
		week = 1
		for _, m := range finals {
			if m.Week > week {
				week = m.Week
			}
		}
	}

	matchups, err := c.db.GetResults(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("error loading week %d results: %w", week, err)
	}

	return &Scoreboard{League: l, Week: week, Matchups: matchups}, nil
}

func (c *controller) GetDraftRecap(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	return c.db.GetDraftPicks(ctx, leagueID)
}
