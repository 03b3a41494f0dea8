package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/Gstormsfh/citrus_league/model"
)

// GetPlayoffBracket groups the league's playoff matchups into labeled
// rounds. Returns an empty slice when the playoffs haven't started.
func (c *controller) GetPlayoffBracket(ctx context.Context, leagueID int32) ([]model.PlayoffRound, error) {
	matchups, err := c.db.GetPlayoffMatchups(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading playoff matchups: %w", err)
	}

	byRound := make(map[int][]model.Matchup)
	for _, m := range matchups {
		byRound[m.PlayoffRound] = append(byRound[m.PlayoffRound], m)
	}

	roundNums := make([]int, 0, len(byRound))
	for r := range byRound {
		roundNums = append(roundNums, r)
	}
	slices.Sort(roundNums)

	rounds := make([]model.PlayoffRound, 0, len(roundNums))
	for _, r := range roundNums {
		rounds = append(rounds, model.PlayoffRound{
			Round:    r,
			Label:    model.RoundLabel(r, len(roundNums)),
			Matchups: byRound[r],
		})
	}
	return rounds, nil
}
