package controller

import (
	"context"
	"testing"

	"github.com/Gstormsfh/citrus_league/db/mockdb"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/stretchr/testify/mock"
)

func TestGetPlayoffBracket(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	matchups := []model.Matchup{
		{MatchupID: 1, Week: 23, PlayoffRound: 1, Status: model.MatchupFinal,
			TeamA: &model.TeamResult{TeamID: 1, Score: 100000},
			TeamB: &model.TeamResult{TeamID: 4, Score: 80000}},
		{MatchupID: 2, Week: 23, PlayoffRound: 1, Status: model.MatchupFinal,
			TeamA: &model.TeamResult{TeamID: 2, Score: 90000},
			TeamB: &model.TeamResult{TeamID: 3, Score: 95000}},
		{MatchupID: 3, Week: 24, PlayoffRound: 2, Status: model.MatchupScheduled,
			TeamA: &model.TeamResult{TeamID: 1},
			TeamB: &model.TeamResult{TeamID: 3}},
	}

	mockDB.On("GetPlayoffMatchups", mock.Anything, int32(1)).Return(matchups, nil)

	rounds, err := ctrl.GetPlayoffBracket(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error getting bracket: %v", err)
	}

	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got: %d", len(rounds))
	}
	if rounds[0].Label != "Semifinals" {
		t.Errorf("round 1 label incorrect: %s", rounds[0].Label)
	}
	if rounds[1].Label != "Citrus Cup Final" {
		t.Errorf("round 2 label incorrect: %s", rounds[1].Label)
	}
	if len(rounds[0].Matchups) != 2 || len(rounds[1].Matchups) != 1 {
		t.Errorf("matchups grouped incorrectly: %d / %d", len(rounds[0].Matchups), len(rounds[1].Matchups))
	}
}

func TestGetPlayoffBracket_empty(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	mockDB.On("GetPlayoffMatchups", mock.Anything, int32(1)).Return([]model.Matchup{}, nil)

	rounds, err := ctrl.GetPlayoffBracket(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error getting bracket: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("expected an empty bracket, got %d rounds", len(rounds))
	}
}
