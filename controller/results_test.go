package controller

import (
	"context"
	"testing"

	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/db/mockdb"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/stretchr/testify/mock"
)

func TestImportResults(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	matchups := []model.Matchup{
		{Week: 1,
			TeamA: &model.TeamResult{TeamID: 1, Score: 104500},
			TeamB: &model.TeamResult{TeamID: 2, Score: 98000}},
		{Week: 1, Status: model.MatchupLive,
			TeamA: &model.TeamResult{TeamID: 3, Score: 12000}},
	}

	mockDB.On("GetLeague", mock.Anything, int32(10)).Return(&model.League{ID: 10}, nil)
	mockDB.On("SaveResults", mock.Anything, int32(10), mock.MatchedBy(func(ms []model.Matchup) bool {
		// A missing status defaults to final, a given one is kept.
		return len(ms) == 2 && ms[0].Status == model.MatchupFinal && ms[1].Status == model.MatchupLive
	})).Return(nil)

	if err := ctrl.ImportResults(context.Background(), 10, matchups); err != nil {
		t.Fatalf("unexpected error importing results: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestImportResults_invalid(t *testing.T) {
	tests := map[string]struct {
		matchups []model.Matchup
	}{
		"empty batch": {matchups: []model.Matchup{}},
		"missing week": {matchups: []model.Matchup{
			{TeamA: &model.TeamResult{TeamID: 1, Score: 100000}},
		}},
		"missing home team": {matchups: []model.Matchup{
			{Week: 1, TeamB: &model.TeamResult{TeamID: 2, Score: 100000}},
		}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			ctrl := controllerWithMocks(t, mockDB, nil)
			mockDB.On("GetLeague", mock.Anything, int32(10)).Return(&model.League{ID: 10}, nil)

			if err := ctrl.ImportResults(context.Background(), 10, tc.matchups); err == nil {
				t.Error("expected an error")
			}
			mockDB.AssertNotCalled(t, "SaveResults", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestImportResults_unknownLeague(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	mockDB.On("GetLeague", mock.Anything, int32(999)).Return(nil, db.ErrLeagueNotFound)

	matchups := []model.Matchup{
		{Week: 1, TeamA: &model.TeamResult{TeamID: 1, Score: 100000}},
	}
	if err := ctrl.ImportResults(context.Background(), 999, matchups); err == nil {
		t.Error("expected an error for an unknown league")
	}
	mockDB.AssertNotCalled(t, "SaveResults", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportDraft(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	picks := []model.DraftPick{
		{TeamID: 1, PlayerID: "8478402", Round: 1, Pick: 1},
		{TeamID: 2, PlayerID: "8480069", Round: 1, Pick: 2},
	}

	mockDB.On("GetLeague", mock.Anything, int32(10)).Return(&model.League{ID: 10}, nil)
	mockDB.On("SaveDraftPick", mock.Anything, mock.MatchedBy(func(p *model.DraftPick) bool {
		return p.LeagueID == 10
	})).Return(nil).Times(2)

	if err := ctrl.ImportDraft(context.Background(), 10, picks); err != nil {
		t.Fatalf("unexpected error importing draft: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestImportDraft_invalidPick(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	mockDB.On("GetLeague", mock.Anything, int32(10)).Return(&model.League{ID: 10}, nil)

	picks := []model.DraftPick{{TeamID: 1, Round: 1, Pick: 1}}
	if err := ctrl.ImportDraft(context.Background(), 10, picks); err == nil {
		t.Error("expected an error for a pick without a player")
	}
	mockDB.AssertNotCalled(t, "SaveDraftPick", mock.Anything, mock.Anything)
}

func TestGetScoreboard(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	l := &model.League{ID: 10, Name: "Citrus League"}
	matchups := []model.Matchup{
		{Week: 2, Status: model.MatchupFinal,
			TeamA: &model.TeamResult{TeamID: 1, TeamName: "Zamboni Drivers", Score: 104500},
			TeamB: &model.TeamResult{TeamID: 2, TeamName: "Puck Hogs", Score: 98000}},
	}

	mockDB.On("GetLeague", mock.Anything, int32(10)).Return(l, nil)
	mockDB.On("GetResults", mock.Anything, int32(10), 2).Return(matchups, nil)

	board, err := ctrl.GetScoreboard(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("unexpected error getting scoreboard: %v", err)
	}

	if board.Week != 2 {
		t.Errorf("unexpected week: %d", board.Week)
	}
	if len(board.Matchups) != 1 {
		t.Fatalf("expected 1 matchup, got: %d", len(board.Matchups))
	}

	mockDB.AssertNotCalled(t, "GetAllResults", mock.Anything, mock.Anything)
}

func TestGetScoreboard_latestWeek(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	l := &model.League{ID: 10, Name: "Citrus League"}
	finals := []model.Matchup{
		{Week: 1, Status: model.MatchupFinal, TeamA: &model.TeamResult{TeamID: 1, Score: 100000}},
		{Week: 3, Status: model.MatchupFinal, TeamA: &model.TeamResult{TeamID: 2, Score: 90000}},
	}

	mockDB.On("GetLeague", mock.Anything, int32(10)).Return(l, nil)
	mockDB.On("GetAllResults", mock.Anything, int32(10)).Return(finals, nil)
	mockDB.On("GetResults", mock.Anything, int32(10), 3).Return(finals[1:], nil)

	board, err := ctrl.GetScoreboard(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error getting scoreboard: %v", err)
	}
	if board.Week != 3 {
		t.Errorf("expected the latest final week, got: %d", board.Week)
	}
}
