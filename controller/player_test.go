package controller

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus_league/db/mockdb"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/Gstormsfh/citrus_league/nhl/mocknhl"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

func TestGetPositionFromQuery(t *testing.T) {
	tests := map[string]struct {
		input     string
		wantQuery string
		wantPos   model.Position
	}{
		"position at end":    {input: "Connor McDavid pos:C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"upper case POS":     {input: "Connor McDavid POS:C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"position at start":  {input: "pos:C Connor McDavid", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"lower case pos":     {input: "David Pastrnak pos:rw", wantQuery: "David Pastrnak", wantPos: model.POS_RW},
		"position only":      {input: "pos:G", wantQuery: "", wantPos: model.POS_G},
		"no position":        {input: "Cale Makar", wantQuery: "Cale Makar", wantPos: model.POS_UNKNOWN},
		"unknown position":   {input: "Quinn Hughes pos:QB", wantQuery: "Quinn Hughes", wantPos: model.POS_UNKNOWN},
		"write out position": {input: "Connor McDavid position:C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"space before :":     {input: "Connor McDavid pos :C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"space after :":      {input: "Connor McDavid pos: C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
		"spaces around :":    {input: "Connor McDavid pos : C", wantQuery: "Connor McDavid", wantPos: model.POS_C},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			q, pos := getPositionFromQuery(tc.input)
			if tc.wantQuery != q {
				t.Errorf("query incorrect, wanted: '%s', got: '%s'", tc.wantQuery, q)
			}
			if tc.wantPos != pos {
				t.Errorf("position incorrect, wanted: '%s', got: '%s'", tc.wantPos, pos)
			}
		})
	}
}

func TestGetTeamFromQuery(t *testing.T) {
	tests := map[string]struct {
		input     string
		wantQuery string
		wantTeam  *model.NHLTeam
	}{
		"team at end":     {input: "David Pastrnak team:BOS", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"team at start":   {input: "team:BOS David Pastrnak", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"uppercase TEAM":  {input: "TEAM:BOS David Pastrnak", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"mascot":          {input: "team:bruins David Pastrnak", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"city":            {input: "David Pastrnak team:Boston", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"space before :":  {input: "David Pastrnak team :BOS", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"space after :":   {input: "David Pastrnak team: BOS", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"spaces around :": {input: "David Pastrnak team : BOS", wantQuery: "David Pastrnak", wantTeam: model.TEAM_BOS},
		"no team":         {input: "Jack Hughes", wantQuery: "Jack Hughes", wantTeam: nil},
		"bad team":        {input: "Jack Hughes team:puyallup", wantQuery: "Jack Hughes", wantTeam: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			q, team := getTeamFromQuery(tc.input)
			if tc.wantQuery != q {
				t.Errorf("query incorrect, wanted: '%s', got: '%s'", tc.wantQuery, q)
			}
			if tc.wantTeam != team {
				t.Errorf("team incorrect, wanted: '%s', got: '%s'", tc.wantTeam, team)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	mockResults := []model.Player{
		{ID: "1", FirstName: "Player1", LastName: "Last1"},
		{ID: "2", FirstName: "Player2", LastName: "Last2"},
	}

	tests := map[string]struct {
		q   string
		res []model.Player
		err error
		// The expected arguments to the db call
		exQ string
		exP model.Position
		exT *model.NHLTeam
	}{
		"positive plain":     {q: "Connor McDavid", res: mockResults, exQ: "Connor McDavid", exP: model.POS_UNKNOWN, exT: nil},
		"positive both":      {q: "David Pastrnak team:BOS pos:RW", res: mockResults, exQ: "David Pastrnak", exP: model.POS_RW, exT: model.TEAM_BOS},
		"positive just team": {q: "Jack Hughes team:devils", res: mockResults, exQ: "Jack Hughes", exP: model.POS_UNKNOWN, exT: model.TEAM_NJD},
		"positive just pos":  {q: "Igor Shesterkin pos:G", res: mockResults, exQ: "Igor Shesterkin", exP: model.POS_G, exT: nil},
		"empty":              {q: "", exQ: "", res: nil, err: fmt.Errorf("error not a valid query: ''"), exP: model.POS_UNKNOWN},
		"db error":           {q: "Cale Makar", res: nil, err: errors.New("db error"), exQ: "Cale Makar", exP: model.POS_UNKNOWN, exT: nil},
	}

	for name, tc := range tests {
		mockDB := &mockdb.DB{}
		ctrl := controllerWithMocks(t, mockDB, &mocknhl.Client{})

		t.Run(name, func(t *testing.T) {
			if tc.exQ != "" || tc.exP != model.POS_UNKNOWN || tc.exT != nil {
				mockDB.On("Search", mock.Anything, tc.exQ, tc.exP, tc.exT).Return(tc.res, tc.err)
			}

			res, err := ctrl.Search(context.Background(), tc.q)
			if !reflect.DeepEqual(res, tc.res) {
				t.Errorf("result was not the expected value")
			}
			if !errorsEqual(err, tc.err) {
				t.Errorf("unexpected err value, wanted: '%v', got: '%v'", tc.err, err)
			}

			mockDB.AssertExpectations(t)
		})
	}
}

func TestUpdatePlayers_success(t *testing.T) {
	mockNHL := &mocknhl.Client{}
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, mockNHL)

	players := []model.Player{
		{ID: "1", FirstName: "Connor", LastName: "McDavid"},
		{ID: "2", FirstName: "Cale", LastName: "Makar"},
	}

	mockNHL.On("LoadPlayers").Return(players, nil)
	mockDB.On("SavePlayer", mock.Anything, &players[0]).Return(nil)
	mockDB.On("SavePlayer", mock.Anything, &players[1]).Return(nil)

	if err := ctrl.UpdatePlayers(context.Background()); err != nil {
		t.Errorf("unexpected error updating players: %v", err)
	}

	mockNHL.AssertExpectations(t)
	mockDB.AssertExpectations(t)
}

func TestUpdatePlayers_saveError(t *testing.T) {
	mockNHL := &mocknhl.Client{}
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, mockNHL)

	players := []model.Player{
		{ID: "1", FirstName: "Connor", LastName: "McDavid"},
	}

	mockNHL.On("LoadPlayers").Return(players, nil)
	mockDB.On("SavePlayer", mock.Anything, &players[0]).Return(errors.New("db gone"))

	err := ctrl.UpdatePlayers(context.Background())
	if err == nil {
		t.Fatal("expected an error but did not get one")
	}

	mockNHL.AssertExpectations(t)
	mockDB.AssertExpectations(t)
}

func TestRunPeriodicPlayerUpdates(t *testing.T) {
	mockNHL := &mocknhl.Client{}
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, mockNHL)

	mockNHL.On("LoadPlayers").Return([]model.Player{}, nil)

	shutdown := make(chan bool)
	go func() {
		time.Sleep(120 * time.Millisecond)
		close(shutdown)
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	ctrl.RunPeriodicPlayerUpdates(50*time.Millisecond, shutdown, &wg)
	wg.Wait()

	mockNHL.AssertExpectations(t)
}

func controllerWithMocks(t *testing.T, mockDB *mockdb.DB, mockNHL *mocknhl.Client) C {
	t.Helper()

	ctrl, err := New(clock.New(), mockDB, mockNHL, nil, nil)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}
