package controller

import (
	"context"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/db/mockdb"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestSubmitClaim_freeAgent(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	p := &model.Player{ID: "8481559", FirstName: "Jack", LastName: "Hughes"}

	mockDB.On("GetPlayer", mock.Anything, p.ID).Return(p, nil)
	mockDB.On("GetOwnedPlayerIDs", mock.Anything, int32(1)).Return(map[string]bool{"other": true}, nil)
	mockDB.On("ListPendingClaims", mock.Anything, int32(1)).Return([]model.WaiverClaim{}, nil)
	mockDB.On("AddFreeAgent", mock.Anything, int32(1), int32(7), p.ID, "").Return(nil)

	res, err := ctrl.SubmitClaim(context.Background(), 1, 7, p.ID, "")
	if err != nil {
		t.Fatalf("unexpected error submitting claim: %v", err)
	}
	if res.Kind != model.AcquisitionImmediate {
		t.Errorf("expected an immediate add, got: %s", res.Kind)
	}
	if res.Player != p {
		t.Error("result player is not the requested player")
	}

	mockDB.AssertExpectations(t)
	mockDB.AssertNotCalled(t, "AddClaim", mock.Anything, mock.Anything)
}

func TestSubmitClaim_contested(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	p := &model.Player{ID: "8481559", FirstName: "Jack", LastName: "Hughes"}
	pending := []model.WaiverClaim{
		{ID: uuid.New(), LeagueID: 1, TeamID: 9, PlayerID: p.ID, Status: model.ClaimPending},
	}
	priorities := []model.WaiverPriority{
		{TeamID: 9, Rank: 1},
		{TeamID: 7, Rank: 2},
	}

	mockDB.On("GetPlayer", mock.Anything, p.ID).Return(p, nil)
	mockDB.On("GetOwnedPlayerIDs", mock.Anything, int32(1)).Return(map[string]bool{}, nil)
	mockDB.On("ListPendingClaims", mock.Anything, int32(1)).Return(pending, nil)
	mockDB.On("GetWaiverPriorities", mock.Anything, int32(1)).Return(priorities, nil)
	mockDB.On("AddClaim", mock.Anything, mock.MatchedBy(func(c *model.WaiverClaim) bool {
		return c.TeamID == 7 && c.PlayerID == p.ID && c.Priority == 2
	})).Return(nil)

	res, err := ctrl.SubmitClaim(context.Background(), 1, 7, p.ID, "")
	if err != nil {
		t.Fatalf("unexpected error submitting claim: %v", err)
	}
	if res.Kind != model.AcquisitionClaim {
		t.Errorf("expected a queued claim, got: %s", res.Kind)
	}

	mockDB.AssertExpectations(t)
	mockDB.AssertNotCalled(t, "AddFreeAgent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitClaim_playerAlreadyOwned(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	p := &model.Player{ID: "8478402", FirstName: "Connor", LastName: "McDavid"}

	mockDB.On("GetPlayer", mock.Anything, p.ID).Return(p, nil)
	mockDB.On("GetOwnedPlayerIDs", mock.Anything, int32(1)).Return(map[string]bool{p.ID: true}, nil)

	_, err := ctrl.SubmitClaim(context.Background(), 1, 7, p.ID, "")
	if err != db.ErrPlayerOwned {
		t.Errorf("expected ErrPlayerOwned, got: %v", err)
	}
}

func TestSubmitClaim_duplicatePending(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	p := &model.Player{ID: "8481559", FirstName: "Jack", LastName: "Hughes"}
	pending := []model.WaiverClaim{
		{ID: uuid.New(), LeagueID: 1, TeamID: 7, PlayerID: p.ID, Status: model.ClaimPending},
	}

	mockDB.On("GetPlayer", mock.Anything, p.ID).Return(p, nil)
	mockDB.On("GetOwnedPlayerIDs", mock.Anything, int32(1)).Return(map[string]bool{}, nil)
	mockDB.On("ListPendingClaims", mock.Anything, int32(1)).Return(pending, nil)

	_, err := ctrl.SubmitClaim(context.Background(), 1, 7, p.ID, "")
	if err == nil {
		t.Fatal("expected an error but did not get one")
	}
}

// Two teams claim the same player. The higher priority team wins, the other
// claim gets rejected, and the winner drops to the back of the order for any
// further claims in the same run.
func TestProcessWaiverClaims(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	first := model.WaiverClaim{ID: uuid.New(), LeagueID: 1, TeamID: 7, PlayerID: "p1", Status: model.ClaimPending, Created: time.Now().Add(-2 * time.Hour)}
	second := model.WaiverClaim{ID: uuid.New(), LeagueID: 1, TeamID: 9, PlayerID: "p1", Status: model.ClaimPending, Created: time.Now().Add(-1 * time.Hour)}
	third := model.WaiverClaim{ID: uuid.New(), LeagueID: 1, TeamID: 9, PlayerID: "p2", Status: model.ClaimPending, Created: time.Now()}

	priorities := []model.WaiverPriority{
		{TeamID: 9, Rank: 1},
		{TeamID: 7, Rank: 2},
	}

	mockDB.On("ListPendingClaims", mock.Anything, int32(1)).Return([]model.WaiverClaim{first, second, third}, nil)
	mockDB.On("GetWaiverPriorities", mock.Anything, int32(1)).Return(priorities, nil)
	mockDB.On("GetOwnedPlayerIDs", mock.Anything, int32(1)).Return(map[string]bool{}, nil)

	// Team 9 holds priority 1 so its p1 claim is served first.
	mockDB.On("ResolveClaim", mock.Anything, mock.MatchedBy(func(c *model.WaiverClaim) bool {
		return c.ID == second.ID
	}), model.ClaimProcessed).Return(nil)
	// Team 7's claim for the same player loses.
	mockDB.On("ResolveClaim", mock.Anything, mock.MatchedBy(func(c *model.WaiverClaim) bool {
		return c.ID == first.ID
	}), model.ClaimRejected).Return(nil)
	// Team 9 is now last in the order, but has the only remaining claim.
	mockDB.On("ResolveClaim", mock.Anything, mock.MatchedBy(func(c *model.WaiverClaim) bool {
		return c.ID == third.ID
	}), model.ClaimProcessed).Return(nil)

	if err := ctrl.ProcessWaiverClaims(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error processing claims: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestProcessWaiverClaims_noPending(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	mockDB.On("ListPendingClaims", mock.Anything, int32(1)).Return([]model.WaiverClaim{}, nil)

	if err := ctrl.ProcessWaiverClaims(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertNotCalled(t, "GetWaiverPriorities", mock.Anything, mock.Anything)
	mockDB.AssertNotCalled(t, "ResolveClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetWaiverStatus_repairsBrokenPriorities(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	l := &model.League{ID: 1, Name: "Citrus League", TeamCount: 3}
	teams := []model.Team{{ID: 7}, {ID: 8}, {ID: 9}}

	// Team 8 is missing a priority row and the ranks have a gap.
	broken := []model.WaiverPriority{
		{TeamID: 9, Rank: 1},
		{TeamID: 7, Rank: 3},
	}
	repaired := []model.WaiverPriority{
		{TeamID: 9, Rank: 1},
		{TeamID: 7, Rank: 2},
		{TeamID: 8, Rank: 3},
	}

	mockDB.On("GetLeague", mock.Anything, int32(1)).Return(l, nil)
	mockDB.On("ListClaims", mock.Anything, int32(7)).Return([]model.WaiverClaim{}, nil)
	mockDB.On("GetTeams", mock.Anything, int32(1)).Return(teams, nil)
	mockDB.On("GetWaiverPriorities", mock.Anything, int32(1)).Return(broken, nil).Once()
	mockDB.On("RepairWaiverPriorities", mock.Anything, int32(1)).Return(nil)
	mockDB.On("GetWaiverPriorities", mock.Anything, int32(1)).Return(repaired, nil)

	status, err := ctrl.GetWaiverStatus(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error getting waiver status: %v", err)
	}
	if status.Rank != 2 {
		t.Errorf("expected rank 2 after repair, got: %d", status.Rank)
	}
	if status.TeamCount != 3 {
		t.Errorf("expected team count 3, got: %d", status.TeamCount)
	}

	mockDB.AssertExpectations(t)
}

func TestGetWaiverStatus_healthyPrioritiesNotRepaired(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl := controllerWithMocks(t, mockDB, nil)

	l := &model.League{ID: 1, Name: "Citrus League", TeamCount: 2}
	teams := []model.Team{{ID: 7}, {ID: 9}}
	priorities := []model.WaiverPriority{
		{TeamID: 7, Rank: 1},
		{TeamID: 9, Rank: 2},
	}

	mockDB.On("GetLeague", mock.Anything, int32(1)).Return(l, nil)
	mockDB.On("ListClaims", mock.Anything, int32(9)).Return([]model.WaiverClaim{}, nil)
	mockDB.On("GetTeams", mock.Anything, int32(1)).Return(teams, nil)
	mockDB.On("GetWaiverPriorities", mock.Anything, int32(1)).Return(priorities, nil)

	status, err := ctrl.GetWaiverStatus(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("unexpected error getting waiver status: %v", err)
	}
	if status.Rank != 2 {
		t.Errorf("expected rank 2, got: %d", status.Rank)
	}

	mockDB.AssertNotCalled(t, "RepairWaiverPriorities", mock.Anything, mock.Anything)
}

func TestNextWaiverRun(t *testing.T) {
	l := &model.League{WaiverHour: 3, WaiverTimezone: "UTC"}

	tests := map[string]struct {
		now  time.Time
		want time.Time
	}{
		"before the hour": {
			now:  time.Date(2026, 1, 10, 1, 30, 0, 0, time.UTC),
			want: time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC),
		},
		"after the hour": {
			now:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 11, 3, 0, 0, 0, time.UTC),
		},
		"exactly on the hour": {
			now:  time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 11, 3, 0, 0, 0, time.UTC),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := nextWaiverRun(l, tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("wanted %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPrioritiesValid(t *testing.T) {
	teams := []model.Team{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := map[string]struct {
		priorities []model.WaiverPriority
		want       bool
	}{
		"valid": {
			priorities: []model.WaiverPriority{{TeamID: 2, Rank: 1}, {TeamID: 3, Rank: 2}, {TeamID: 1, Rank: 3}},
			want:       true,
		},
		"missing team": {
			priorities: []model.WaiverPriority{{TeamID: 2, Rank: 1}, {TeamID: 3, Rank: 2}},
			want:       false,
		},
		"gap in ranks": {
			priorities: []model.WaiverPriority{{TeamID: 2, Rank: 1}, {TeamID: 3, Rank: 2}, {TeamID: 1, Rank: 4}},
			want:       false,
		},
		"unknown team ranked": {
			priorities: []model.WaiverPriority{{TeamID: 2, Rank: 1}, {TeamID: 3, Rank: 2}, {TeamID: 99, Rank: 3}},
			want:       false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := prioritiesValid(tc.priorities, teams); got != tc.want {
				t.Errorf("wanted %t, got %t", tc.want, got)
			}
		})
	}
}
