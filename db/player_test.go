package db

import (
	"context"
	"errors"
	"testing"

	"github.com/Gstormsfh/citrus_league/model"
)

func TestPlayer_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	p := getPlayer()

	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	res, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retreiving player: %v", err)

	// Make sure that the after saving and retreiving the player, all the fields
	// are the same.
	assertEquals(t, "ID", p.ID, res.ID)
	assertEquals(t, "FirstName", p.FirstName, res.FirstName)
	assertEquals(t, "LastName", p.LastName, res.LastName)
	assertEquals(t, "Position", p.Position, res.Position)
	assertEquals(t, "Team", p.Team, res.Team)
	assertEquals(t, "Jersey", p.Jersey, res.Jersey)
	assertEquals(t, "Shoots", p.Shoots, res.Shoots)
	assertEquals(t, "BirthDate", p.BirthDate, res.BirthDate)
	assertEquals(t, "Points", p.Points, res.Points)
	assertEquals(t, "GamesPlayed", p.GamesPlayed, res.GamesPlayed)
	assertEquals(t, "Active", p.Active, res.Active)
	assertEquals(t, "player changes", 0, len(res.Changes))

	// The original should not have its created or updated times set.
	if !p.Created.IsZero() {
		t.Errorf("expected created time to be zero")
	}
	if !p.Updated.IsZero() {
		t.Errorf("expected updated time to be zero")
	}

	// The result should have a created time, but not an updated time.
	if res.Created.IsZero() {
		t.Errorf("expected res created time to not be zero")
	}
	if !res.Updated.IsZero() {
		t.Errorf("expected res updated time to be zero")
	}

	// Now update an identity field and make sure it persists as expected.
	p.Jersey = 88
	err = testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player after update: %v", err)

	res2, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error getting updated player: %v", err)

	assertEquals(t, "Jersey", p.Jersey, res2.Jersey)
	assertEquals(t, "Changes", 1, len(res2.Changes))
	assertEquals(t, "change prop", "Jersey", res2.Changes[0].PropertyName)
	assertEquals(t, "change old", "43", res2.Changes[0].OldValue)
	assertEquals(t, "change new", "88", res2.Changes[0].NewValue)
	// Now updated should not be zero
	if res2.Updated.IsZero() {
		t.Errorf("expected res2 updated time to not be zero")
	}

	// Lookup a player that doesn't exist
	res3, err := testDB.GetPlayer(ctx, "1111111")
	assertFatalf(t, err != nil, "should have had an error searching for player")
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerNotFound))
	if res3 != nil {
		t.Errorf("expected res3 to be nil, but was %v", res3)
	}
}

func TestPlayer_statUpdatesSkipAuditLog(t *testing.T) {
	ctx := context.Background()
	p := getPlayer()

	if err := testDB.SavePlayer(ctx, p); err != nil {
		t.Fatalf("error saving player: %v", err)
	}

	// Point and games-played totals move after every game. They get written
	// through but don't generate change rows.
	p.Points += 2500
	p.GamesPlayed++
	if err := testDB.SavePlayer(ctx, p); err != nil {
		t.Fatalf("error saving stat update: %v", err)
	}

	res, err := testDB.GetPlayer(ctx, p.ID)
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	assertEquals(t, "Points", p.Points, res.Points)
	assertEquals(t, "GamesPlayed", p.GamesPlayed, res.GamesPlayed)
	assertEquals(t, "Changes", 0, len(res.Changes))

	// Saving an identical player is a no-op and leaves updated alone.
	before := res.Updated
	if err := testDB.SavePlayer(ctx, res); err != nil {
		t.Fatalf("error on no-op save: %v", err)
	}
	res2, err := testDB.GetPlayer(ctx, p.ID)
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	assertEquals(t, "Updated", before, res2.Updated)
}

func TestPlayer_search(t *testing.T) {
	ctx := context.Background()

	// Use a static ID so there's only ever one player with this name in the DB
	// even when the test runs multiple times.
	p := getPlayer()
	p.ID = "9999998"
	p.FirstName = "Cale"
	p.LastName = "Makar"
	p.Position = model.POS_D
	p.Team = model.TEAM_COL

	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	players, err := testDB.Search(ctx, "Makar", model.POS_UNKNOWN, nil)
	assertFatalf(t, err == nil, "error searching for player: %v", err)
	assertEquals(t, "num players found", 1, len(players))

	players, err = testDB.Search(ctx, "Makar", model.POS_D, model.TEAM_COL)
	assertFatalf(t, err == nil, "error searching with filters: %v", err)
	assertEquals(t, "num players found with filters", 1, len(players))

	// A position filter that doesn't match excludes the player.
	players, err = testDB.Search(ctx, "Makar", model.POS_G, nil)
	assertFatalf(t, err == nil, "error searching with position filter: %v", err)
	assertEquals(t, "num goalies named Makar", 0, len(players))

	players, err = testDB.Search(ctx, "Gretzky", model.POS_UNKNOWN, nil)
	assertFatalf(t, err == nil, "error searching for players: %v", err)
	assertEquals(t, "num players found when searching for Gretzky", 0, len(players))
}

func TestSearchFreeAgents(t *testing.T) {
	ctx := context.Background()
	league, teams := addLeagueWithTeams(t, 2)

	owned := getPlayerWithName("Nathan", "MacKinnon")
	owned.Points = 900000
	free := getPlayerWithName("Casey", "Mittelstadt")
	free.Points = 400000
	inactive := getPlayerWithName("Joe", "Retired")
	inactive.Active = false

	for _, p := range []*model.Player{owned, free, inactive} {
		if err := testDB.SavePlayer(ctx, p); err != nil {
			t.Fatalf("error saving player: %v", err)
		}
	}

	if err := testDB.AddFreeAgent(ctx, league.ID, teams[0].ID, owned.ID, ""); err != nil {
		t.Fatalf("error rostering player: %v", err)
	}

	results, err := testDB.SearchFreeAgents(ctx, league.ID, "", model.POS_C)
	if err != nil {
		t.Fatalf("error searching free agents: %v", err)
	}

	ids := make(map[string]bool)
	for _, p := range results {
		ids[p.ID] = true
	}
	assertTrue(t, "free agent included", ids[free.ID])
	assertTrue(t, "rostered player excluded", !ids[owned.ID])
	assertTrue(t, "inactive player excluded", !ids[inactive.ID])

	// Name search narrows it further.
	results, err = testDB.SearchFreeAgents(ctx, league.ID, "Mittelstadt", model.POS_UNKNOWN)
	if err != nil {
		t.Fatalf("error searching free agents by name: %v", err)
	}
	assertEquals(t, "num results", 1, len(results))
	assertEquals(t, "result id", free.ID, results[0].ID)
}
