package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
)

func TestProfile_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	p := addProfile(t, "Sam")

	res, err := testDB.GetProfile(ctx, p.ID)
	assertFatalf(t, err == nil, "error getting profile: %v", err)
	assertEquals(t, "ID", p.ID, res.ID)
	assertEquals(t, "Email", p.Email, res.Email)
	assertEquals(t, "DisplayName", "Sam", res.DisplayName)
	assertEquals(t, "EmailVerified", false, res.EmailVerified)
	// No favorite team saved means free agent placeholder.
	assertEquals(t, "FavoriteTeam", model.TEAM_FA, res.FavoriteTeam)
	assertTrue(t, "Created set", !res.Created.IsZero())
	assertTrue(t, "Updated zero", res.Updated.IsZero())

	byEmail, err := testDB.GetProfileByEmail(ctx, p.Email)
	assertFatalf(t, err == nil, "error getting profile by email: %v", err)
	assertEquals(t, "byEmail.ID", p.ID, byEmail.ID)

	// Update the display name and favorite team through the upsert.
	res.DisplayName = "Sammy"
	res.FavoriteTeam = model.TEAM_VAN
	if err := testDB.SaveProfile(ctx, res); err != nil {
		t.Fatalf("error updating profile: %v", err)
	}

	res2, err := testDB.GetProfile(ctx, p.ID)
	assertFatalf(t, err == nil, "error getting updated profile: %v", err)
	assertEquals(t, "DisplayName", "Sammy", res2.DisplayName)
	assertEquals(t, "FavoriteTeam", model.TEAM_VAN, res2.FavoriteTeam)
	assertTrue(t, "Updated set", !res2.Updated.IsZero())

	// Lookups that find nothing
	_, err = testDB.GetProfile(ctx, "auth0|nobody")
	assertEquals(t, "GetProfile error", true, errors.Is(err, ErrProfileNotFound))

	_, err = testDB.GetProfileByEmail(ctx, "nobody@example.com")
	assertEquals(t, "GetProfileByEmail error", true, errors.Is(err, ErrProfileNotFound))
}

func TestGetProfiles(t *testing.T) {
	ctx := context.Background()
	p1 := addProfile(t, "Sam")
	p2 := addProfile(t, "Riley")

	got, err := testDB.GetProfiles(ctx, []string{p1.ID, p2.ID, "auth0|nobody"})
	assertFatalf(t, err == nil, "error getting profiles: %v", err)
	assertEquals(t, "len(profiles)", 2, len(got))
	assertEquals(t, "p1 name", "Sam", got[p1.ID].DisplayName)
	assertEquals(t, "p2 name", "Riley", got[p2.ID].DisplayName)

	// Unknown ids are simply absent, not an error.
	_, found := got["auth0|nobody"]
	assertEquals(t, "missing id", false, found)

	empty, err := testDB.GetProfiles(ctx, []string{})
	assertFatalf(t, err == nil, "error getting no profiles: %v", err)
	assertEquals(t, "len(empty)", 0, len(empty))
}

func TestVerificationTokens(t *testing.T) {
	ctx := context.Background()
	p := addProfile(t, "Riley")

	token, err := testDB.CreateVerificationToken(ctx, p.ID, time.Now().UTC().Add(24*time.Hour))
	assertFatalf(t, err == nil, "error creating verification token: %v", err)
	assertEquals(t, "ProfileID", p.ID, token.ProfileID)
	assertTrue(t, "token set", token.Token != uuid.Nil)

	verified, err := testDB.ConsumeVerificationToken(ctx, token.Token)
	assertFatalf(t, err == nil, "error consuming verification token: %v", err)
	assertEquals(t, "EmailVerified", true, verified.EmailVerified)

	// A token can only be consumed once.
	_, err = testDB.ConsumeVerificationToken(ctx, token.Token)
	assertEquals(t, "second consume", true, errors.Is(err, ErrTokenNotFound))

	// An expired token behaves like a missing one.
	expired, err := testDB.CreateVerificationToken(ctx, p.ID, time.Now().UTC().Add(-time.Hour))
	assertFatalf(t, err == nil, "error creating expired token: %v", err)
	_, err = testDB.ConsumeVerificationToken(ctx, expired.Token)
	assertEquals(t, "expired consume", true, errors.Is(err, ErrTokenNotFound))
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	league, teams := addLeagueWithTeams(t, 2)

	// Find the owners created by the helper.
	team, err := testDB.GetTeam(ctx, teams[0].ID)
	assertFatalf(t, err == nil, "error getting team: %v", err)
	doomed := team.OwnerID

	player := getPlayer()
	if err := testDB.SavePlayer(ctx, player); err != nil {
		t.Fatalf("error saving player: %v", err)
	}

	// Hang some data off of the account: a roster entry, a lineup spot, a
	// pending claim, a waiver priority row, and a played matchup.
	if err := testDB.AddFreeAgent(ctx, league.ID, team.ID, player.ID, ""); err != nil {
		t.Fatalf("error adding player to roster: %v", err)
	}
	spot := model.LineupSpot{TeamID: team.ID, PlayerID: player.ID, Slot: "D", Week: 1}
	if err := testDB.SaveLineupSpot(ctx, &spot); err != nil {
		t.Fatalf("error saving lineup spot: %v", err)
	}
	claimed := getPlayerWithName("Elias", "Pettersson")
	if err := testDB.SavePlayer(ctx, claimed); err != nil {
		t.Fatalf("error saving player: %v", err)
	}
	claim := model.WaiverClaim{LeagueID: league.ID, TeamID: team.ID, PlayerID: claimed.ID, Priority: 1}
	if err := testDB.AddClaim(ctx, &claim); err != nil {
		t.Fatalf("error adding claim: %v", err)
	}
	if err := testDB.RepairWaiverPriorities(ctx, league.ID); err != nil {
		t.Fatalf("error setting up waiver priorities: %v", err)
	}
	matchups := []model.Matchup{
		{Week: 1, Status: model.MatchupFinal,
			TeamA: &model.TeamResult{TeamID: teams[0].ID, Score: 100000},
			TeamB: &model.TeamResult{TeamID: teams[1].ID, Score: 90000}},
	}
	if err := testDB.SaveResults(ctx, league.ID, matchups); err != nil {
		t.Fatalf("error saving matchups: %v", err)
	}

	if err := testDB.DeleteAccount(ctx, doomed); err != nil {
		t.Fatalf("error deleting account: %v", err)
	}

	// The profile, team, and everything hanging off of them are gone.
	_, err = testDB.GetProfile(ctx, doomed)
	assertEquals(t, "profile gone", true, errors.Is(err, ErrProfileNotFound))

	_, err = testDB.GetTeam(ctx, team.ID)
	assertEquals(t, "team gone", true, errors.Is(err, ErrTeamNotFound))

	owned, err := testDB.GetOwnedPlayerIDs(ctx, league.ID)
	assertFatalf(t, err == nil, "error listing owned players: %v", err)
	assertTrue(t, "roster entry gone", !owned[player.ID])

	claims, err := testDB.ListClaims(ctx, team.ID)
	assertFatalf(t, err == nil, "error listing claims: %v", err)
	assertEquals(t, "claims gone", 0, len(claims))

	priorities, err := testDB.GetWaiverPriorities(ctx, league.ID)
	assertFatalf(t, err == nil, "error listing priorities: %v", err)
	for _, p := range priorities {
		if p.TeamID == team.ID {
			t.Errorf("waiver priority row for deleted team still present")
		}
	}

	results, err := testDB.GetAllResults(ctx, league.ID)
	assertFatalf(t, err == nil, "error listing results: %v", err)
	assertEquals(t, "matchups gone", 0, len(results))

	// The other account in the league is untouched.
	other, err := testDB.GetTeam(ctx, teams[1].ID)
	assertFatalf(t, err == nil, "error getting surviving team: %v", err)
	if _, err := testDB.GetProfile(ctx, other.OwnerID); err != nil {
		t.Errorf("surviving profile should still exist: %v", err)
	}
}
