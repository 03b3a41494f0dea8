package mockdb

import (
	"context"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) Search(ctx context.Context, query string, pos model.Position, team *model.NHLTeam) ([]model.Player, error) {
	args := db.Called(ctx, query, pos, team)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) SearchFreeAgents(ctx context.Context, leagueID int32, query string, pos model.Position) ([]model.Player, error) {
	args := db.Called(ctx, leagueID, query, pos)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	args := db.Called(ctx, id)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}
	return p, args.Error(1)
}

func (db *DB) GetProfiles(ctx context.Context, ids []string) (map[string]model.Profile, error) {
	args := db.Called(ctx, ids)

	var r map[string]model.Profile
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]model.Profile)
	}
	return r, args.Error(1)
}

func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := db.Called(ctx, email)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}
	return p, args.Error(1)
}

func (db *DB) SaveProfile(ctx context.Context, p *model.Profile) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) CreateVerificationToken(ctx context.Context, profileID string, expiry time.Time) (*model.VerificationToken, error) {
	args := db.Called(ctx, profileID, expiry)

	var t *model.VerificationToken
	if args.Get(0) != nil {
		t = args.Get(0).(*model.VerificationToken)
	}
	return t, args.Error(1)
}

func (db *DB) ConsumeVerificationToken(ctx context.Context, token uuid.UUID) (*model.Profile, error) {
	args := db.Called(ctx, token)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}
	return p, args.Error(1)
}

func (db *DB) DeleteAccount(ctx context.Context, profileID string) error {
	args := db.Called(ctx, profileID)
	return args.Error(0)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) ArchiveLeague(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) GetTeamByOwner(ctx context.Context, leagueID int32, ownerID string) (*model.Team, error) {
	args := db.Called(ctx, leagueID, ownerID)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetDraftPicks(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	args := db.Called(ctx, leagueID)

	var r []model.DraftPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPick)
	}
	return r, args.Error(1)
}

func (db *DB) SaveDraftPick(ctx context.Context, p *model.DraftPick) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) GetRoster(ctx context.Context, teamID int32) ([]model.RosterEntry, error) {
	args := db.Called(ctx, teamID)

	var r []model.RosterEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.RosterEntry)
	}
	return r, args.Error(1)
}

func (db *DB) GetOwnedPlayerIDs(ctx context.Context, leagueID int32) (map[string]bool, error) {
	args := db.Called(ctx, leagueID)

	var r map[string]bool
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]bool)
	}
	return r, args.Error(1)
}

func (db *DB) GetRosterPoints(ctx context.Context, leagueID int32) (map[int32]int32, error) {
	args := db.Called(ctx, leagueID)

	var r map[int32]int32
	if args.Get(0) != nil {
		r = args.Get(0).(map[int32]int32)
	}
	return r, args.Error(1)
}

func (db *DB) AddFreeAgent(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) error {
	args := db.Called(ctx, leagueID, teamID, playerID, dropPlayerID)
	return args.Error(0)
}

func (db *DB) GetLineup(ctx context.Context, teamID int32, week int) ([]model.LineupSpot, error) {
	args := db.Called(ctx, teamID, week)

	var r []model.LineupSpot
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LineupSpot)
	}
	return r, args.Error(1)
}

func (db *DB) SaveLineupSpot(ctx context.Context, s *model.LineupSpot) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) ListClaims(ctx context.Context, teamID int32) ([]model.WaiverClaim, error) {
	args := db.Called(ctx, teamID)

	var r []model.WaiverClaim
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverClaim)
	}
	return r, args.Error(1)
}

func (db *DB) ListPendingClaims(ctx context.Context, leagueID int32) ([]model.WaiverClaim, error) {
	args := db.Called(ctx, leagueID)

	var r []model.WaiverClaim
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverClaim)
	}
	return r, args.Error(1)
}

func (db *DB) AddClaim(ctx context.Context, c *model.WaiverClaim) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error {
	args := db.Called(ctx, claimID, teamID)
	return args.Error(0)
}

func (db *DB) ResolveClaim(ctx context.Context, c *model.WaiverClaim, status model.ClaimStatus) error {
	args := db.Called(ctx, c, status)
	return args.Error(0)
}

func (db *DB) GetWaiverPriorities(ctx context.Context, leagueID int32) ([]model.WaiverPriority, error) {
	args := db.Called(ctx, leagueID)

	var r []model.WaiverPriority
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WaiverPriority)
	}
	return r, args.Error(1)
}

func (db *DB) RepairWaiverPriorities(ctx context.Context, leagueID int32) error {
	args := db.Called(ctx, leagueID)
	return args.Error(0)
}

func (db *DB) SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	args := db.Called(ctx, leagueID, matchups)
	return args.Error(0)
}

func (db *DB) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	args := db.Called(ctx, leagueID, week)

	var r []model.Matchup
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Matchup)
	}
	return r, args.Error(1)
}

func (db *DB) GetAllResults(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Matchup
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Matchup)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayoffMatchups(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Matchup
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Matchup)
	}
	return r, args.Error(1)
}
