package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, name, season string, teamCount int) (*model.League, error) {
	args := c.Called(ctx, name, season, teamCount)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) JoinLeague(ctx context.Context, leagueID int32, profileID, teamName string) (*model.Team, error) {
	args := c.Called(ctx, leagueID, profileID, teamName)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) GetMyTeam(ctx context.Context, leagueID int32, profileID string) (*model.Team, error) {
	args := c.Called(ctx, leagueID, profileID)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) GetGMOffice(ctx context.Context, leagueID int32, profileID string) (*controller.GMOffice, error) {
	args := c.Called(ctx, leagueID, profileID)

	var o *controller.GMOffice
	if args.Get(0) != nil {
		o = args.Get(0).(*controller.GMOffice)
	}

	return o, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context, leagueID int32) ([]model.StandingsTeam, error) {
	args := c.Called(ctx, leagueID)

	var res []model.StandingsTeam
	if args.Get(0) != nil {
		res = args.Get(0).([]model.StandingsTeam)
	}

	return res, args.Error(1)
}

func (c *C) GetPlayoffBracket(ctx context.Context, leagueID int32) ([]model.PlayoffRound, error) {
	args := c.Called(ctx, leagueID)

	var res []model.PlayoffRound
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PlayoffRound)
	}

	return res, args.Error(1)
}

func (c *C) GetTeamAnalytics(ctx context.Context, teamID int32, week int) (*controller.TeamAnalytics, error) {
	args := c.Called(ctx, teamID, week)

	var a *controller.TeamAnalytics
	if args.Get(0) != nil {
		a = args.Get(0).(*controller.TeamAnalytics)
	}

	return a, args.Error(1)
}

func (c *C) GetScoreboard(ctx context.Context, leagueID int32, week int) (*controller.Scoreboard, error) {
	args := c.Called(ctx, leagueID, week)

	var s *controller.Scoreboard
	if args.Get(0) != nil {
		s = args.Get(0).(*controller.Scoreboard)
	}

	return s, args.Error(1)
}

func (c *C) GetDraftRecap(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	args := c.Called(ctx, leagueID)

	var res []model.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPick)
	}

	return res, args.Error(1)
}

func (c *C) ImportResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	args := c.Called(ctx, leagueID, matchups)
	return args.Error(0)
}

func (c *C) ImportDraft(ctx context.Context, leagueID int32, picks []model.DraftPick) error {
	args := c.Called(ctx, leagueID, picks)
	return args.Error(0)
}

func (c *C) SearchFreeAgents(ctx context.Context, leagueID int32, query string, pos model.Position) ([]model.Player, error) {
	args := c.Called(ctx, leagueID, query, pos)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) SubmitClaim(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) (*model.AcquisitionResult, error) {
	args := c.Called(ctx, leagueID, teamID, playerID, dropPlayerID)

	var r *model.AcquisitionResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.AcquisitionResult)
	}

	return r, args.Error(1)
}

func (c *C) CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error {
	args := c.Called(ctx, claimID, teamID)
	return args.Error(0)
}

func (c *C) GetWaiverStatus(ctx context.Context, leagueID, teamID int32) (*controller.WaiverStatus, error) {
	args := c.Called(ctx, leagueID, teamID)

	var s *controller.WaiverStatus
	if args.Get(0) != nil {
		s = args.Get(0).(*controller.WaiverStatus)
	}

	return s, args.Error(1)
}

func (c *C) ProcessWaiverClaims(ctx context.Context, leagueID int32) error {
	args := c.Called(ctx, leagueID)
	return args.Error(0)
}

func (c *C) RunPeriodicWaiverProcessing(shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(shutdown, wg)
}

func (c *C) SignInStart() (string, error) {
	args := c.Called()
	return args.String(0), args.Error(1)
}

func (c *C) SignInComplete(ctx context.Context, state, code string) (*model.Profile, error) {
	args := c.Called(ctx, state, code)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}

	return p, args.Error(1)
}

func (c *C) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	args := c.Called(ctx, id)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}

	return p, args.Error(1)
}

func (c *C) SetupProfile(ctx context.Context, id, displayName, favoriteTeam string) (*model.Profile, error) {
	args := c.Called(ctx, id, displayName, favoriteTeam)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}

	return p, args.Error(1)
}

func (c *C) StartEmailVerification(ctx context.Context, profileID string) (*model.VerificationToken, error) {
	args := c.Called(ctx, profileID)

	var t *model.VerificationToken
	if args.Get(0) != nil {
		t = args.Get(0).(*model.VerificationToken)
	}

	return t, args.Error(1)
}

func (c *C) ConfirmEmailVerification(ctx context.Context, token uuid.UUID) (*model.Profile, error) {
	args := c.Called(ctx, token)

	var p *model.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Profile)
	}

	return p, args.Error(1)
}

func (c *C) DeleteAccount(ctx context.Context, profileID string) error {
	args := c.Called(ctx, profileID)
	return args.Error(0)
}

func (c *C) AskAssistant(ctx context.Context, profileID string, leagueID int32, message string) (string, error) {
	args := c.Called(ctx, profileID, leagueID, message)
	return args.String(0), args.Error(1)
}

func (c *C) GetDemoLeague() *model.League {
	args := c.Called()

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l
}

func (c *C) GetDemoStandings() []model.StandingsTeam {
	args := c.Called()

	var res []model.StandingsTeam
	if args.Get(0) != nil {
		res = args.Get(0).([]model.StandingsTeam)
	}

	return res
}

func (c *C) GetDemoMatchups() []model.Matchup {
	args := c.Called()

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res
}
