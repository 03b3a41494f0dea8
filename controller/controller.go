package controller

import (
	"context"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus_league/assistant"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/Gstormsfh/citrus_league/nhl"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, name, season string, teamCount int) (*model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
	JoinLeague(ctx context.Context, leagueID int32, profileID, teamName string) (*model.Team, error)
	GetMyTeam(ctx context.Context, leagueID int32, profileID string) (*model.Team, error)
	GetGMOffice(ctx context.Context, leagueID int32, profileID string) (*GMOffice, error)

	// Ranked standings built from the rosters and the matchup ledger.
	GetStandings(ctx context.Context, leagueID int32) ([]model.StandingsTeam, error)
	GetPlayoffBracket(ctx context.Context, leagueID int32) ([]model.PlayoffRound, error)
	GetTeamAnalytics(ctx context.Context, teamID int32, week int) (*TeamAnalytics, error)
	GetScoreboard(ctx context.Context, leagueID int32, week int) (*Scoreboard, error)
	GetDraftRecap(ctx context.Context, leagueID int32) ([]model.DraftPick, error)

	// Batch imports from the scoring provider, exposed on the admin routes.
	// The results ledger feeds standings, streaks and the playoff bracket.
	ImportResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error
	ImportDraft(ctx context.Context, leagueID int32, picks []model.DraftPick) error

	// Waiver wire operations. SubmitClaim reports whether the player was
	// added immediately (free agent) or a claim was queued for the next
	// processing run.
	SearchFreeAgents(ctx context.Context, leagueID int32, query string, pos model.Position) ([]model.Player, error)
	SubmitClaim(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) (*model.AcquisitionResult, error)
	CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error
	GetWaiverStatus(ctx context.Context, leagueID, teamID int32) (*WaiverStatus, error)
	ProcessWaiverClaims(ctx context.Context, leagueID int32) error
	RunPeriodicWaiverProcessing(shutdown chan bool, wg *sync.WaitGroup)

	// Account flows. Sign in goes through the hosted auth provider.
	SignInStart() (string, error)
	SignInComplete(ctx context.Context, state, code string) (*model.Profile, error)
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	SetupProfile(ctx context.Context, id, displayName, favoriteTeam string) (*model.Profile, error)
	StartEmailVerification(ctx context.Context, profileID string) (*model.VerificationToken, error)
	ConfirmEmailVerification(ctx context.Context, token uuid.UUID) (*model.Profile, error)
	DeleteAccount(ctx context.Context, profileID string) error

	AskAssistant(ctx context.Context, profileID string, leagueID int32, message string) (string, error)

	// Explicit guest mode data, selected by session state only.
	GetDemoLeague() *model.League
	GetDemoStandings() []model.StandingsTeam
	GetDemoMatchups() []model.Matchup
}

// GMOffice is the dashboard summary for a GM's home page.
type GMOffice struct {
	League        *model.League
	Team          *model.Team
	Record        *model.StandingsTeam
	Rank          int
	PendingClaims []model.WaiverClaim
	WaiverRank    int // model.PriorityNotSet when the priority row is missing
}

// TeamAnalytics breaks a roster down for the analytics page.
type TeamAnalytics struct {
	Team          *model.Team
	PositionCount map[model.Position]int
	// points * 1000, keyed by position
	PositionPoints map[model.Position]int32
	TopScorers     []model.Player
	StarterPoints  int32
	BenchPoints    int32
}

// Scoreboard is one week of matchups for the scoreboard page.
type Scoreboard struct {
	League   *model.League
	Week     int
	Matchups []model.Matchup
}

// WaiverStatus is everything the waiver wire page shows for one team.
type WaiverStatus struct {
	Claims []model.WaiverClaim
	// Rank of the team in the league's waiver order, 1..teamCount, or
	// model.PriorityNotSet when no row exists even after a repair.
	Rank      int
	TeamCount int
	// When the league's next processing run happens.
	NextRun time.Time
}

// AuthConfig carries the oauth2 settings plus the provider's userinfo
// endpoint used to resolve the signed-in subject.
type AuthConfig struct {
	OAuth       *oauth2.Config
	UserInfoURL string
}

type controller struct {
	clock     clock.Clock
	db        db.DB
	nhl       nhl.Client
	assistant assistant.Client
	auth      *AuthConfig

	mu          sync.Mutex
	oauthStates map[string]*oauthState
}

func New(clock clock.Clock, db db.DB, nhl nhl.Client, assistant assistant.Client, auth *AuthConfig) (C, error) {
	c := &controller{
		clock:       clock,
		db:          db,
		nhl:         nhl,
		assistant:   assistant,
		auth:        auth,
		oauthStates: make(map[string]*oauthState),
	}
	return c, nil
}
