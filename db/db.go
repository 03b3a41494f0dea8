package db

import (
	"context"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	Search(ctx context.Context, query string, pos model.Position, team *model.NHLTeam) ([]model.Player, error)
	// Search restricted to players not on any roster in the league.
	SearchFreeAgents(ctx context.Context, leagueID int32, query string, pos model.Position) ([]model.Player, error)

	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	// Batch lookup keyed by profile id. Ids without a profile are simply
	// absent from the map.
	GetProfiles(ctx context.Context, ids []string) (map[string]model.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error)
	SaveProfile(ctx context.Context, p *model.Profile) error
	CreateVerificationToken(ctx context.Context, profileID string, expiry time.Time) (*model.VerificationToken, error)
	// Consumes the token and marks the profile's email as verified in a
	// single transaction. Expired or unknown tokens return ErrTokenNotFound.
	ConsumeVerificationToken(ctx context.Context, token uuid.UUID) (*model.Profile, error)
	// Deletes the profile and everything that hangs off of it - claims,
	// priorities, lineups, rosters, teams - in one transaction so a failure
	// part way through never leaves a half deleted account behind.
	DeleteAccount(ctx context.Context, profileID string) error

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, l *model.League) error
	ArchiveLeague(ctx context.Context, id int32) error
	GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	GetTeamByOwner(ctx context.Context, leagueID int32, ownerID string) (*model.Team, error)
	AddTeam(ctx context.Context, t *model.Team) error

	GetDraftPicks(ctx context.Context, leagueID int32) ([]model.DraftPick, error)
	SaveDraftPick(ctx context.Context, p *model.DraftPick) error

	GetRoster(ctx context.Context, teamID int32) ([]model.RosterEntry, error)
	// Set of player ids currently on any roster in the league.
	GetOwnedPlayerIDs(ctx context.Context, leagueID int32) (map[string]bool, error)
	// Season points summed over each team's current roster, keyed by team
	// id. Teams with an empty roster have no entry.
	GetRosterPoints(ctx context.Context, leagueID int32) (map[int32]int32, error)
	// Adds a free agent to the team's roster, dropping dropPlayerID in the
	// same transaction when it is not empty.
	AddFreeAgent(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) error
	GetLineup(ctx context.Context, teamID int32, week int) ([]model.LineupSpot, error)
	SaveLineupSpot(ctx context.Context, s *model.LineupSpot) error

	ListClaims(ctx context.Context, teamID int32) ([]model.WaiverClaim, error)
	ListPendingClaims(ctx context.Context, leagueID int32) ([]model.WaiverClaim, error)
	AddClaim(ctx context.Context, c *model.WaiverClaim) error
	// Cancels a claim owned by teamID. Returns ErrClaimNotFound if the claim
	// doesn't exist and ErrClaimNotPending if it was already resolved.
	CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error
	// ResolveClaim applies a processed claim in one transaction: the roster
	// add and drop, the status update, and moving the winning team to the
	// back of the priority list. Rejected claims only get the status update.
	ResolveClaim(ctx context.Context, c *model.WaiverClaim, status model.ClaimStatus) error
	GetWaiverPriorities(ctx context.Context, leagueID int32) ([]model.WaiverPriority, error)
	// Re-packs the league's waiver priorities to contiguous ranks 1..N,
	// appending teams that are missing a row. Idempotent.
	RepairWaiverPriorities(ctx context.Context, leagueID int32) error

	SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error
	GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error)
	// All final matchups for the league, the source for win/loss records.
	GetAllResults(ctx context.Context, leagueID int32) ([]model.Matchup, error)
	GetPlayoffMatchups(ctx context.Context, leagueID int32) ([]model.Matchup, error)
}
