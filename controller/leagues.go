package controller

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Gstormsfh/citrus_league/model"
)

var seasonRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	l.Teams, err = c.db.GetTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league teams: %w", err)
	}

	return l, nil
}

func (c *controller) AddLeague(ctx context.Context, name, season string, teamCount int) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}

	if !seasonRegex.MatchString(season) {
		return nil, fmt.Errorf("season parameter must be in the YYYY-YY format, got: %s", season)
	}

	if teamCount < 2 || teamCount > 32 {
		return nil, fmt.Errorf("team count must be between 2 and 32, got: %d", teamCount)
	}

	l := &model.League{
		Name:      name,
		Season:    season,
		TeamCount: teamCount,
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}

func (c *controller) JoinLeague(ctx context.Context, leagueID int32, profileID, teamName string) (*model.Team, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, errors.New("team name must be provided")
	}

	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	if l.Archived {
		return nil, fmt.Errorf("league %s is archived", l.Name)
	}

	teams, err := c.db.GetTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league teams: %w", err)
	}
	if len(teams) >= l.TeamCount {
		return nil, fmt.Errorf("league %s is full", l.Name)
	}

	t := &model.Team{
		LeagueID: leagueID,
		OwnerID:  profileID,
		Name:     teamName,
	}
	if err := c.db.AddTeam(ctx, t); err != nil {
		return nil, err
	}

	// A new team joins the back of the waiver order.
	if err := c.db.RepairWaiverPriorities(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("error setting waiver priority for new team: %w", err)
	}

	return t, nil
}

func (c *controller) GetMyTeam(ctx context.Context, leagueID int32, profileID string) (*model.Team, error) {
	return c.db.GetTeamByOwner(ctx, leagueID, profileID)
}

func (c *controller) GetGMOffice(ctx context.Context, leagueID int32, profileID string) (*GMOffice, error) {
	l, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	t, err := c.db.GetTeamByOwner(ctx, leagueID, profileID)
	if err != nil {
		return nil, fmt.Errorf("error looking up team: %w", err)
	}

	office := &GMOffice{
		League:     l,
		Team:       t,
		WaiverRank: model.PriorityNotSet,
	}

	standings, err := c.GetStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	for i := range standings {
		if standings[i].TeamID == t.ID {
			office.Record = &standings[i]
			office.Rank = i + 1
			break
		}
	}

	claims, err := c.db.ListClaims(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing claims: %w", err)
	}
	for _, cl := range claims {
		if cl.Status == model.ClaimPending {
			office.PendingClaims = append(office.PendingClaims, cl)
		}
	}

	priorities, err := c.db.GetWaiverPriorities(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting waiver priorities: %w", err)
	}
	for _, p := range priorities {
		if p.TeamID == t.ID {
			office.WaiverRank = p.Rank
			break
		}
	}

	return office, nil
}
