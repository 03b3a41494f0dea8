package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
)

func (c *controller) SearchFreeAgents(ctx context.Context, leagueID int32, query string, pos model.Position) ([]model.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" && pos == model.POS_UNKNOWN {
		return nil, errors.New("a name or a position filter must be provided")
	}
	return c.db.SearchFreeAgents(ctx, leagueID, query, pos)
}

// SubmitClaim adds a player to the team. Free agents are added to the roster
// immediately, players that cleared a roster recently (or are otherwise
// claimed) go through the waiver queue and are resolved at the league's next
// processing run.
func (c *controller) SubmitClaim(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) (*model.AcquisitionResult, error) {
	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	owned, err := c.db.GetOwnedPlayerIDs(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading owned players: %w", err)
	}
	if owned[playerID] {
		return nil, db.ErrPlayerOwned
	}

	pending, err := c.db.ListPendingClaims(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading pending claims: %w", err)
	}

	contested := false
	for _, cl := range pending {
		if cl.PlayerID == playerID {
			if cl.TeamID == teamID {
				return nil, fmt.Errorf("team already has a pending claim for %s", p.FullName())
			}
			contested = true
		}
	}

	// Uncontested players are added right away.
	if !contested {
		if err := c.db.AddFreeAgent(ctx, leagueID, teamID, playerID, dropPlayerID); err != nil {
			return nil, err
		}
		return &model.AcquisitionResult{Kind: model.AcquisitionImmediate, Player: p}, nil
	}

	claim := &model.WaiverClaim{
		LeagueID:     leagueID,
		TeamID:       teamID,
		PlayerID:     playerID,
		DropPlayerID: dropPlayerID,
		Priority:     c.waiverRank(ctx, leagueID, teamID),
	}
	if err := c.db.AddClaim(ctx, claim); err != nil {
		return nil, err
	}
	return &model.AcquisitionResult{Kind: model.AcquisitionClaim, ClaimID: claim.ID, Player: p}, nil
}

func (c *controller) CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error {
	return c.db.CancelClaim(ctx, claimID, teamID)
}

func (c *controller) GetWaiverStatus(ctx context.Context, leagueID, teamID int32) (*WaiverStatus, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	claims, err := c.db.ListClaims(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error listing claims: %w", err)
	}

	teams, err := c.db.GetTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league teams: %w", err)
	}

	priorities, err := c.db.GetWaiverPriorities(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting waiver priorities: %w", err)
	}

	// A missing or stale priority list gets repaired in place instead of
	// rendering a broken page. The repair is idempotent, so racing requests
	// are harmless.
	if !prioritiesValid(priorities, teams) {
		log.Printf("repairing waiver priorities for league %d", leagueID)
		if err := c.db.RepairWaiverPriorities(ctx, leagueID); err != nil {
			return nil, fmt.Errorf("error repairing waiver priorities: %w", err)
		}
		priorities, err = c.db.GetWaiverPriorities(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("error getting waiver priorities: %w", err)
		}
	}

	status := &WaiverStatus{
		Claims:    claims,
		Rank:      model.PriorityNotSet,
		TeamCount: len(teams),
		NextRun:   nextWaiverRun(l, c.clock.Now()),
	}
	for _, p := range priorities {
		if p.TeamID == teamID {
			status.Rank = p.Rank
			break
		}
	}
	return status, nil
}

// prioritiesValid reports whether every team has a rank and the ranks are
// contiguous 1..N.
func prioritiesValid(priorities []model.WaiverPriority, teams []model.Team) bool {
	if len(priorities) != len(teams) {
		return false
	}

	ranked := make(map[int32]bool, len(priorities))
	for i, p := range priorities {
		if p.Rank != i+1 {
			return false
		}
		ranked[p.TeamID] = true
	}

	for _, t := range teams {
		if !ranked[t.ID] {
			return false
		}
	}
	return true
}

// nextWaiverRun is the next time the league's claims get processed.
func nextWaiverRun(l *model.League, now time.Time) time.Time {
	loc := l.WaiverLocation()
	local := now.In(loc)

	run := time.Date(local.Year(), local.Month(), local.Day(), l.WaiverProcessingHour(), 0, 0, 0, loc)
	if !run.After(local) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}

// ProcessWaiverClaims resolves every pending claim in the league. Teams are
// served in waiver priority order and a team that wins a claim drops to the
// back of the order before the next claim is considered. Claims for players
// that were snapped up earlier in the same run are rejected.
func (c *controller) ProcessWaiverClaims(ctx context.Context, leagueID int32) error {
	pending, err := c.db.ListPendingClaims(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error listing pending claims: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	log.Printf("processing %d waiver claims for league %d", len(pending), leagueID)

	priorities, err := c.db.GetWaiverPriorities(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error getting waiver priorities: %w", err)
	}
	order := make([]int32, 0, len(priorities))
	for _, p := range priorities {
		order = append(order, p.TeamID)
	}

	owned, err := c.db.GetOwnedPlayerIDs(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error loading owned players: %w", err)
	}

	for len(pending) > 0 {
		i := nextClaimIndex(pending, order)
		claim := pending[i]
		pending = append(pending[:i], pending[i+1:]...)

		status := model.ClaimProcessed
		if owned[claim.PlayerID] {
			status = model.ClaimRejected
		}

		if err := c.db.ResolveClaim(ctx, &claim, status); err != nil {
			// A single bad claim shouldn't sink the whole run.
			log.Printf("error resolving claim %s: %v", claim.ID, err)
			continue
		}

		if status == model.ClaimProcessed {
			owned[claim.PlayerID] = true
			delete(owned, claim.DropPlayerID)
			// Mirror the db-side priority demotion locally so the rest of
			// the run uses the updated order.
			if j := slices.Index(order, claim.TeamID); j >= 0 {
				order = append(append(order[:j:j], order[j+1:]...), claim.TeamID)
			}
		}
	}
	return nil
}

// nextClaimIndex picks the claim belonging to the highest-priority team,
// oldest claim first for teams with several. Claims from teams missing from
// the order are served last.
func nextClaimIndex(pending []model.WaiverClaim, order []int32) int {
	best := 0
	bestRank := claimRank(pending[0].TeamID, order)
	for i := 1; i < len(pending); i++ {
		if r := claimRank(pending[i].TeamID, order); r < bestRank {
			best = i
			bestRank = r
		}
	}
	return best
}

func claimRank(teamID int32, order []int32) int {
	if i := slices.Index(order, teamID); i >= 0 {
		return i
	}
	return len(order)
}

func (c *controller) waiverRank(ctx context.Context, leagueID, teamID int32) int {
	priorities, err := c.db.GetWaiverPriorities(ctx, leagueID)
	if err != nil {
		return model.PriorityNotSet
	}
	for _, p := range priorities {
		if p.TeamID == teamID {
			return p.Rank
		}
	}
	return model.PriorityNotSet
}

// RunPeriodicWaiverProcessing wakes up once an hour and processes claims for
// every league whose configured processing hour has arrived in its own
// timezone.
func (c *controller) RunPeriodicWaiverProcessing(shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(time.Hour)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			c.processDueLeagues(ctx)
			cancel()
		}
	}
}

func (c *controller) processDueLeagues(ctx context.Context) {
	leagues, err := c.db.ListLeagues(ctx)
	if err != nil {
		log.Printf("error listing leagues for waiver processing: %v", err)
		return
	}

	now := c.clock.Now()
	for i := range leagues {
		l := &leagues[i]
		if l.Archived {
			continue
		}
		if now.In(l.WaiverLocation()).Hour() != l.WaiverProcessingHour() {
			continue
		}
		if err := c.ProcessWaiverClaims(ctx, l.ID); err != nil {
			log.Printf("error processing waivers for league %d: %v", l.ID, err)
		}
	}
}
