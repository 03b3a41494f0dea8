package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetRoster(ctx context.Context, teamID int32) ([]model.RosterEntry, error) {
	const query = `SELECT team, player, acquired, added
		FROM rosters WHERE team=@team ORDER BY added`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing roster for team %d: %w", teamID, err)
	}

	roster := make([]model.RosterEntry, 0, 20)
	for rows.Next() {
		var e model.RosterEntry
		var added pgtype.Timestamptz
		if err := rows.Scan(&e.TeamID, &e.PlayerID, &e.Acquired, &added); err != nil {
			return nil, fmt.Errorf("error scanning roster entry: %w", err)
		}
		e.Added = added.Time
		roster = append(roster, e)
	}
	return roster, nil
}

func (db *postgresDB) GetOwnedPlayerIDs(ctx context.Context, leagueID int32) (map[string]bool, error) {
	const query = `SELECT player FROM rosters WHERE league=@league`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing owned players for league %d: %w", leagueID, err)
	}

	owned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning owned player id: %w", err)
		}
		owned[id] = true
	}
	return owned, nil
}

func (db *postgresDB) GetRosterPoints(ctx context.Context, leagueID int32) (map[int32]int32, error) {
	const query = `SELECT r.team, COALESCE(SUM(p.points), 0)
		FROM rosters r
		JOIN players p ON p.id = r.player
		WHERE r.league=@league
		GROUP BY r.team`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error summing roster points for league %d: %w", leagueID, err)
	}

	points := make(map[int32]int32)
	for rows.Next() {
		var team int32
		var pts int64
		if err := rows.Scan(&team, &pts); err != nil {
			return nil, fmt.Errorf("error scanning roster points: %w", err)
		}
		points[team] = int32(pts)
	}
	return points, nil
}

func (db *postgresDB) AddFreeAgent(ctx context.Context, leagueID, teamID int32, playerID, dropPlayerID string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := addAndDrop(ctx, tx, db.clock.Now().UTC(), leagueID, teamID, playerID, dropPlayerID, model.AcquiredFreeAgent); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting free agent add: %w", err)
	}
	return nil
}

// addAndDrop does the roster mutation shared by free agent pickups and
// processed waiver claims. It must run inside a transaction.
func addAndDrop(ctx context.Context, tx pgx.Tx, now time.Time, leagueID, teamID int32, playerID, dropPlayerID, acquired string) error {
	const insert = `INSERT INTO rosters (league, team, player, acquired, added)
		VALUES (@league, @team, @player, @acquired, @added)
		ON CONFLICT DO NOTHING`

	const del = `DELETE FROM rosters WHERE team=@team AND player=@dropPlayer`

	if dropPlayerID != "" {
		tag, err := tx.Exec(ctx, del, pgx.NamedArgs{"team": teamID, "dropPlayer": dropPlayerID})
		if err != nil {
			return fmt.Errorf("error dropping player %s: %w", dropPlayerID, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrPlayerNotOwned
		}
	}

	args := pgx.NamedArgs{
		"league":   leagueID,
		"team":     teamID,
		"player":   playerID,
		"acquired": acquired,
		"added": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := tx.Exec(ctx, insert, args)
	if err != nil {
		return fmt.Errorf("error adding player %s to roster: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		// The unique (league, player) constraint swallowed the insert, the
		// player was picked up by another team first.
		return ErrPlayerOwned
	}
	return nil
}

func (db *postgresDB) GetLineup(ctx context.Context, teamID int32, week int) ([]model.LineupSpot, error) {
	const query = `SELECT team, player, slot, week
		FROM team_lineups WHERE team=@team AND week=@week ORDER BY slot, player`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": teamID, "week": week})
	if err != nil {
		return nil, fmt.Errorf("error listing lineup for team %d week %d: %w", teamID, week, err)
	}

	lineup := make([]model.LineupSpot, 0, 20)
	for rows.Next() {
		var s model.LineupSpot
		if err := rows.Scan(&s.TeamID, &s.PlayerID, &s.Slot, &s.Week); err != nil {
			return nil, fmt.Errorf("error scanning lineup spot: %w", err)
		}
		lineup = append(lineup, s)
	}
	return lineup, nil
}

func (db *postgresDB) SaveLineupSpot(ctx context.Context, s *model.LineupSpot) error {
	const query = `INSERT INTO team_lineups (team, player, slot, week)
		VALUES (@team, @player, @slot, @week)
		ON CONFLICT (team, player, week) DO UPDATE SET slot=@slot`

	args := pgx.NamedArgs{
		"team":   s.TeamID,
		"player": s.PlayerID,
		"slot":   s.Slot,
		"week":   s.Week,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving lineup spot: %w", err)
	}
	return nil
}
