package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, name, season, team_count, waiver_hour, waiver_timezone, archived
		FROM leagues WHERE NOT archived ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	leagues := make([]model.League, 0, 4)
	for rows.Next() {
		var l model.League
		err := rows.Scan(&l.ID, &l.Name, &l.Season, &l.TeamCount, &l.WaiverHour, &l.WaiverTimezone, &l.Archived)
		if err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		leagues = append(leagues, l)
	}
	return leagues, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, name, season, team_count, waiver_hour, waiver_timezone, archived
		FROM leagues WHERE id=@id`

	var l model.League
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	err := row.Scan(&l.ID, &l.Name, &l.Season, &l.TeamCount, &l.WaiverHour, &l.WaiverTimezone, &l.Archived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}
	return &l, nil
}

func (db *postgresDB) AddLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO leagues (name, season, team_count, waiver_hour, waiver_timezone)
		VALUES (@name, @season, @teamCount, @waiverHour, @waiverTimezone)
		RETURNING id`

	if l.WaiverHour == 0 {
		l.WaiverHour = model.DefaultWaiverHour
	}
	if l.WaiverTimezone == "" {
		l.WaiverTimezone = model.DefaultWaiverTimezone
	}

	args := pgx.NamedArgs{
		"name":           l.Name,
		"season":         l.Season,
		"teamCount":      l.TeamCount,
		"waiverHour":     l.WaiverHour,
		"waiverTimezone": l.WaiverTimezone,
	}
	err := db.pool.QueryRow(ctx, query, args).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	return nil
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const query = `UPDATE leagues SET archived=TRUE WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	const query = `SELECT id, league, owner, name, logo_url, created
		FROM teams WHERE league=@league ORDER BY id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing teams for league %d: %w", leagueID, err)
	}

	teams := make([]model.Team, 0, 12)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT id, league, owner, name, logo_url, created FROM teams WHERE id=@id`

	t, err := scanTeam(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}

func (db *postgresDB) GetTeamByOwner(ctx context.Context, leagueID int32, ownerID string) (*model.Team, error) {
	const query = `SELECT id, league, owner, name, logo_url, created
		FROM teams WHERE league=@league AND owner=@owner`

	args := pgx.NamedArgs{"league": leagueID, "owner": ownerID}
	t, err := scanTeam(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	var created pgtype.Timestamptz
	err := row.Scan(&t.ID, &t.LeagueID, &t.OwnerID, &t.Name, &t.LogoURL, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning team: %w", err)
	}
	t.CreatedAt = created.Time
	return &t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO teams (league, owner, name, logo_url)
		VALUES (@league, @owner, @name, @logoURL)
		RETURNING id, created`

	args := pgx.NamedArgs{
		"league":  t.LeagueID,
		"owner":   t.OwnerID,
		"name":    t.Name,
		"logoURL": t.LogoURL,
	}

	var created pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID, &created)
	if err != nil {
		return fmt.Errorf("error inserting team: %w", err)
	}
	t.CreatedAt = created.Time
	return nil
}

func (db *postgresDB) GetDraftPicks(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	const query = `SELECT d.league, d.team, t.name, d.player,
			p.name_first || ' ' || p.name_last, d.round, d.pick
		FROM draft_picks d
		JOIN teams t ON t.id = d.team
		JOIN players p ON p.id = d.player
		WHERE d.league=@league ORDER BY d.round, d.pick`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing draft picks for league %d: %w", leagueID, err)
	}

	picks := make([]model.DraftPick, 0, 64)
	for rows.Next() {
		var p model.DraftPick
		err := rows.Scan(&p.LeagueID, &p.TeamID, &p.TeamName, &p.PlayerID,
			&p.PlayerName, &p.Round, &p.Pick)
		if err != nil {
			return nil, fmt.Errorf("error scanning draft pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, nil
}

func (db *postgresDB) SaveDraftPick(ctx context.Context, p *model.DraftPick) error {
	const insertPick = `INSERT INTO draft_picks (league, team, player, round, pick)
		VALUES (@league, @team, @player, @round, @pick)`

	const insertRoster = `INSERT INTO rosters (league, team, player, acquired, added)
		VALUES (@league, @team, @player, 'draft', @added)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"league": p.LeagueID,
		"team":   p.TeamID,
		"player": p.PlayerID,
		"round":  p.Round,
		"pick":   p.Pick,
		"added": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := tx.Exec(ctx, insertPick, args); err != nil {
		return fmt.Errorf("error inserting draft pick: %w", err)
	}

	// A draft pick also puts the player on the team's roster.
	if _, err := tx.Exec(ctx, insertRoster, args); err != nil {
		return fmt.Errorf("error inserting roster entry for draft pick: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting draft pick: %w", err)
	}
	return nil
}
