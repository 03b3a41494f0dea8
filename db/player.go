package db

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const playerColumns = `id, name_first, name_last, position, team, jersey_num,
	shoots, birth_date, points, games_played, active, created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	p, err := db.getPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	old, err := db.getPlayer(ctx, p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// This is an insert
			err := db.insertPlayer(ctx, p)
			if err != nil {
				return fmt.Errorf("error inserting player: %w", err)
			}
			return nil
		}

		return fmt.Errorf("error reading player at start of SavePlayer(): %w", err)
	}

	// This is an update, see what, if anything changed
	changes := db.calculateChanges(old, p)
	statsChanged := old.Points != p.Points || old.GamesPlayed != p.GamesPlayed
	if len(changes) > 0 || statsChanged {
		return db.updatePlayer(ctx, p, changes)
	}
	return nil
}

func (db *postgresDB) Search(ctx context.Context, q string, pos model.Position, team *model.NHLTeam) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players
			WHERE fts_player @@ websearch_to_tsquery(@q)
				AND team ILIKE @team
				AND position ILIKE @pos`, playerColumns)

	teamAndPosQuery := fmt.Sprintf(`SELECT %s FROM players
			WHERE team ILIKE @team AND position ILIKE @pos`, playerColumns)

	teamQ := "%"
	if team != nil {
		teamQ = team.String()
	}
	posQ := "%"
	if pos != model.POS_UNKNOWN {
		posQ = string(pos)
	}

	args := pgx.NamedArgs{
		"q":    q,
		"team": teamQ,
		"pos":  posQ,
	}

	qq := query
	if q == "" {
		qq = teamAndPosQuery
	}
	rows, err := db.pool.Query(ctx, qq, args)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) SearchFreeAgents(ctx context.Context, leagueID int32, q string, pos model.Position) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players
			WHERE active
				AND position ILIKE @pos
				AND (@q = '' OR fts_player @@ websearch_to_tsquery(@q))
				AND id NOT IN (SELECT player FROM rosters WHERE league=@league)
			ORDER BY points DESC`, playerColumns)

	posQ := "%"
	if pos != model.POS_UNKNOWN {
		posQ = string(pos)
	}

	args := pgx.NamedArgs{
		"q":      q,
		"pos":    posQ,
		"league": leagueID,
	}

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running free agent search: %w", err)
	}

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) getPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	result, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}

	changes, err := db.getChangesByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up player changes for %s: %w", id, err)
	}
	result.Changes = changes

	return result, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var pos DBPosition
	var team DBNHLTeam
	var birthDate pgtype.Date
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&pos,
		&team,
		&result.Jersey,
		&result.Shoots,
		&birthDate,
		&result.Points,
		&result.GamesPlayed,
		&result.Active,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Position = pos.position
	result.Team = team.team
	result.BirthDate = birthDate.Time
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func (db *postgresDB) getChangesByID(ctx context.Context, id string) ([]model.Change, error) {
	const query = `SELECT created, prop, old, new FROM player_changes WHERE player=@id ORDER BY created DESC`

	args := pgx.NamedArgs{
		"id": id,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	changes := make([]model.Change, 0, 16)
	for rows.Next() {
		var created pgtype.Timestamptz
		c := model.Change{}
		err := rows.Scan(&created, &c.PropertyName, &c.OldValue, &c.NewValue)
		if err != nil {
			return nil, fmt.Errorf("error scanning player change: %v", err)
		}
		c.Time = created.Time

		changes = append(changes, c)
	}

	return changes, nil
}

func (db *postgresDB) insertPlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("insertPlayer - player is nil")
	}
	const query = `INSERT INTO players (
		id,
		name_first,
		name_last,
		position,
		team,
		jersey_num,
		shoots,
		birth_date,
		points,
		games_played,
		active
	) VALUES (
		@id,
		@nameFirst,
		@nameLast,
		@position,
		@team,
		@jerseyNum,
		@shoots,
		@birthDate,
		@points,
		@gamesPlayed,
		@active
	)`

	args := namedArgsForPlayer(p, db.clock)
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error inserting player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) updatePlayer(ctx context.Context, p *model.Player, changes []model.Change) error {
	const update = `UPDATE players
		SET name_first=@nameFirst,
			name_last=@nameLast,
			position=@position,
			team=@team,
			jersey_num=@jerseyNum,
			shoots=@shoots,
			birth_date=@birthDate,
			points=@points,
			games_played=@gamesPlayed,
			active=@active,
			updated=@updated
		WHERE id=@id`

	const insertChange = `INSERT INTO player_changes(
		player,
		prop,
		old,
		new
	) VALUES (
		@playerId,
		@prop,
		@old,
		@new
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := namedArgsForPlayer(p, db.clock)
	_, err = tx.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating player (%s): %w", p.ID, err)
	}

	for _, change := range changes {
		args := namedArgsForPlayerChange(p.ID, &change)
		_, err = tx.Exec(ctx, insertChange, args)
		if err != nil {
			return fmt.Errorf("error inserting player change: %w", err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("error commiting player transaction: %w", err)
	}

	p.Changes = append(p.Changes, changes...)
	slices.SortFunc(p.Changes, func(a, b model.Change) int {
		return b.Time.Compare(a.Time)
	})

	return nil
}

// Stat totals (points, games played) change constantly and aren't worth an
// audit row, only identity fields are tracked.
func (db *postgresDB) calculateChanges(p1, p2 *model.Player) []model.Change {
	changes := make([]model.Change, 0, 1)

	changes = checkChange(changes, db.clock, "FirstName", p1.FirstName, p2.FirstName)
	changes = checkChange(changes, db.clock, "LastName", p1.LastName, p2.LastName)
	changes = checkChange(changes, db.clock, "Position", string(p1.Position), string(p2.Position))
	changes = checkChange(changes, db.clock, "Team", p1.Team.String(), p2.Team.String())
	changes = checkChangeInt(changes, db.clock, "Jersey", p1.Jersey, p2.Jersey)
	changes = checkChange(changes, db.clock, "Shoots", p1.Shoots, p2.Shoots)
	changes = checkChange(changes, db.clock, "BirthDate", p1.FormattedBirthDate(), p2.FormattedBirthDate())
	changes = checkChange(changes, db.clock, "Active", fmt.Sprintf("%v", p1.Active), fmt.Sprintf("%v", p2.Active))

	return changes
}

func checkChange(changes []model.Change, clock clock.Clock, prop, old, new string) []model.Change {
	if old != new {
		c := model.Change{
			Time:         clock.Now().UTC(),
			PropertyName: prop,
			OldValue:     old,
			NewValue:     new,
		}
		changes = append(changes, c)
	}
	return changes
}

func checkChangeInt(changes []model.Change, clock clock.Clock, prop string, old, new int) []model.Change {
	return checkChange(changes, clock, prop, fmt.Sprintf("%d", old), fmt.Sprintf("%d", new))
}

func namedArgsForPlayer(p *model.Player, clock clock.Clock) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        p.ID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  &DBPosition{position: p.Position},
		"team":      &DBNHLTeam{team: p.Team},
		"jerseyNum": p.Jersey,
		"shoots":    p.Shoots,
		"birthDate": pgtype.Date{
			Time:  p.BirthDate,
			Valid: !p.BirthDate.IsZero(),
		},
		"points":      p.Points,
		"gamesPlayed": p.GamesPlayed,
		"active":      p.Active,
		"updated": pgtype.Timestamptz{
			Time:             clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
}

func namedArgsForPlayerChange(playerId string, c *model.Change) pgx.NamedArgs {
	return pgx.NamedArgs{
		"playerId": playerId,
		"prop":     c.PropertyName,
		"old":      c.OldValue,
		"new":      c.NewValue,
	}
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

type DBNHLTeam struct {
	team *model.NHLTeam
}

func (t *DBNHLTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseNHLTeam(v.String)
	return nil
}

func (t *DBNHLTeam) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: t.team.String(),
		Valid:  true,
	}, nil
}
