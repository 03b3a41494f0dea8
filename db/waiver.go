package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimColumns = `c.id, c.league, c.team, c.player, COALESCE(c.drop_player, ''),
	c.priority, c.status, c.created, c.processed,
	p.name_first || ' ' || p.name_last,
	COALESCE(d.name_first || ' ' || d.name_last, '')`

const claimJoins = `FROM waiver_claims c
	JOIN players p ON p.id = c.player
	LEFT JOIN players d ON d.id = c.drop_player`

func (db *postgresDB) ListClaims(ctx context.Context, teamID int32) ([]model.WaiverClaim, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE c.team=@team ORDER BY c.created DESC`,
		claimColumns, claimJoins)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing claims for team %d: %w", teamID, err)
	}
	return scanClaims(rows)
}

func (db *postgresDB) ListPendingClaims(ctx context.Context, leagueID int32) ([]model.WaiverClaim, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE c.league=@league AND c.status='pending'
		ORDER BY c.created`, claimColumns, claimJoins)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing pending claims for league %d: %w", leagueID, err)
	}
	return scanClaims(rows)
}

func scanClaims(rows pgx.Rows) ([]model.WaiverClaim, error) {
	claims := make([]model.WaiverClaim, 0, 8)
	for rows.Next() {
		var c model.WaiverClaim
		var status string
		var created, processed pgtype.Timestamptz
		err := rows.Scan(&c.ID, &c.LeagueID, &c.TeamID, &c.PlayerID, &c.DropPlayerID,
			&c.Priority, &status, &created, &processed,
			&c.PlayerName, &c.DropPlayerName)
		if err != nil {
			return nil, fmt.Errorf("error scanning waiver claim: %w", err)
		}
		c.Status = model.ParseClaimStatus(status)
		c.Created = created.Time
		c.Processed = processed.Time
		claims = append(claims, c)
	}
	return claims, nil
}

func (db *postgresDB) AddClaim(ctx context.Context, c *model.WaiverClaim) error {
	const query = `INSERT INTO waiver_claims (id, league, team, player, drop_player, priority, status, created)
		VALUES (@id, @league, @team, @player, @dropPlayer, @priority, 'pending', @created)`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Status = model.ClaimPending
	c.Created = db.clock.Now().UTC()

	var dropPlayer *string
	if c.DropPlayerID != "" {
		dropPlayer = &c.DropPlayerID
	}

	args := pgx.NamedArgs{
		"id":         c.ID,
		"league":     c.LeagueID,
		"team":       c.TeamID,
		"player":     c.PlayerID,
		"dropPlayer": dropPlayer,
		"priority":   c.Priority,
		"created": pgtype.Timestamptz{
			Time:             c.Created,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting waiver claim: %w", err)
	}
	return nil
}

func (db *postgresDB) CancelClaim(ctx context.Context, claimID uuid.UUID, teamID int32) error {
	const query = `UPDATE waiver_claims SET status='cancelled', processed=@now
		WHERE id=@id AND team=@team AND status='pending'`

	const exists = `SELECT status FROM waiver_claims WHERE id=@id AND team=@team`

	args := pgx.NamedArgs{
		"id":   claimID,
		"team": teamID,
		"now": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error cancelling claim %s: %w", claimID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated - figure out whether the claim is missing or was
	// already resolved so the caller can report the right failure.
	var status string
	err = db.pool.QueryRow(ctx, exists, pgx.NamedArgs{"id": claimID, "team": teamID}).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrClaimNotFound
		}
		return fmt.Errorf("error checking claim %s: %w", claimID, err)
	}
	return ErrClaimNotPending
}

func (db *postgresDB) ResolveClaim(ctx context.Context, c *model.WaiverClaim, status model.ClaimStatus) error {
	const update = `UPDATE waiver_claims SET status=@status, processed=@now
		WHERE id=@id AND status='pending'`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":     c.ID,
		"status": string(status),
		"now": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := tx.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating claim %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClaimNotPending
	}

	if status == model.ClaimProcessed {
		if err := addAndDrop(ctx, tx, now, c.LeagueID, c.TeamID, c.PlayerID, c.DropPlayerID, model.AcquiredWaiver); err != nil {
			return err
		}

		// The winning team goes to the back of the priority list.
		if err := moveToLastPriority(ctx, tx, c.LeagueID, c.TeamID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting claim resolution: %w", err)
	}

	c.Status = status
	c.Processed = now
	return nil
}

func (db *postgresDB) GetWaiverPriorities(ctx context.Context, leagueID int32) ([]model.WaiverPriority, error) {
	const query = `SELECT team, rank FROM waiver_priority WHERE league=@league ORDER BY rank`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing waiver priorities for league %d: %w", leagueID, err)
	}

	priorities := make([]model.WaiverPriority, 0, 12)
	for rows.Next() {
		var p model.WaiverPriority
		if err := rows.Scan(&p.TeamID, &p.Rank); err != nil {
			return nil, fmt.Errorf("error scanning waiver priority: %w", err)
		}
		priorities = append(priorities, p)
	}
	return priorities, nil
}

func (db *postgresDB) RepairWaiverPriorities(ctx context.Context, leagueID int32) error {
	// Teams without a priority row are appended in team id order, then the
	// whole list is re-packed to 1..N. Running it twice is a no-op.
	const appendMissing = `INSERT INTO waiver_priority (league, team, rank)
		SELECT t.league, t.id,
			(SELECT COALESCE(MAX(rank), 0) FROM waiver_priority WHERE league=@league)
				+ ROW_NUMBER() OVER (ORDER BY t.id)
		FROM teams t
		WHERE t.league=@league
			AND t.id NOT IN (SELECT team FROM waiver_priority WHERE league=@league)`

	const repack = `UPDATE waiver_priority wp
		SET rank = ranked.new_rank
		FROM (SELECT team, ROW_NUMBER() OVER (ORDER BY rank, team) AS new_rank
			FROM waiver_priority WHERE league=@league) ranked
		WHERE wp.league=@league AND wp.team = ranked.team`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"league": leagueID}
	if _, err := tx.Exec(ctx, appendMissing, args); err != nil {
		return fmt.Errorf("error appending missing waiver priorities: %w", err)
	}
	if _, err := tx.Exec(ctx, repack, args); err != nil {
		return fmt.Errorf("error repacking waiver priorities: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting waiver priority repair: %w", err)
	}
	return nil
}

func moveToLastPriority(ctx context.Context, tx pgx.Tx, leagueID, teamID int32) error {
	const demote = `UPDATE waiver_priority
		SET rank = (SELECT MAX(rank) + 1 FROM waiver_priority WHERE league=@league)
		WHERE league=@league AND team=@team`

	const repack = `UPDATE waiver_priority wp
		SET rank = ranked.new_rank
		FROM (SELECT team, ROW_NUMBER() OVER (ORDER BY rank, team) AS new_rank
			FROM waiver_priority WHERE league=@league) ranked
		WHERE wp.league=@league AND wp.team = ranked.team`

	args := pgx.NamedArgs{"league": leagueID, "team": teamID}
	if _, err := tx.Exec(ctx, demote, args); err != nil {
		return fmt.Errorf("error demoting team %d waiver priority: %w", teamID, err)
	}
	if _, err := tx.Exec(ctx, repack, args); err != nil {
		return fmt.Errorf("error repacking waiver priorities: %w", err)
	}
	return nil
}
