package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	const query = `SELECT id, email, display_name, favorite_team, email_verified, created, updated
		FROM profiles WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	return scanProfile(row)
}

func (db *postgresDB) GetProfiles(ctx context.Context, ids []string) (map[string]model.Profile, error) {
	const query = `SELECT id, email, display_name, favorite_team, email_verified, created, updated
		FROM profiles WHERE id = ANY(@ids)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}

	profiles := make(map[string]model.Profile, len(ids))
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles[p.ID] = *p
	}
	return profiles, nil
}

func (db *postgresDB) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	const query = `SELECT id, email, display_name, favorite_team, email_verified, created, updated
		FROM profiles WHERE email=@email`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"email": email})
	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var result model.Profile
	var team DBNHLTeam
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Email,
		&result.DisplayName,
		&team,
		&result.EmailVerified,
		&created,
		&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error scanning profile: %w", err)
	}

	result.FavoriteTeam = team.team
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}

func (db *postgresDB) SaveProfile(ctx context.Context, p *model.Profile) error {
	const query = `INSERT INTO profiles (id, email, display_name, favorite_team, email_verified)
		VALUES (@id, @email, @displayName, @favoriteTeam, @emailVerified)
		ON CONFLICT (id) DO UPDATE
			SET email=@email,
				display_name=@displayName,
				favorite_team=@favoriteTeam,
				email_verified=@emailVerified,
				updated=@updated`

	fav := model.TEAM_FA
	if p.FavoriteTeam != nil {
		fav = p.FavoriteTeam
	}

	args := pgx.NamedArgs{
		"id":            p.ID,
		"email":         p.Email,
		"displayName":   p.DisplayName,
		"favoriteTeam":  &DBNHLTeam{team: fav},
		"emailVerified": p.EmailVerified,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving profile (%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) CreateVerificationToken(ctx context.Context, profileID string, expiry time.Time) (*model.VerificationToken, error) {
	const query = `INSERT INTO verification_tokens (token, profile, expiry)
		VALUES (@token, @profile, @expiry)`

	t := &model.VerificationToken{
		Token:     uuid.New(),
		ProfileID: profileID,
		Expiry:    expiry,
	}

	args := pgx.NamedArgs{
		"token":   t.Token,
		"profile": t.ProfileID,
		"expiry": pgtype.Timestamptz{
			Time:             t.Expiry,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return nil, fmt.Errorf("error creating verification token: %w", err)
	}
	return t, nil
}

func (db *postgresDB) ConsumeVerificationToken(ctx context.Context, token uuid.UUID) (*model.Profile, error) {
	const del = `DELETE FROM verification_tokens
		WHERE token=@token AND expiry > @now
		RETURNING profile`

	const verify = `UPDATE profiles SET email_verified=TRUE, updated=@updated WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := db.clock.Now().UTC()
	var profileID string
	err = tx.QueryRow(ctx, del, pgx.NamedArgs{
		"token": token,
		"now": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}).Scan(&profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("error consuming verification token: %w", err)
	}

	_, err = tx.Exec(ctx, verify, pgx.NamedArgs{
		"id": profileID,
		"updated": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error marking email verified: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting verification: %w", err)
	}

	return db.GetProfile(ctx, profileID)
}

func (db *postgresDB) DeleteAccount(ctx context.Context, profileID string) error {
	// Ordered so that nothing references a row before it is removed. The
	// whole cascade commits or rolls back together.
	statements := []string{
		`DELETE FROM waiver_claims WHERE team IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM waiver_priority WHERE team IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM team_lineups WHERE team IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM rosters WHERE team IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM draft_picks WHERE team IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM matchups WHERE team_a IN (SELECT id FROM teams WHERE owner=@id)
			OR team_b IN (SELECT id FROM teams WHERE owner=@id)`,
		`DELETE FROM teams WHERE owner=@id`,
		`DELETE FROM verification_tokens WHERE profile=@id`,
		`DELETE FROM profiles WHERE id=@id`,
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": profileID}
	for _, s := range statements {
		if _, err := tx.Exec(ctx, s, args); err != nil {
			return fmt.Errorf("error deleting account %s: %w", profileID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting account deletion: %w", err)
	}
	return nil
}
