package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlayerNotFound  error = errors.New("player not found")
	ErrProfileNotFound error = errors.New("profile not found")
	ErrLeagueNotFound  error = errors.New("league not found")
	ErrTeamNotFound    error = errors.New("team not found")
	ErrTokenNotFound   error = errors.New("verification token not found or expired")
	ErrClaimNotFound   error = errors.New("waiver claim not found")
	ErrClaimNotPending error = errors.New("waiver claim is no longer pending")
	ErrPlayerOwned     error = errors.New("player is already on a roster in this league")
	ErrPlayerNotOwned  error = errors.New("player is not on the team's roster")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}
