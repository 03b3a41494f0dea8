package db

import (
	"context"
	"fmt"

	"github.com/Gstormsfh/citrus_league/model"
	"github.com/jackc/pgx/v5"
)

func (db *postgresDB) SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	const query = `INSERT INTO matchups (league, week, team_a, team_b, score_a, score_b, status, playoff_round)
		VALUES (@league, @week, @teamA, @teamB, @scoreA, @scoreB, @status, @playoffRound)
		RETURNING id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range matchups {
		m := &matchups[i]
		var teamB *int32
		var scoreB int32
		if m.TeamB != nil {
			teamB = &m.TeamB.TeamID
			scoreB = m.TeamB.Score
		}

		args := pgx.NamedArgs{
			"league":       leagueID,
			"week":         m.Week,
			"teamA":        m.TeamA.TeamID,
			"teamB":        teamB,
			"scoreA":       m.TeamA.Score,
			"scoreB":       scoreB,
			"status":       string(m.Status),
			"playoffRound": m.PlayoffRound,
		}
		if err := tx.QueryRow(ctx, query, args).Scan(&m.MatchupID); err != nil {
			return fmt.Errorf("error inserting matchup: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting matchup results: %w", err)
	}
	return nil
}

const matchupQuery = `SELECT m.id, m.week, m.status, m.playoff_round,
		m.team_a, ta.name, m.score_a,
		m.team_b, tb.name, m.score_b
	FROM matchups m
	JOIN teams ta ON ta.id = m.team_a
	LEFT JOIN teams tb ON tb.id = m.team_b`

func (db *postgresDB) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	query := matchupQuery + ` WHERE m.league=@league AND m.week=@week ORDER BY m.id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID, "week": week})
	if err != nil {
		return nil, fmt.Errorf("error listing matchups for league %d week %d: %w", leagueID, week, err)
	}
	return scanMatchups(rows)
}

func (db *postgresDB) GetAllResults(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	query := matchupQuery + ` WHERE m.league=@league AND m.status='final' ORDER BY m.week, m.id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing results for league %d: %w", leagueID, err)
	}
	return scanMatchups(rows)
}

func (db *postgresDB) GetPlayoffMatchups(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	query := matchupQuery + ` WHERE m.league=@league AND m.playoff_round > 0 ORDER BY m.playoff_round, m.id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing playoff matchups for league %d: %w", leagueID, err)
	}
	return scanMatchups(rows)
}

func scanMatchups(rows pgx.Rows) ([]model.Matchup, error) {
	matchups := make([]model.Matchup, 0, 8)
	for rows.Next() {
		var m model.Matchup
		var status string
		a := &model.TeamResult{}
		var bID *int32
		var bName *string
		var bScore int32
		err := rows.Scan(&m.MatchupID, &m.Week, &status, &m.PlayoffRound,
			&a.TeamID, &a.TeamName, &a.Score,
			&bID, &bName, &bScore)
		if err != nil {
			return nil, fmt.Errorf("error scanning matchup: %w", err)
		}

		m.Status = model.MatchupStatus(status)
		m.TeamA = a
		if bID != nil {
			b := &model.TeamResult{TeamID: *bID, Score: bScore}
			if bName != nil {
				b.TeamName = *bName
			}
			m.TeamB = b
		}
		matchups = append(matchups, m)
	}
	return matchups, nil
}
