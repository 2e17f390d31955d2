package writer

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"ballsim/internal/game"
)

const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id     TEXT PRIMARY KEY,
	seed        BIGINT NOT NULL,
	team1       TEXT NOT NULL,
	team2       TEXT NOT NULL,
	team1_score INT NOT NULL,
	team2_score INT NOT NULL,
	winner      TEXT,
	at_bats     INT NOT NULL,
	played_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS game_innings (
	game_id TEXT NOT NULL REFERENCES games(game_id),
	team    TEXT NOT NULL,
	inning  INT NOT NULL,
	runs    INT NOT NULL,
	PRIMARY KEY (game_id, team, inning)
);`

// ResultWriter stores final scores and line scores in Postgres.
type ResultWriter struct {
	db *sql.DB
}

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	return db, nil
}

func NewResultWriter(db *sql.DB) *ResultWriter {
	return &ResultWriter{db: db}
}

func (w *ResultWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// WriteResult inserts the game row and one row per team per inning.
func (w *ResultWriter) WriteResult(ctx context.Context, res game.SimResult) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (game_id, seed, team1, team2, team1_score, team2_score, winner, at_bats)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`,
		res.GameID, res.Seed, res.Team1, res.Team2,
		res.Team1Score, res.Team2Score, res.Winner, res.AtBats,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	for _, row := range inningRows(res) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO game_innings (game_id, team, inning, runs) VALUES ($1, $2, $3, $4)`,
			res.GameID, row.team, row.inning, row.runs,
		)
		if err != nil {
			return fmt.Errorf("failed to insert inning %d for %s: %w", row.inning, row.team, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type inningRow struct {
	team   string
	inning int
	runs   int
}

func inningRows(res game.SimResult) []inningRow {
	rows := make([]inningRow, 0, len(res.LineScore.Team1)+len(res.LineScore.Team2))
	for i, r := range res.LineScore.Team1 {
		rows = append(rows, inningRow{team: res.Team1, inning: i + 1, runs: r})
	}
	for i, r := range res.LineScore.Team2 {
		rows = append(rows, inningRow{team: res.Team2, inning: i + 1, runs: r})
	}
	return rows
}
