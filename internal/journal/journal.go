package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"manifold-sniper/internal/config"
	"manifold-sniper/internal/reactor"
)

const schema = `
CREATE TABLE IF NOT EXISTS reactions (
    id          UUID PRIMARY KEY,
    market_id   TEXT NOT NULL,
    question    TEXT NOT NULL,
    url         TEXT NOT NULL,
    prob        DOUBLE PRECISION NOT NULL,
    amount      DOUBLE PRECISION NOT NULL,
    status      TEXT NOT NULL,
    error       TEXT NOT NULL DEFAULT '',
    started_at  TIMESTAMPTZ NOT NULL,
    finished_at TIMESTAMPTZ NOT NULL
)`

const insertReaction = `
INSERT INTO reactions (id, market_id, question, url, prob, amount, status, error, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Journal writes reaction results to the reactions table.
type Journal struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects to Postgres, verifies the connection, and ensures the
// reactions table exists.
func Open(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Journal, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Journal{pool: pool, logger: logger}, nil
}

// Record inserts one reaction row.
func (j *Journal) Record(ctx context.Context, res reactor.ReactionResult) error {
	_, err := j.pool.Exec(ctx, insertReaction,
		res.ID,
		res.MarketID,
		res.Question,
		res.URL,
		res.Prob,
		res.Amount,
		string(res.Status),
		res.Err,
		res.StartedAt,
		res.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reaction: %w", err)
	}

	j.logger.Debug("reaction journaled", "reaction_id", res.ID, "status", res.Status)
	return nil
}

// Close releases the connection pool.
func (j *Journal) Close() {
	if j.pool != nil {
		j.pool.Close()
	}
}
