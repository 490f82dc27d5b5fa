package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of a connection pool the readiness check needs
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// Config describes the session database connection
type Config struct {
	ConnString      string
	ApplicationName string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	// Migrate applies the embedded migrations before the pool is handed out
	Migrate bool
}

// NewPool connects to PostgreSQL, pings it and, when asked, brings the schema
// up to date. The pool is closed again on any failure.
func NewPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	pcfg.MaxConns = clampConns(cfg.MaxConns)
	pcfg.MinConns = min(DefaultMinConnections, pcfg.MaxConns)
	if cfg.MaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.ApplicationName != "" {
		pcfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = cfg.ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}
	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", pcfg.MaxConns)

	if cfg.Migrate {
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

// clampConns keeps the pool size within what pgxpool accepts
func clampConns(n int) int32 {
	switch {
	case n <= 0:
		return DefaultMaxConnections
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(n)
	}
}
