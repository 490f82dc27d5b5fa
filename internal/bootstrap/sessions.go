package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GudGuns_Go/internal/config"
	"github.com/osse101/GudGuns_Go/internal/database"
	"github.com/osse101/GudGuns_Go/internal/session"
)

// Sessions is the session backend selected by configuration
type Sessions struct {
	Manager *session.Manager
	// Pool is nil unless sessions live in Postgres
	Pool *pgxpool.Pool

	stopCleanup context.CancelFunc
}

// SetupSessions builds the session store named by SESSION_STORE and the
// cookie manager on top of it. Postgres stores are migrated before use.
func SetupSessions(ctx context.Context, cfg *config.Config) (*Sessions, error) {
	out := &Sessions{stopCleanup: func() {}}

	var store session.Store
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		store = session.NewMemoryStore(cfg.SessionCacheSize, cfg.SessionTTL)

	case config.SessionStorePostgres:
		pool, err := database.NewPool(ctx, database.Config{
			ConnString:      cfg.GetDBConnString(),
			ApplicationName: cfg.ServiceName,
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: dbMaxConnIdleTime,
			MaxConnLifetime: dbMaxConnLifetime,
			Migrate:         true,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
		}

		pg := session.NewPostgresStore(pool, cfg.SessionTTL)
		cleanupCtx, cancel := context.WithCancel(context.Background())
		go pg.RunCleanup(cleanupCtx, session.DefaultCleanupInterval)

		out.Pool = pool
		out.stopCleanup = cancel
		store = pg

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStore, cfg.SessionStore)
	}

	mgr, err := session.NewManager(store, session.ManagerConfig{
		Secret: []byte(cfg.SecretKey),
		TTL:    cfg.SessionTTL,
		Issuer: cfg.ServiceName,
		Secure: !cfg.IsDevelopment(),
	})
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateManager, err)
	}
	out.Manager = mgr

	slog.Info(LogMsgSessionStoreReady, "store", cfg.SessionStore, "ttl", cfg.SessionTTL)
	return out, nil
}

// ReadinessPool returns the pool to ping for readiness, or nil
func (s *Sessions) ReadinessPool() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close stops background cleanup and releases the database pool
func (s *Sessions) Close() {
	s.stopCleanup()
	if s.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		s.Pool.Close()
	}
}
