package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool used by PostgresStore
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	queryGetSession = `SELECT data FROM sessions WHERE id = $1 AND expires_at > NOW()`

	queryUpsertSession = `
		INSERT INTO sessions (id, data, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW(), expires_at = EXCLUDED.expires_at`

	queryDeleteSession = `DELETE FROM sessions WHERE id = $1`

	queryDeleteExpired = `DELETE FROM sessions WHERE expires_at <= NOW()`
)

// PostgresStore keeps sessions in the sessions table as JSONB
type PostgresStore struct {
	db  Querier
	ttl time.Duration
}

// NewPostgresStore creates a store whose rows expire after ttl
func NewPostgresStore(db Querier, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

// Get loads a live session by id
func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	var data []byte
	err := p.db.QueryRow(ctx, queryGetSession, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	return &s, nil
}

// Save upserts the session and pushes its expiry forward
func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}

	if _, err := p.db.Exec(ctx, queryUpsertSession, s.ID, data, s.CreatedAt, time.Now().Add(p.ttl)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}
	return nil
}

// Delete removes the session row
func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := p.db.Exec(ctx, queryDeleteSession, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	return nil
}

// DeleteExpired purges rows past their expiry and returns how many were removed
func (p *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := p.db.Exec(ctx, queryDeleteExpired)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	return tag.RowsAffected(), nil
}

// RunCleanup prunes expired sessions every interval until ctx is done
func (p *PostgresStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Default().Warn(LogMsgPruneFailed, "error", err)
				}
				continue
			}
			if n > 0 {
				slog.Default().Info(LogMsgSessionsPruned, "count", n)
			}
		}
	}
}
