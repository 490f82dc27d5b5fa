package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GudGuns_Go/internal/database"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/testing/leaktest"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestPostgresStore_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("no rows", func(t *testing.T) {
		q := new(mockQuerier)
		q.On("QueryRow", ctx, queryGetSession, mock.Anything).Return(errRow{pgx.ErrNoRows})

		_, err := NewPostgresStore(q, time.Hour).Get(ctx, "id")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		q.AssertExpectations(t)
	})

	t.Run("query failure", func(t *testing.T) {
		q := new(mockQuerier)
		boom := errors.New("connection reset")
		q.On("QueryRow", ctx, queryGetSession, mock.Anything).Return(errRow{boom})

		_, err := NewPostgresStore(q, time.Hour).Get(ctx, "id")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("save failure", func(t *testing.T) {
		q := new(mockQuerier)
		boom := errors.New("disk full")
		q.On("Exec", ctx, queryUpsertSession, mock.Anything).Return(pgconn.CommandTag{}, boom)

		err := NewPostgresStore(q, time.Hour).Save(ctx, New())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), ErrMsgSaveFailed)
	})
}

func TestPostgresStore_RunCleanup(t *testing.T) {
	called := make(chan struct{}, 1)
	q := new(mockQuerier)
	q.On("Exec", mock.Anything, queryDeleteExpired, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return(pgconn.NewCommandTag("DELETE 2"), nil)

	leaktest.CheckNoGoroutineLeak(t, time.Second, func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewPostgresStore(q, time.Hour).RunCleanup(ctx, 5*time.Millisecond)
			close(done)
		}()

		select {
		case <-called:
		case <-time.After(time.Second):
			t.Error("cleanup never ran")
		}

		cancel()
		<-done
	})
}

func TestPostgresStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	connStr, terminate := startPostgres(ctx)
	defer terminate()
	if connStr == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := database.NewPool(ctx, database.Config{ConnString: connStr, MaxConns: 5, Migrate: true})
	require.NoError(t, err)
	defer pool.Close()

	store := NewPostgresStore(pool, time.Hour)

	s := New()
	s.Login(&domain.Token{
		AccessToken: "abc",
		Raw:         map[string]any{"membership_id": "987", "expires_in": float64(3600)},
	}, &domain.Membership{MembershipType: 3, MembershipID: "987"})
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Token.AccessToken)
	assert.Equal(t, "987", got.Token.Raw["membership_id"])
	assert.Equal(t, 3, got.Membership.MembershipType)

	// Upsert replaces the payload
	got.Login(&domain.Token{AccessToken: "xyz"}, nil)
	require.NoError(t, store.Save(ctx, got))
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "xyz", again.Token.AccessToken)
	assert.Nil(t, again.Membership)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	expiring := NewPostgresStore(pool, -time.Minute)
	old := New()
	require.NoError(t, expiring.Save(ctx, old))
	_, err = store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound, "expired rows are invisible")

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}

func startPostgres(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic starting postgres: %v\n", r)
			connStr = ""
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return "", terminate
	}
	return connStr, func() { container.Terminate(ctx) }
}
