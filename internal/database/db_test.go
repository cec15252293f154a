package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })

	execCalled := false
	queryCalled := false
	rowCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return fakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return pgx.Row(fakeRows{})
	}

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")

	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
}

func TestFakeSession(t *testing.T) {
	sess := &FakeSession{}
	sess.Release() // ReleaseFn 未設定時為 no-op

	released := false
	sess.ReleaseFn = func() { released = true }
	sess.Release()
	require.True(t, released)
}

func TestFakePool(t *testing.T) {
	pool := &FakePool{}
	require.Panics(t, func() { pool.Acquire(context.Background()) })
	require.Panics(t, func() { pool.Ping(context.Background()) })
	pool.Close()

	sess := &FakeSession{}
	acquired := false
	pinged := false
	closed := false

	pool.AcquireFn = func(ctx context.Context) (Session, error) {
		acquired = true
		return sess, nil
	}
	pool.PingFn = func(ctx context.Context) error { pinged = true; return nil }
	pool.CloseFn = func() { closed = true }

	got, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.Same(t, sess, got)
	require.NoError(t, pool.Ping(context.Background()))
	pool.Close()

	require.True(t, acquired)
	require.True(t, pinged)
	require.True(t, closed)
}
