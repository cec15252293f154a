package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 handler 與 store 共用的查詢介面。
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session 是綁定單一請求的資料庫連線，用完必須 Release。
type Session interface {
	DB
	Release()
}

// Pool 是行程層級的連線池，每個請求透過 Acquire 取得自己的 Session。
type Pool interface {
	DB
	Acquire(ctx context.Context) (Session, error)
	Ping(ctx context.Context) error
	Close()
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

type FakeSession struct {
	FakeDB
	ReleaseFn func()
}

func (f *FakeSession) Release() {
	if f.ReleaseFn != nil {
		f.ReleaseFn()
	}
}

type FakePool struct {
	FakeDB
	AcquireFn func(ctx context.Context) (Session, error)
	PingFn    func(ctx context.Context) error
	CloseFn   func()
}

func (f *FakePool) Acquire(ctx context.Context) (Session, error) {
	if f.AcquireFn != nil {
		return f.AcquireFn(ctx)
	}
	panic("unexpected Acquire")
}

func (f *FakePool) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakePool) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
