package store

import (
	"context"
	"errors"
	"testing"

	"todo-service/internal/database"
	"todo-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeTodoRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeTodoRow struct {
	scanErr error
	todo    *model.Todo
}

func (r *fakeTodoRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	d := r.todo
	switch len(dest) {
	case 5:
		// GetTodoByID
		*dest[0].(*int) = d.ID
		*dest[1].(*string) = d.Title
		*dest[2].(*string) = d.Description
		*dest[3].(*int) = d.Priority
		*dest[4].(*bool) = d.Complete
	case 1:
		// CreateTodo: id
		*dest[0].(*int) = d.ID
	default:
		panic("fakeTodoRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeTodoRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeTodoRows struct {
	data    []model.Todo
	idx     int
	scanErr error
	err     error
}

func (r *fakeTodoRows) Close()                                       {}
func (r *fakeTodoRows) Err() error                                   { return r.err }
func (r *fakeTodoRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeTodoRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeTodoRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeTodoRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	d := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = d.ID
	*dest[1].(*string) = d.Title
	*dest[2].(*string) = d.Description
	*dest[3].(*int) = d.Priority
	*dest[4].(*bool) = d.Complete
	return nil
}
func (r *fakeTodoRows) Values() ([]any, error) { return nil, nil }
func (r *fakeTodoRows) RawValues() [][]byte    { return nil }
func (r *fakeTodoRows) Conn() *pgx.Conn        { return nil }

func TestListTodos(t *testing.T) {
	data := []model.Todo{
		{ID: 1, Title: "a", Description: "d1", Priority: 1, Complete: false},
		{ID: 2, Title: "b", Description: "d2", Priority: 5, Complete: true},
	}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeTodoRows{data: data}, nil
			},
		}
		got, err := ListTodos(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, data, got)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListTodos(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeTodoRows{data: data, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListTodos(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeTodoRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListTodos(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetTodoByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := &model.Todo{ID: 4, Title: "a", Description: "d", Priority: 2, Complete: true}
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeTodoRow{todo: want}
			},
		}
		got, err := GetTodoByID(context.Background(), db, 4)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, []any{4}, gotArgs)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeTodoRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetTodoByID(context.Background(), db, 99)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestCreateTodo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeTodoRow{todo: &model.Todo{ID: 9}}
			},
		}
		got, err := CreateTodo(context.Background(), db, &model.Todo{
			Title:       "a",
			Description: "d",
			Priority:    3,
		})
		require.NoError(t, err)
		require.Equal(t, 9, got.ID)
		require.Equal(t, []any{"a", "d", 3, false}, gotArgs)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeTodoRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateTodo(context.Background(), db, &model.Todo{Title: "a"})
		require.Error(t, err)
	})
}

func TestUpdateTodo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		err := UpdateTodo(context.Background(), db, &model.Todo{
			ID:       4,
			Title:    "a",
			Priority: 2,
			Complete: true,
		})
		require.NoError(t, err)
		require.Equal(t, []any{"a", "", 2, true, 4}, gotArgs)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, UpdateTodo(context.Background(), db, &model.Todo{ID: 4}))
	})

	t.Run("no rows affected", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateTodo(context.Background(), db, &model.Todo{ID: 99})
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestDeleteTodo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteTodo(context.Background(), db, 4))
		require.Equal(t, []any{4}, gotArgs)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, DeleteTodo(context.Background(), db, 4))
	})

	t.Run("no rows affected", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		err := DeleteTodo(context.Background(), db, 99)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
