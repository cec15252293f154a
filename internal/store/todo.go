package store

import (
	"context"
	"fmt"

	"todo-service/internal/database"
	"todo-service/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListTodos(ctx context.Context, db database.DB) ([]model.Todo, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, priority, complete
		 FROM todos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Priority,
			&t.Complete,
		); err != nil {
			return nil, fmt.Errorf("ListTodos: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTodos: %w", err)
	}
	return todos, nil
}

func GetTodoByID(ctx context.Context, db database.DB, todoID int) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, priority, complete
		 FROM todos WHERE id = $1`,
		todoID,
	)
	t := &model.Todo{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.Complete,
	); err != nil {
		return nil, fmt.Errorf("GetTodoByID: %w", err)
	}
	return t, nil
}

func CreateTodo(ctx context.Context, db database.DB, t *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (title, description, priority, complete)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Title,
		t.Description,
		t.Priority,
		t.Complete,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return t, nil
}

func UpdateTodo(ctx context.Context, db database.DB, t *model.Todo) error {
	tag, err := db.Exec(ctx,
		`UPDATE todos SET title = $1, description = $2, priority = $3, complete = $4
		 WHERE id = $5`,
		t.Title,
		t.Description,
		t.Priority,
		t.Complete,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTodo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTodo: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTodo(ctx context.Context, db database.DB, todoID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1`,
		todoID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTodo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTodo: %w", pgx.ErrNoRows)
	}
	return nil
}
