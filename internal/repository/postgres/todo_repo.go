package postgres

import (
	"context"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// TodoRepo implements TodoRepository using PostgreSQL.
type TodoRepo struct{ db *DB }

// NewTodoRepo constructs a todo repository.
func NewTodoRepo(db *DB) *TodoRepo { return &TodoRepo{db: db} }

const todoColumns = `id, title, completed, created_at, updated_at`

func scanTodo(row pgx.Row) (*model.Todo, error) {
	var t model.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all todos, newest first.
func (r *TodoRepo) List(ctx context.Context) ([]model.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// Get returns a single todo by id.
func (r *TodoRepo) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE id=$1`
	t, err := scanTodo(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Create inserts a todo row.
func (r *TodoRepo) Create(ctx context.Context, t *model.Todo) error {
	const q = `
INSERT INTO todos (title, completed)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	return r.db.Pool.QueryRow(ctx, q, t.Title, t.Completed).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Replace overwrites every mutable field of a todo.
func (r *TodoRepo) Replace(ctx context.Context, id uuid.UUID, title string, completed bool) (*model.Todo, error) {
	const q = `
UPDATE todos
SET title = $2, completed = $3, updated_at = now()
WHERE id=$1
RETURNING ` + todoColumns
	t, err := scanTodo(r.db.Pool.QueryRow(ctx, q, id, title, completed))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Patch updates only the provided fields.
func (r *TodoRepo) Patch(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error) {
	const q = `
UPDATE todos
SET title = COALESCE($2, title), completed = COALESCE($3, completed), updated_at = now()
WHERE id=$1
RETURNING ` + todoColumns
	t, err := scanTodo(r.db.Pool.QueryRow(ctx, q, id, p.Title, p.Completed))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Delete removes a todo by id.
func (r *TodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM todos WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
