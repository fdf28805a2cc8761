package repository

import (
	"context"

	"github.com/and161185/notes-api/internal/model"
	"github.com/gofrs/uuid/v5"
)

// TodoRepository provides unscoped access to todos.
type TodoRepository interface {
	// List returns all todos, newest first.
	List(ctx context.Context) ([]model.Todo, error)
	// Get loads a todo by id.
	Get(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	// Create inserts a todo and fills store-assigned fields.
	Create(ctx context.Context, t *model.Todo) error
	// Replace overwrites title and completed.
	Replace(ctx context.Context, id uuid.UUID, title string, completed bool) (*model.Todo, error)
	// Patch updates only the fields set in p.
	Patch(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error)
	// Delete removes a todo by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
