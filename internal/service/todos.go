package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/repository"
)

// TodoService defines unscoped operations over todos. Any caller may touch any todo.
type TodoService interface {
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	// Create requires a title; completed defaults to false.
	Create(ctx context.Context, title string, completed *bool) (*model.Todo, error)
	// Replace overwrites all fields; an omitted completed resets to false.
	Replace(ctx context.Context, id uuid.UUID, title string, completed *bool) (*model.Todo, error)
	// Patch changes only the set fields.
	Patch(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TodoServiceImpl struct {
	repo repository.TodoRepository
}

// NewTodoService constructs TodoService.
func NewTodoService(repo repository.TodoRepository) *TodoServiceImpl {
	return &TodoServiceImpl{repo: repo}
}

// List returns all todos, newest first. Never nil.
func (s *TodoServiceImpl) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// Get fetches a single todo by id.
func (s *TodoServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	if id == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Create validates and stores a todo.
func (s *TodoServiceImpl) Create(ctx context.Context, title string, completed *bool) (*model.Todo, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	td := &model.Todo{Title: t}
	if completed != nil {
		td.Completed = *completed
	}
	if err := s.repo.Create(ctx, td); err != nil {
		return nil, err
	}
	return td, nil
}

// Replace validates and overwrites a todo.
func (s *TodoServiceImpl) Replace(ctx context.Context, id uuid.UUID, title string, completed *bool) (*model.Todo, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	done := completed != nil && *completed
	return s.repo.Replace(ctx, id, t, done)
}

// Patch validates the set fields and applies them.
func (s *TodoServiceImpl) Patch(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error) {
	title, err := normalizeTitlePtr(p.Title)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	p.Title = title
	return s.repo.Patch(ctx, id, p)
}

// Delete removes a todo by id.
func (s *TodoServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
