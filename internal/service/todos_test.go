package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/repository"
)

type fakeTodoRepo struct {
	created *model.Todo

	replaceID    uuid.UUID
	replaceTitle string
	replaceDone  bool

	patchID uuid.UUID
	patchIn model.TodoPatch

	out    *model.Todo
	list   []model.Todo
	err    error
	called bool
}

var _ repository.TodoRepository = (*fakeTodoRepo)(nil)

func (f *fakeTodoRepo) List(context.Context) ([]model.Todo, error) {
	f.called = true
	return f.list, f.err
}
func (f *fakeTodoRepo) Get(_ context.Context, id uuid.UUID) (*model.Todo, error) {
	f.called = true
	return f.out, f.err
}
func (f *fakeTodoRepo) Create(_ context.Context, t *model.Todo) error {
	f.called = true
	f.created = t
	return f.err
}
func (f *fakeTodoRepo) Replace(_ context.Context, id uuid.UUID, title string, completed bool) (*model.Todo, error) {
	f.called = true
	f.replaceID, f.replaceTitle, f.replaceDone = id, title, completed
	return f.out, f.err
}
func (f *fakeTodoRepo) Patch(_ context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error) {
	f.called = true
	f.patchID, f.patchIn = id, p
	return f.out, f.err
}
func (f *fakeTodoRepo) Delete(context.Context, uuid.UUID) error {
	f.called = true
	return f.err
}

func TestTodoService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeTodoRepo{}
	s := NewTodoService(repo)

	if _, err := s.Create(ctx, "", nil); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("want ErrTitleRequired, got %v", err)
	}
	if repo.called {
		t.Fatalf("repo reached on invalid title")
	}

	td, err := s.Create(ctx, " walk dog ", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if td.Title != "walk dog" || td.Completed {
		t.Fatalf("bad todo: %+v", td)
	}

	td, err = s.Create(ctx, "x", ptr(true))
	if err != nil || !td.Completed {
		t.Fatalf("Create completed: %+v, %v", td, err)
	}
}

func TestTodoService_List_NeverNil(t *testing.T) {
	t.Parallel()
	s := NewTodoService(&fakeTodoRepo{})
	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil {
		t.Fatalf("want empty slice, got nil")
	}
}

func TestTodoService_Replace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	repo := &fakeTodoRepo{out: &model.Todo{ID: id}}
	s := NewTodoService(repo)

	if _, err := s.Replace(ctx, id, "new", nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if repo.replaceID != id || repo.replaceTitle != "new" || repo.replaceDone {
		t.Fatalf("omitted completed should reset to false: %+v", repo)
	}

	if _, err := s.Replace(ctx, id, "new", ptr(true)); err != nil || !repo.replaceDone {
		t.Fatalf("Replace completed=true: %v", err)
	}

	if _, err := s.Replace(ctx, id, "  ", ptr(true)); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	if _, err := s.Replace(ctx, uuid.Nil, "x", nil); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("nil id: want ErrNotFound, got %v", err)
	}
}

func TestTodoService_Patch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	repo := &fakeTodoRepo{out: &model.Todo{ID: id}}
	s := NewTodoService(repo)

	if _, err := s.Patch(ctx, id, model.TodoPatch{Completed: ptr(true)}); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if repo.patchIn.Title != nil || repo.patchIn.Completed == nil || !*repo.patchIn.Completed {
		t.Fatalf("patch forwarded incorrectly: %+v", repo.patchIn)
	}

	if _, err := s.Patch(ctx, id, model.TodoPatch{Title: ptr(" trimmed ")}); err != nil {
		t.Fatalf("Patch title: %v", err)
	}
	if *repo.patchIn.Title != "trimmed" {
		t.Fatalf("title not normalized: %q", *repo.patchIn.Title)
	}

	if _, err := s.Patch(ctx, id, model.TodoPatch{Title: ptr("")}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("want ErrTitleRequired, got %v", err)
	}
}

func TestTodoService_NotFoundPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	s := NewTodoService(&fakeTodoRepo{err: errs.ErrNotFound})

	if _, err := s.Get(ctx, id); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Get: %v", err)
	}
	if _, err := s.Replace(ctx, id, "x", nil); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := s.Patch(ctx, id, model.TodoPatch{}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Patch: %v", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, uuid.Nil); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Delete nil: %v", err)
	}
}
