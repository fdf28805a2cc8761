package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/repository"
)

// NoteService defines owner-scoped operations over notes.
type NoteService interface {
	// List returns the owner's notes, newest first. Never nil.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error)
	// Create stores a new note for the owner; completed defaults to false.
	Create(ctx context.Context, ownerID uuid.UUID, title string, completed *bool) (*model.Note, error)
	// Update patches a note the owner holds.
	Update(ctx context.Context, ownerID, id uuid.UUID, p model.NotePatch) (*model.Note, error)
	// Delete removes a note the owner holds.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type NoteServiceImpl struct {
	repo repository.NoteRepository
}

// NewNoteService constructs NoteService.
func NewNoteService(repo repository.NoteRepository) *NoteServiceImpl {
	return &NoteServiceImpl{repo: repo}
}

// List returns notes owned by ownerID.
func (s *NoteServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Create validates the title and stores the note under ownerID.
func (s *NoteServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, title string, completed *bool) (*model.Note, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	n := &model.Note{UserID: ownerID, Title: t}
	if completed != nil {
		n.Completed = *completed
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update validates the patch and applies it to the note matching (id, ownerID).
// Missing and foreign notes both yield errs.ErrNotFound.
func (s *NoteServiceImpl) Update(ctx context.Context, ownerID, id uuid.UUID, p model.NotePatch) (*model.Note, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if id == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	title, err := normalizeTitlePtr(p.Title)
	if err != nil {
		return nil, err
	}
	p.Title = title
	return s.repo.Update(ctx, ownerID, id, p)
}

// Delete removes the note matching (id, ownerID).
func (s *NoteServiceImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	if id == uuid.Nil {
		return errs.ErrNotFound
	}
	return s.repo.Delete(ctx, ownerID, id)
}
