package repository

import (
	"context"

	"github.com/and161185/notes-api/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NoteRepository provides owner-scoped access to notes. Every method filters on the owner,
// so a note owned by someone else behaves exactly like a missing one.
type NoteRepository interface {
	// ListByOwner returns the owner's notes, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error)
	// Create inserts a note and fills store-assigned fields.
	Create(ctx context.Context, n *model.Note) error
	// Update applies the patch to the note matching both id and owner.
	Update(ctx context.Context, ownerID, id uuid.UUID, p model.NotePatch) (*model.Note, error)
	// Delete removes the note matching both id and owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
