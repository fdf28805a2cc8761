package postgres

import (
	"context"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

const noteColumns = `id, user_id, title, completed, created_at, updated_at`

func scanNote(row pgx.Row) (*model.Note, error) {
	var n model.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Completed, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByOwner returns the owner's notes ordered by creation time, newest first.
func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	const q = `
SELECT ` + noteColumns + `
FROM notes
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// Create inserts a note row.
func (r *NoteRepo) Create(ctx context.Context, n *model.Note) error {
	const q = `
INSERT INTO notes (user_id, title, completed)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	return r.db.Pool.QueryRow(ctx, q, n.UserID, n.Title, n.Completed).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update patches a note in one filtered statement on (id, user_id), so ownership
// is checked and the write applied atomically.
func (r *NoteRepo) Update(ctx context.Context, ownerID, id uuid.UUID, p model.NotePatch) (*model.Note, error) {
	const q = `
UPDATE notes
SET title = COALESCE($3, title), completed = COALESCE($4, completed), updated_at = now()
WHERE id=$1 AND user_id=$2
RETURNING ` + noteColumns
	n, err := scanNote(r.db.Pool.QueryRow(ctx, q, id, ownerID, p.Title, p.Completed))
	if err != nil {
		return nil, notFound(err)
	}
	return n, nil
}

// Delete removes a note matching both id and owner.
func (r *NoteRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `DELETE FROM notes WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
