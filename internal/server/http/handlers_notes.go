package httpserver

import (
	"errors"
	"net/http"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
)

const (
	msgNoteNotFound  = "Note not found or unauthorized"
	msgTitleRequired = "Title is required"
	msgTitleTooLong  = "Title must be at most 200 characters"
	msgTitleInvalid  = "Title contains invalid characters"
)

// titleMessage maps title validation errors to client messages.
func titleMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrTitleTooLong):
		return msgTitleTooLong, true
	case errors.Is(err, service.ErrTitleInvalid):
		return msgTitleInvalid, true
	case errors.Is(err, errs.ErrValidation):
		return msgTitleRequired, true
	}
	return "", false
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserIDFromCtx(r.Context())
	notes, err := s.notes.List(r.Context(), owner)
	if err != nil {
		s.serverFault(r, "list notes", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, toNoteDTOs(notes))
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var body resourceBody
	if err := parseJSON(w, r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgTitleRequired)
		return
	}

	owner, _ := UserIDFromCtx(r.Context())
	n, err := s.notes.Create(r.Context(), owner, body.title(), body.Completed)
	if err != nil {
		if msg, ok := titleMessage(err); ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}
		s.serverFault(r, "create note", err)
		writeMessage(w, http.StatusInternalServerError, "Error creating note")
		return
	}
	writeJSON(w, http.StatusCreated, toNoteDTO(*n))
}

// handleUpdateNote serves both PUT and PATCH; only provided fields change.
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeMessage(w, http.StatusNotFound, msgNoteNotFound)
		return
	}
	var body resourceBody
	if err := parseJSON(w, r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgTitleRequired)
		return
	}

	owner, _ := UserIDFromCtx(r.Context())
	n, err := s.notes.Update(r.Context(), owner, id, model.NotePatch{Title: body.Title, Completed: body.Completed})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgNoteNotFound)
			return
		}
		if msg, ok := titleMessage(err); ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}
		s.serverFault(r, "update note", err)
		writeMessage(w, http.StatusInternalServerError, "Error updating note")
		return
	}
	writeJSON(w, http.StatusOK, toNoteDTO(*n))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeMessage(w, http.StatusNotFound, msgNoteNotFound)
		return
	}

	owner, _ := UserIDFromCtx(r.Context())
	if err := s.notes.Delete(r.Context(), owner, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgNoteNotFound)
			return
		}
		s.serverFault(r, "delete note", err)
		writeMessage(w, http.StatusInternalServerError, "Error deleting note")
		return
	}
	writeMessage(w, http.StatusOK, "Note deleted successfully")
}
