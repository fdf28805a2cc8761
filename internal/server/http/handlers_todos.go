package httpserver

import (
	"errors"
	"net/http"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
)

const (
	msgInvalidID    = "Invalid ID"
	msgTodoNotFound = "Todo not found"
	msgTodoUpdate   = "Failed to update todo"
)

func todoID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
	}
	return id, ok
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todos.List(r.Context())
	if err != nil {
		s.serverFault(r, "list todos", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch todos")
		return
	}
	writeJSON(w, http.StatusOK, toTodoDTOs(todos))
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	t, err := s.todos.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTodoNotFound)
			return
		}
		s.serverFault(r, "get todo", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch todo")
		return
	}
	writeJSON(w, http.StatusOK, toTodoDTO(*t))
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var body resourceBody
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, msgTitleRequired)
		return
	}
	t, err := s.todos.Create(r.Context(), body.title(), body.Completed)
	if err != nil {
		if msg, ok := titleMessage(err); ok {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		s.serverFault(r, "create todo", err)
		writeError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}
	writeJSON(w, http.StatusCreated, toTodoDTO(*t))
}

// handleReplaceTodo overwrites title and completed; an omitted completed resets to false.
func (s *Server) handleReplaceTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	var body resourceBody
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, msgTodoUpdate)
		return
	}
	t, err := s.todos.Replace(r.Context(), id, body.title(), body.Completed)
	s.writeTodoUpdate(w, r, t, err)
}

func (s *Server) handlePatchTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	var body resourceBody
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, msgTodoUpdate)
		return
	}
	t, err := s.todos.Patch(r.Context(), id, model.TodoPatch{Title: body.Title, Completed: body.Completed})
	s.writeTodoUpdate(w, r, t, err)
}

func (s *Server) writeTodoUpdate(w http.ResponseWriter, r *http.Request, t *model.Todo, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toTodoDTO(*t))
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, msgTodoNotFound)
	case errors.Is(err, errs.ErrValidation):
		writeError(w, http.StatusBadRequest, msgTodoUpdate)
	default:
		s.serverFault(r, "update todo", err)
		writeError(w, http.StatusInternalServerError, msgTodoUpdate)
	}
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	if err := s.todos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTodoNotFound)
			return
		}
		s.serverFault(r, "delete todo", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted"})
}
