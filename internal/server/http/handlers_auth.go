package httpserver

import (
	"errors"
	"net/http"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := parseJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields required")
		return
	}

	u, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrFieldsRequired):
		writeMessage(w, http.StatusBadRequest, "All fields required")
		return
	case errors.Is(err, service.ErrPasswordTooLong):
		writeMessage(w, http.StatusBadRequest, "Password must be at most 72 bytes")
		return
	case errors.Is(err, errs.ErrAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	default:
		s.serverFault(r, "register", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Registered successfully",
		"user":    toUserDTO(u),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	tok, u, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.serverFault(r, "login", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": tok.AccessToken,
		"user":  toUserDTO(u),
	})
}
