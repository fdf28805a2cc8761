package httpserver

import (
	"time"

	"github.com/and161185/notes-api/internal/model"
)

// userDTO is the public view of a user; the password hash is never rendered.
type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserDTO(u model.User) userDTO {
	return userDTO{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

type noteDTO struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteDTO(n model.Note) noteDTO {
	return noteDTO{
		ID:        n.ID.String(),
		User:      n.UserID.String(),
		Title:     n.Title,
		Completed: n.Completed,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteDTOs(ns []model.Note) []noteDTO {
	out := make([]noteDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNoteDTO(n))
	}
	return out
}

type todoDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTodoDTO(t model.Todo) todoDTO {
	return todoDTO{
		ID:        t.ID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTodoDTOs(ts []model.Todo) []todoDTO {
	out := make([]todoDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTodoDTO(t))
	}
	return out
}

// resourceBody is the shared request payload for notes and todos.
type resourceBody struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (b resourceBody) title() string {
	if b.Title == nil {
		return ""
	}
	return *b.Title
}
