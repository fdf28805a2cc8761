package httpserver

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/and161185/notes-api/internal/errs"
	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/service"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	uid := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		body    string
		err     error
		status  int
		message string
	}{
		{name: "created", body: `{"name":"Ann","email":"a@x.io","password":"pw"}`, status: http.StatusCreated, message: "Registered successfully"},
		{name: "missing field", body: `{"name":"Ann"}`, err: service.ErrFieldsRequired, status: http.StatusBadRequest, message: "All fields required"},
		{name: "malformed json", body: `{"name":`, status: http.StatusBadRequest, message: "All fields required"},
		{name: "taken email", body: `{"name":"Ann","email":"a@x.io","password":"pw"}`, err: errs.ErrAlreadyExists, status: http.StatusBadRequest, message: "User already exists"},
		{name: "long password", body: `{"name":"Ann","email":"a@x.io","password":"pw"}`, err: service.ErrPasswordTooLong, status: http.StatusBadRequest, message: "Password must be at most 72 bytes"},
		{name: "store fault", body: `{"name":"Ann","email":"a@x.io","password":"pw"}`, err: errors.New("db down"), status: http.StatusInternalServerError, message: "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newHarness(t, Options{})
			hs.auth.register = func(_ context.Context, name, email, password string) (model.User, error) {
				if tt.err != nil {
					return model.User{}, tt.err
				}
				return model.User{ID: uid, Name: name, Email: email, PasswordHash: "$2a$secret"}, nil
			}

			rec := hs.do(http.MethodPost, "/api/auth/register", tt.body, "")
			require.Equal(t, tt.status, rec.Code)
			out := decodeMap(t, rec)
			require.Equal(t, tt.message, out["message"])

			if tt.status == http.StatusCreated {
				user := out["user"].(map[string]any)
				require.Equal(t, uid.String(), user["id"])
				require.Equal(t, "Ann", user["name"])
				require.Equal(t, "a@x.io", user["email"])
				require.NotContains(t, rec.Body.String(), "secret")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	uid := uuid.Must(uuid.NewV4())

	t.Run("ok", func(t *testing.T) {
		hs := newHarness(t, Options{})
		hs.auth.login = func(_ context.Context, email, password string) (model.Tokens, model.User, error) {
			require.Equal(t, "a@x.io", email)
			require.Equal(t, "pw", password)
			return model.Tokens{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)},
				model.User{ID: uid, Name: "Ann", Email: email, PasswordHash: "$2a$secret"}, nil
		}

		rec := hs.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.io","password":"pw"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeMap(t, rec)
		require.Equal(t, "tok", out["token"])
		require.Equal(t, uid.String(), out["user"].(map[string]any)["id"])
		require.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		hs := newHarness(t, Options{})
		hs.auth.login = func(context.Context, string, string) (model.Tokens, model.User, error) {
			return model.Tokens{}, model.User{}, errs.ErrInvalidCredentials
		}
		rec := hs.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.io","password":"bad"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid credentials", decodeMap(t, rec)["message"])
	})

	t.Run("malformed json", func(t *testing.T) {
		hs := newHarness(t, Options{})
		rec := hs.do(http.MethodPost, "/api/auth/login", `[`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid credentials", decodeMap(t, rec)["message"])
	})

	t.Run("store fault", func(t *testing.T) {
		hs := newHarness(t, Options{})
		hs.auth.login = func(context.Context, string, string) (model.Tokens, model.User, error) {
			return model.Tokens{}, model.User{}, errors.New("db down")
		}
		rec := hs.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.io","password":"pw"}`, "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Server error", decodeMap(t, rec)["message"])
	})
}
