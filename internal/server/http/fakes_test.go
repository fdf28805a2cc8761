package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/and161185/notes-api/internal/model"
	"github.com/and161185/notes-api/internal/token"
	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeAuth struct {
	register func(ctx context.Context, name, email, password string) (model.User, error)
	login    func(ctx context.Context, email, password string) (model.Tokens, model.User, error)
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (model.User, error) {
	return f.register(ctx, name, email, password)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (model.Tokens, model.User, error) {
	return f.login(ctx, email, password)
}

type fakeNotes struct {
	list   func(ctx context.Context, owner uuid.UUID) ([]model.Note, error)
	create func(ctx context.Context, owner uuid.UUID, title string, completed *bool) (*model.Note, error)
	update func(ctx context.Context, owner, id uuid.UUID, p model.NotePatch) (*model.Note, error)
	del    func(ctx context.Context, owner, id uuid.UUID) error
}

func (f *fakeNotes) List(ctx context.Context, owner uuid.UUID) ([]model.Note, error) {
	return f.list(ctx, owner)
}

func (f *fakeNotes) Create(ctx context.Context, owner uuid.UUID, title string, completed *bool) (*model.Note, error) {
	return f.create(ctx, owner, title, completed)
}

func (f *fakeNotes) Update(ctx context.Context, owner, id uuid.UUID, p model.NotePatch) (*model.Note, error) {
	return f.update(ctx, owner, id, p)
}

func (f *fakeNotes) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return f.del(ctx, owner, id)
}

type fakeTodos struct {
	list    func(ctx context.Context) ([]model.Todo, error)
	get     func(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	create  func(ctx context.Context, title string, completed *bool) (*model.Todo, error)
	replace func(ctx context.Context, id uuid.UUID, title string, completed *bool) (*model.Todo, error)
	patch   func(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error)
	del     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeTodos) List(ctx context.Context) ([]model.Todo, error) { return f.list(ctx) }

func (f *fakeTodos) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	return f.get(ctx, id)
}

func (f *fakeTodos) Create(ctx context.Context, title string, completed *bool) (*model.Todo, error) {
	return f.create(ctx, title, completed)
}

func (f *fakeTodos) Replace(ctx context.Context, id uuid.UUID, title string, completed *bool) (*model.Todo, error) {
	return f.replace(ctx, id, title, completed)
}

func (f *fakeTodos) Patch(ctx context.Context, id uuid.UUID, p model.TodoPatch) (*model.Todo, error) {
	return f.patch(ctx, id, p)
}

func (f *fakeTodos) Delete(ctx context.Context, id uuid.UUID) error { return f.del(ctx, id) }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

const testKey = "test-signing-key"

type harness struct {
	t      *testing.T
	auth   *fakeAuth
	notes  *fakeNotes
	todos  *fakeTodos
	tokens *token.Manager
	reg    *prometheus.Registry
	srv    *Server
	h      http.Handler
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	hs := &harness{
		t:      t,
		auth:   &fakeAuth{},
		notes:  &fakeNotes{},
		todos:  &fakeTodos{},
		tokens: token.NewManager([]byte(testKey), time.Hour),
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	hs.reg = opts.Registry
	hs.srv = New(hs.auth, hs.notes, hs.todos, hs.tokens, zaptest.NewLogger(t), opts)
	hs.h = hs.srv.Handler()
	return hs
}

func (hs *harness) bearer(uid uuid.UUID) string {
	hs.t.Helper()
	raw, _, err := hs.tokens.Issue(uid)
	require.NoError(hs.t, err)
	return "Bearer " + raw
}

func (hs *harness) do(method, path, body, authz string) *httptest.ResponseRecorder {
	hs.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	hs.h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func ptr[T any](v T) *T { return &v }
