package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/communityforge/events-api/internal/application"
	"github.com/communityforge/events-api/internal/domain/entity"
	"github.com/communityforge/events-api/internal/domain/repository"
	handlers "github.com/communityforge/events-api/internal/interface/http"
	"github.com/communityforge/events-api/internal/interface/middleware"
	"github.com/communityforge/events-api/internal/router"
	"github.com/communityforge/events-api/internal/router/modules"
	"github.com/communityforge/events-api/pkg/helpers"
	"github.com/communityforge/events-api/pkg/validation"
)

// testServer runs the full route stack (modules, auth middleware, error
// responder) against in-memory repositories.
type testServer struct {
	engine       *gin.Engine
	users        *memUserRepo
	events       *memEventRepo
	participants *memParticipantRepo
	jwt          *helpers.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithJWT(t, helpers.NewJWTManager("test-secret", time.Hour))
}

func newTestServerWithJWT(t *testing.T, jwt *helpers.JWTManager) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := newMemUserRepo()
	events := newMemEventRepo()
	participants := newMemParticipantRepo(events)

	authSvc := application.NewAuthService(users, jwt, logger)
	eventSvc := application.NewEventService(events, logger)
	participantSvc := application.NewParticipantService(participants, events, logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorResponder(logger))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	reg := router.NewRegistry(r, logger)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	reg.Add(modules.NewEventModule(handlers.NewEventHandler(eventSvc, logger), jwt))
	reg.Add(modules.NewParticipantModule(handlers.NewParticipantHandler(participantSvc, logger), jwt))
	reg.RegisterAll()

	return &testServer{engine: r, users: users, events: events, participants: participants, jwt: jwt}
}

// do performs a request and decodes nothing; callers inspect the recorder.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser registers through the API and returns the issued token.
func (ts *testServer) registerUser(t *testing.T, email, password string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// adminToken seeds an admin directly in the store (the out-of-band promotion
// path) and returns a token for it.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	hash, err := helpers.HashPassword("admin-secret")
	require.NoError(t, err)
	u := &entity.User{Email: "admin@x.com", Password: hash, Role: entity.RoleAdmin}
	require.NoError(t, ts.users.Create(context.Background(), u))
	token, err := ts.jwt.Generate(u.ID, u.Role)
	require.NoError(t, err)
	return token
}

func (ts *testServer) createEvent(t *testing.T, token string, overrides gin.H) map[string]any {
	t.Helper()
	body := gin.H{
		"title":     "Beach Cleanup",
		"date":      "2026-09-01T10:00:00Z",
		"location":  "North Beach",
		"organizer": "Green Team",
	}
	for k, v := range overrides {
		body[k] = v
	}
	w := ts.do(t, http.MethodPost, "/api/events", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

// ---- in-memory repositories ----

var errStoreDown = errors.New("store unavailable")

type memUserRepo struct {
	users    map[string]*entity.User // keyed by lowercase email
	failWith error                   // when set, every call fails with it
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// promote flips a registered account to admin, bypassing the API on purpose.
func (r *memUserRepo) promote(email string) {
	if u, ok := r.users[email]; ok {
		u.Role = entity.RoleAdmin
	}
}

type memEventRepo struct {
	events map[string]*entity.Event
}

func newMemEventRepo() *memEventRepo { return &memEventRepo{events: map[string]*entity.Event{}} }

func (r *memEventRepo) Create(_ context.Context, e *entity.Event) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) List(_ context.Context) ([]entity.Event, error) {
	out := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memEventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) Update(_ context.Context, e *entity.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *memEventRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.events[id]
	return ok, nil
}

type memParticipantRepo struct {
	events       *memEventRepo
	participants map[string]*entity.Participant
	order        []string
}

func newMemParticipantRepo(events *memEventRepo) *memParticipantRepo {
	return &memParticipantRepo{events: events, participants: map[string]*entity.Participant{}}
}

func (r *memParticipantRepo) Create(_ context.Context, p *entity.Participant) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Event = nil
	r.participants[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memParticipantRepo) List(_ context.Context) ([]entity.Participant, error) {
	out := make([]entity.Participant, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.participants[r.order[i]]; ok {
			out = append(out, r.withEvent(p))
		}
	}
	return out, nil
}

func (r *memParticipantRepo) GetByID(_ context.Context, id string) (*entity.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := r.withEvent(p)
	return &cp, nil
}

func (r *memParticipantRepo) Update(_ context.Context, p *entity.Participant) error {
	if _, ok := r.participants[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	cp.Event = nil
	r.participants[p.ID] = &cp
	return nil
}

func (r *memParticipantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.participants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.participants, id)
	return nil
}

func (r *memParticipantRepo) withEvent(p *entity.Participant) entity.Participant {
	cp := *p
	if e, ok := r.events.events[p.EventID]; ok {
		cp.Event = &entity.EventSummary{ID: e.ID, Title: e.Title, Date: e.Date, Location: e.Location, Status: e.Status}
	}
	return cp
}

var (
	_ repository.UserRepository        = (*memUserRepo)(nil)
	_ repository.EventRepository       = (*memEventRepo)(nil)
	_ repository.ParticipantRepository = (*memParticipantRepo)(nil)
)
