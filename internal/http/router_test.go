package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"yoga-studio/internal/domain"
	"yoga-studio/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(m.usersByID, id)
	delete(m.usersByEmail, user.Email)
	return nil
}

type mockTeacherRepo struct {
	teachers map[string]domain.Teacher
	listErr  error
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]domain.Teacher)}
}

func (m *mockTeacherRepo) List(_ context.Context) ([]domain.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (domain.Teacher, error) {
	teacher, ok := m.teachers[id]
	if !ok {
		return domain.Teacher{}, pgx.ErrNoRows
	}
	return teacher, nil
}

type mockSessionRepo struct {
	sessions     map[string]domain.Session
	participants map[string]map[string]bool
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		sessions:     make(map[string]domain.Session),
		participants: make(map[string]map[string]bool),
	}
}

func (m *mockSessionRepo) Create(_ context.Context, session domain.Session) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (domain.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return domain.Session{}, pgx.ErrNoRows
	}
	session.Participants = make([]string, 0)
	for userID := range m.participants[id] {
		session.Participants = append(session.Participants, userID)
	}
	return session, nil
}

func (m *mockSessionRepo) List(ctx context.Context) ([]domain.Session, error) {
	out := make([]domain.Session, 0, len(m.sessions))
	for id := range m.sessions {
		session, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, nil
}

func (m *mockSessionRepo) Update(_ context.Context, session domain.Session) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.sessions[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.sessions, id)
	delete(m.participants, id)
	return nil
}

func (m *mockSessionRepo) AddParticipant(_ context.Context, sessionID, userID string) error {
	if m.participants[sessionID] == nil {
		m.participants[sessionID] = make(map[string]bool)
	}
	m.participants[sessionID][userID] = true
	return nil
}

func (m *mockSessionRepo) RemoveParticipant(_ context.Context, sessionID, userID string) error {
	delete(m.participants[sessionID], userID)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	users    *mockUserRepo
	teachers *mockTeacherRepo
	sessions *mockSessionRepo
	userSvc  *service.UserService
	jwtSvc   *service.JWTService
}

func setupAPI(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	users := newMockUserRepo()
	teachers := newMockTeacherRepo()
	sessions := newMockSessionRepo()

	jwtSvc := service.NewJWTService("test-secret", 15*time.Minute)
	userSvc := service.NewUserService(logger, users, nil)
	sessionSvc := service.NewSessionService(logger, sessions, teachers, users)

	router := NewRouter(
		logger,
		jwtSvc,
		NewAuthHandler(logger, userSvc, jwtSvc),
		NewSessionHandler(logger, sessionSvc),
		NewUserHandler(logger, userSvc),
		NewTeacherHandler(logger, teachers, nil),
		nil,
	)

	return &testEnv{
		router:   router,
		users:    users,
		teachers: teachers,
		sessions: sessions,
		userSvc:  userSvc,
		jwtSvc:   jwtSvc,
	}
}

func (e *testEnv) registerUser(t *testing.T, email, password string) domain.User {
	t.Helper()
	user, err := e.userSvc.Register(context.Background(), service.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return user
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.jwtSvc.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func performRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
