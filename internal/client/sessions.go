package client

import (
	"context"
	"net/http"
	"time"
)

// SessionAPI emite las llamadas de sesiones de yoga contra la API.
type SessionAPI struct {
	c *Client
}

func NewSessionAPI(c *Client) *SessionAPI {
	return &SessionAPI{c: c}
}

// Session refleja la forma JSON que devuelve el servidor.
type Session struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	TeacherID    string    `json:"teacher_id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SessionRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	TeacherID   string    `json:"teacher_id"`
}

func (s *SessionAPI) List(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := s.c.do(ctx, http.MethodGet, "/api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionAPI) Get(ctx context.Context, id string) (Session, error) {
	var session Session
	if err := s.c.do(ctx, http.MethodGet, "/api/session/"+id, nil, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *SessionAPI) Create(ctx context.Context, req SessionRequest) (Session, error) {
	var session Session
	if err := s.c.do(ctx, http.MethodPost, "/api/session", req, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *SessionAPI) Update(ctx context.Context, id string, req SessionRequest) (Session, error) {
	var session Session
	if err := s.c.do(ctx, http.MethodPut, "/api/session/"+id, req, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *SessionAPI) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/session/"+id, nil, nil)
}

func (s *SessionAPI) Participate(ctx context.Context, sessionID, userID string) error {
	return s.c.do(ctx, http.MethodPost, "/api/session/"+sessionID+"/participate/"+userID, nil, nil)
}

func (s *SessionAPI) Unparticipate(ctx context.Context, sessionID, userID string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/session/"+sessionID+"/participate/"+userID, nil, nil)
}
