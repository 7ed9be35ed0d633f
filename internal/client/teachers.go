package client

import (
	"context"
	"net/http"
	"time"
)

// TeacherAPI emite las llamadas de instructores contra la API.
type TeacherAPI struct {
	c *Client
}

func NewTeacherAPI(c *Client) *TeacherAPI {
	return &TeacherAPI{c: c}
}

type Teacher struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *TeacherAPI) List(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	if err := s.c.do(ctx, http.MethodGet, "/api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *TeacherAPI) Get(ctx context.Context, id string) (Teacher, error) {
	var teacher Teacher
	if err := s.c.do(ctx, http.MethodGet, "/api/teacher/"+id, nil, &teacher); err != nil {
		return Teacher{}, err
	}
	return teacher, nil
}
