package client

import (
	"context"
	"net/http"
	"time"
)

// UserAPI emite las llamadas de usuarios contra la API.
type UserAPI struct {
	c *Client
}

func NewUserAPI(c *Client) *UserAPI {
	return &UserAPI{c: c}
}

// User refleja la forma JSON que devuelve el servidor; nunca incluye password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *UserAPI) Get(ctx context.Context, id string) (User, error) {
	var user User
	if err := s.c.do(ctx, http.MethodGet, "/api/user/"+id, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *UserAPI) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/user/"+id, nil, nil)
}
