package client

import (
	"context"
	"net/http"
)

// AuthService emite las llamadas de autenticación contra la API.
type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login devuelve la información de sesión; el caller decide cuándo pasarla al
// contenedor de estado con LogIn.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (SessionInformation, error) {
	var info SessionInformation
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/login", req, &info); err != nil {
		return SessionInformation{}, err
	}
	return info, nil
}

// Register crea la cuenta; la API responde sin cuerpo en el éxito.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	return s.c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}
