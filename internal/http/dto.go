package http

import "time"

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type sessionRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	TeacherID   string    `json:"teacher_id" binding:"required"`
}

// SessionInformation es el cuerpo de respuesta del login, con la forma que
// consume el cliente.
type SessionInformation struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// NewSessionInformation arma la respuesta de login. El campo Type queda fijo
// en "Bearer" sin importar el valor recibido.
func NewSessionInformation(token, tokenType, id, username, firstName, lastName string, admin bool) SessionInformation {
	return SessionInformation{
		Token:     token,
		Type:      "Bearer",
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Admin:     admin,
	}
}
