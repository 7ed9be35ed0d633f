package domain

import "time"

// Session representa una clase reservable de yoga.
// Participants guarda los ids de usuarios inscriptos, sin duplicados.
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

// HasParticipant indica si el usuario ya está inscripto en la sesión.
func (s Session) HasParticipant(userID string) bool {
	for _, id := range s.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
