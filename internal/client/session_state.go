package client

import "sync"

// SessionInformation es la vista cacheada del principal autenticado.
type SessionInformation struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// SessionState es la celda única de estado de sesión del proceso: un escritor
// (login/logout), muchos lectores. Los suscriptores reciben el valor actual al
// suscribirse y luego cada transición, en orden de suscripción.
type SessionState struct {
	mu     sync.Mutex
	logged bool
	info   *SessionInformation
	subs   []chan bool
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// LogIn guarda la información de sesión y publica la transición a logueado.
// Cualquier observador que vea logged=true ve también la información poblada.
func (s *SessionState) LogIn(info SessionInformation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := info
	s.info = &copied
	s.logged = true
	s.broadcastLocked()
}

// LogOut limpia la información de sesión y publica la transición a deslogueado.
func (s *SessionState) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = nil
	s.logged = false
	s.broadcastLocked()
}

// Snapshot devuelve atómicamente la información actual y el booleano de login.
func (s *SessionState) Snapshot() (*SessionInformation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info == nil {
		return nil, s.logged
	}
	copied := *s.info
	return &copied, s.logged
}

// Subscribe devuelve un canal que emite de inmediato el valor actual y después
// cada transición. El cancel desregistra el canal; un suscriptor que deja de
// leer más de sessionStateBuffer transiciones bloquea al escritor.
func (s *SessionState) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan bool, sessionStateBuffer)
	ch <- s.logged
	s.subs = append(s.subs, ch)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}

const sessionStateBuffer = 16

func (s *SessionState) broadcastLocked() {
	for _, ch := range s.subs {
		ch <- s.logged
	}
}
