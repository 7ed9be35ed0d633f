package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"yoga-studio/internal/domain"
	"yoga-studio/internal/repository"
)

// SessionService coordina el CRUD de sesiones y el alta/baja de participantes.
type SessionService struct {
	logger   *zap.Logger
	sessions repository.SessionRepository
	teachers repository.TeacherRepository
	users    repository.UserRepository
}

func NewSessionService(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	teachers repository.TeacherRepository,
	users repository.UserRepository,
) *SessionService {
	return &SessionService{
		logger:   logger,
		sessions: sessions,
		teachers: teachers,
		users:    users,
	}
}

type SessionInput struct {
	Name        string
	Description string
	Date        time.Time
	TeacherID   string
}

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrAlreadyParticipating = errors.New("already participating")
	ErrNotParticipating     = errors.New("not participating")
)

// Create valida que el instructor exista antes de persistir la sesión.
func (s *SessionService) Create(ctx context.Context, input SessionInput) (domain.Session, error) {
	if err := s.checkTeacher(ctx, input.TeacherID); err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Date:         input.Date,
		TeacherID:    input.TeacherID,
		Participants: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.List(ctx)
}

// Update reemplaza nombre, descripción, fecha e instructor de la sesión.
func (s *SessionService) Update(ctx context.Context, id string, input SessionInput) (domain.Session, error) {
	session, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.checkTeacher(ctx, input.TeacherID); err != nil {
		return domain.Session{}, err
	}

	session.Name = strings.TrimSpace(input.Name)
	session.Description = strings.TrimSpace(input.Description)
	session.Date = input.Date
	session.TeacherID = input.TeacherID
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	if s.logger != nil {
		s.logger.Info("session deleted", zap.String("session_id", id))
	}
	return nil
}

// Participate inscribe al usuario; inscribirse dos veces es un error del cliente.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID string) error {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if session.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}
	return s.sessions.AddParticipant(ctx, sessionID, userID)
}

// Unparticipate da de baja al usuario; bajarse sin estar inscripto es un error del cliente.
func (s *SessionService) Unparticipate(ctx context.Context, sessionID, userID string) error {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.HasParticipant(userID) {
		return ErrNotParticipating
	}
	return s.sessions.RemoveParticipant(ctx, sessionID, userID)
}

func (s *SessionService) checkTeacher(ctx context.Context, teacherID string) error {
	if strings.TrimSpace(teacherID) == "" {
		return ErrTeacherNotFound
	}
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTeacherNotFound
		}
		return err
	}
	return nil
}
