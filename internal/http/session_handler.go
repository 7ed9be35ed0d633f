package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yoga-studio/internal/service"
)

// SessionHandler mantiene dependencias para los endpoints de sesiones.
type SessionHandler struct {
	logger      *zap.Logger
	sessionServ *service.SessionService
}

// NewSessionHandler crea una instancia de SessionHandler con dependencias necesarias.
func NewSessionHandler(logger *zap.Logger, sessionServ *service.SessionService) *SessionHandler {
	return &SessionHandler{
		logger:      logger,
		sessionServ: sessionServ,
	}
}

// List maneja GET /api/session.
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Get maneja GET /api/session/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessionServ.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("get session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Create maneja POST /api/session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessionServ.Create(c.Request.Context(), service.SessionInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Update maneja PUT /api/session/:id.
func (h *SessionHandler) Update(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessionServ.Update(c.Request.Context(), c.Param("id"), service.SessionInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		case errors.Is(err, service.ErrTeacherNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		default:
			h.logger.Error("update session failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update session"})
			return
		}
	}

	c.JSON(http.StatusOK, session)
}

// Delete maneja DELETE /api/session/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessionServ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("delete session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete session"})
		return
	}
	c.Status(http.StatusOK)
}

// Participate maneja POST /api/session/:id/participate/:userId.
func (h *SessionHandler) Participate(c *gin.Context) {
	err := h.sessionServ.Participate(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		case errors.Is(err, service.ErrAlreadyParticipating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "already participating"})
			return
		default:
			h.logger.Error("participate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not participate"})
			return
		}
	}
	c.Status(http.StatusOK)
}

// Unparticipate maneja DELETE /api/session/:id/participate/:userId.
func (h *SessionHandler) Unparticipate(c *gin.Context) {
	err := h.sessionServ.Unparticipate(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		case errors.Is(err, service.ErrNotParticipating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "not participating"})
			return
		default:
			h.logger.Error("unparticipate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unparticipate"})
			return
		}
	}
	c.Status(http.StatusOK)
}
