package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yoga-studio/internal/service"
)

// UserHandler mantiene dependencias para los endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
	}
}

// Get maneja GET /api/user/:id. El hash de password nunca se serializa.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userServ.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete maneja DELETE /api/user/:id. Solo el dueño de la cuenta puede borrarla.
func (h *UserHandler) Delete(c *gin.Context) {
	subject, _ := AuthSubject(c)
	err := h.userServ.Delete(c.Request.Context(), c.Param("id"), subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		case errors.Is(err, service.ErrNotAccountOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		default:
			h.logger.Error("delete user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
			return
		}
	}
	c.Status(http.StatusOK)
}
