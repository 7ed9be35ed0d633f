package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"yoga-studio/internal/repository"
	"yoga-studio/internal/service"
)

// TeacherHandler mantiene dependencias para los endpoints de instructores.
type TeacherHandler struct {
	logger   *zap.Logger
	teachers repository.TeacherRepository
	cache    *service.TeacherCache
}

// NewTeacherHandler crea una instancia de TeacherHandler con dependencias necesarias.
func NewTeacherHandler(logger *zap.Logger, teachers repository.TeacherRepository, cache *service.TeacherCache) *TeacherHandler {
	return &TeacherHandler{
		logger:   logger,
		teachers: teachers,
		cache:    cache,
	}
}

// List maneja GET /api/teacher, sirviendo del cache cuando hay hit.
func (h *TeacherHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if teachers, ok := h.cache.GetList(ctx); ok {
		c.JSON(http.StatusOK, teachers)
		return
	}

	teachers, err := h.teachers.List(ctx)
	if err != nil {
		h.logger.Error("list teachers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list teachers"})
		return
	}

	h.cache.SetList(ctx, teachers)
	c.JSON(http.StatusOK, teachers)
}

// Get maneja GET /api/teacher/:id.
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.teachers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		h.logger.Error("get teacher failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get teacher"})
		return
	}
	c.JSON(http.StatusOK, teacher)
}
