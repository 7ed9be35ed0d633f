package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yoga-studio/internal/service"
)

// Pinger reporta conectividad con la base para el endpoint de salud.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter configura el router de Gin con middlewares y rutas.
// El middleware de token corre sobre todo /api y nunca rechaza por sí mismo;
// los grupos protegidos agregan RequireAuth.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	sessionH *SessionHandler,
	userH *UserHandler,
	teacherH *TeacherHandler,
	pinger Pinger,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", healthHandler(pinger))

	api := r.Group("/api")
	api.Use(TokenContextMiddleware(jwtSvc))

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/register", authH.Register)

	session := api.Group("/session", RequireAuth())
	session.GET("", sessionH.List)
	session.GET("/:id", sessionH.Get)
	session.POST("", sessionH.Create)
	session.PUT("/:id", sessionH.Update)
	session.DELETE("/:id", sessionH.Delete)
	session.POST("/:id/participate/:userId", sessionH.Participate)
	session.DELETE("/:id/participate/:userId", sessionH.Unparticipate)

	user := api.Group("/user", RequireAuth())
	user.GET("/:id", userH.Get)
	user.DELETE("/:id", userH.Delete)

	teacher := api.Group("/teacher", RequireAuth())
	teacher.GET("", teacherH.List)
	teacher.GET("/:id", teacherH.Get)

	return r
}

func healthHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			if err := pinger.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
