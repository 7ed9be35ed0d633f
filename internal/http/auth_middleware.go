package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yoga-studio/internal/service"
)

const authSubjectKey = "auth_subject"

// TokenContextMiddleware extrae el bearer token y, si es válido, guarda el
// subject en el contexto. Nunca corta el request: un token ausente, vencido o
// malformado deja pasar el request como anónimo y el rechazo queda en manos
// de RequireAuth.
func TokenContextMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.Next()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		subject, err := jwtSvc.Parse(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(authSubjectKey, subject)
		c.Next()
	}
}

// RequireAuth rechaza con 401 los requests sin subject autenticado.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AuthSubject(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthSubject obtiene el subject autenticado desde el contexto.
func AuthSubject(c *gin.Context) (string, bool) {
	val, ok := c.Get(authSubjectKey)
	if !ok {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok && subject != ""
}
