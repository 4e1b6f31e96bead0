package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/logger"
	"contratando_backend/internal/services"
	"contratando_backend/pkg/apperrors"
)

// AuthMiddleware validates the Bearer token and stores the claims in the
// gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Token de autenticação ausente"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("perfil", claims.Perfil)
		c.Next()
	}
}

// RequirePermission gates a route on a module/action grant. The grant is
// re-resolved from the database on every request, so revoking a
// permission takes effect immediately, not at token expiry.
func RequirePermission(authService services.AuthService, modulo, acao string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Usuário não autenticado"))
			c.Abort()
			return
		}

		permitido, err := authService.CheckPermission(userID, modulo, acao)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}
		if !permitido {
			logger.CtxWarn(c.Request.Context(), "acesso negado",
				"modulo", modulo, "acao", acao, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequirePerfil restricts a route to the given profiles based on the
// token claim alone.
func RequirePerfil(perfis ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(perfis))
	for _, p := range perfis {
		allowed[p] = true
	}

	return func(c *gin.Context) {
		perfil := c.GetString("perfil")
		if !allowed[perfil] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado"})
			return
		}
		c.Next()
	}
}
