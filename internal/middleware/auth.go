package middleware

import (
	"strings"

	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/pkg/apperrors"
	"sponsorly_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		// Сохраняем claims в контекст gin и в контекст логгера
		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.UserEmailKey, claims.Email)
		c.Set(contextkeys.UserRoleKey, models.UserRole(claims.Role))

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		ctx = logger.WithUserEmail(ctx, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(contextkeys.UserEmailKey)
}

func GetUserRole(c *gin.Context) models.UserRole {
	role, _ := c.Get(contextkeys.UserRoleKey)
	r, _ := role.(models.UserRole)
	return r
}
