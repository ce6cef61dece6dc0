// File: internal/middleware/auth.go
package middleware

import (
	"backoffice_backend/internal/common"
	"backoffice_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware for session token authentication.
// It validates the bearer token, rejects blocklisted tokens and stores the
// user ID and claims in the request context.
func AuthMiddleware(tokenService shared.TokenService, blocklist shared.TokenBlocklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := common.GetTokenFromContext(c)
		if tokenString == "" {
			logger.Debug("Authorization header missing or malformed")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		claims, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired session token."))
			return
		}

		if claims.ID != "" {
			blocked, err := blocklist.IsBlocklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("Blocklist lookup failed", zap.Error(err))
				common.RespondWithError(c, common.ErrInternalServer)
				return
			}
			if blocked {
				common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Session has been revoked."))
				return
			}
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			logger.Warn("Token subject is not a valid user ID", zap.String("subject", claims.Subject))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid token subject."))
			return
		}

		c.Set(common.UserIDKey, userID)
		c.Set(common.UserClaimsKey, claims)

		c.Next()
	}
}
