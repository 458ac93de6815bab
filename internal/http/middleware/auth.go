package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rencanalab/rpm-backend/internal/auth"
	"github.com/rencanalab/rpm-backend/internal/http/response"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
)

const principalKey = "principal"

type AuthMiddleware struct {
	log    *logger.Logger
	issuer *auth.TokenIssuer
}

func NewAuthMiddleware(log *logger.Logger, issuer *auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("Middleware", "AuthMiddleware"), issuer: issuer}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Abort()
			response.RespondError(c, http.StatusUnauthorized, "unauthorized",
				errors.New("missing or invalid token"))
			return
		}
		principal, err := am.issuer.Parse(tokenString)
		if err != nil {
			am.log.Debug("Token rejected", "error", err.Error())
			c.Abort()
			response.RespondError(c, http.StatusUnauthorized, "unauthorized",
				errors.New("missing or invalid token"))
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the authenticated identity, zero-valued when the
// request never passed RequireAuth.
func GetPrincipal(c *gin.Context) auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}
	}
	p, _ := v.(auth.Principal)
	return p
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
