package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rencanalab/rpm-backend/internal/auth"
	"github.com/rencanalab/rpm-backend/internal/http/response"
)

type AuthHandler struct {
	provider auth.Provider
	issuer   *auth.TokenIssuer
}

func NewAuthHandler(provider auth.Provider, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{provider: provider, issuer: issuer}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req auth.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	principal, err := ah.provider.Verify(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "login_failed", err)
		return
	}
	token, err := ah.issuer.Issue(principal, time.Now())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "login_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"token":    token,
		"username": principal.Username,
		"name":     principal.Name,
	})
}
