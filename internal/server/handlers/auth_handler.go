package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
)

// Authenticator checks a username and password pair.
type Authenticator interface {
	Authenticate(username, password string) error
}

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	auth   Authenticator
	lang   models.Language
	logger *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth Authenticator, lang models.Language, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: auth, lang: lang, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the credential and echoes the username.
func (h *AuthHandler) Login(c *gin.Context) {
	tr := i18n.For(language(c, h.lang))

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.auth.Authenticate(req.Username, req.Password); err != nil {
		h.logger.Warn("login rejected", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": tr.T(i18n.InvalidCredentials)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": req.Username})
}
