package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/modules/user/dto"
	"zeros.dev/launchpad/internal/modules/user/service"
	"zeros.dev/launchpad/internal/session"
	"zeros.dev/launchpad/pkg/validator"
)

type AuthHandler struct {
	service  service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(service service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.sessions.SetCookie(c, res.AccessToken)
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the acting user, or an empty identity when the session cookie is
// missing or unparsable. Never an error.
func (h *AuthHandler) Me(c *gin.Context) {
	tokenString := session.TokenFromRequest(c)
	if tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := h.sessions.Parse(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var input dto.CheckEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.CheckEmail(c.Request.Context(), input.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email is registered"})
}

func (h *AuthHandler) SetPassword(c *gin.Context) {
	var input dto.SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.service.SetPassword(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
