package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aubertlenno/Todo-Backend/internal/auth"
	"github.com/aubertlenno/Todo-Backend/internal/dto"
	"github.com/aubertlenno/Todo-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register, login, logout and the session probe.
type AuthHandler struct {
	issuer  *auth.Issuer
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(issuer *auth.Issuer, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{issuer: issuer, userSvc: userSvc}
}

// Register creates an account. Duplicate username or email is a 400.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User registered successfully"})
}

// Login checks credentials and sets the session cookie on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	token, err := h.issuer.Issue(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(h.issuer.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "Login successful"})
}

// Logout clears the cookie. The token itself stays valid until expiry:
// sessions are stateless, there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "Logout successful"})
}

// Protected greets the authenticated user; reachable only behind RequireAuth.
func (h *AuthHandler) Protected(c *gin.Context) {
	username := auth.UsernameFromContext(c)
	c.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("Hello %s, you are authenticated", username)})
}
