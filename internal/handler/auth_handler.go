package handler

import (
	"net/http"

	"jobboard/internal/middleware"
	"jobboard/internal/model"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and profile requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the profile of the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// RegisterAuthRoutes registers the user routes. limit guards signup and login;
// authMW guards the profile route.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, limit, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("/signup", limit, h.Signup)
		users.POST("/login", limit, h.Login)
		users.GET("/me", authMW, h.Me)
	}
}
