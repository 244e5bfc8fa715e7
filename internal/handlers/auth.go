package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/session"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func sessionStore(c *gin.Context) (*session.Store, bool) {
	store, ok := middleware.GetSessionStore(c)
	if !ok {
		apierrors.InternalError(c, "Session unavailable")
	}
	return store, ok
}

// Register creates an account and signs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name            string          `json:"name" binding:"required"`
		Email           string          `json:"email" binding:"required"`
		Password        string          `json:"password" binding:"required"`
		ConfirmPassword string          `json:"confirm_password" binding:"required"`
		UserType        models.UserType `json:"user_type" binding:"required"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	store, ok := sessionStore(c)
	if !ok {
		return
	}

	_, err := store.Register(c.Request.Context(), session.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		UserType:        req.UserType,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	user, _ := store.CurrentUser()
	c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	store, ok := sessionStore(c)
	if !ok {
		return
	}

	authenticated, err := store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	if !authenticated {
		apierrors.InvalidCredentials(c)
		return
	}

	user, _ := store.CurrentUser()
	c.JSON(http.StatusOK, user)
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	store, ok := sessionStore(c)
	if !ok {
		return
	}
	if err := store.Logout(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user as currently stored.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.BadRequest(c, "Passwords do not match")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "An account with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser):
		apierrors.InternalError(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}
