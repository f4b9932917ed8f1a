package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/apperrors"
	"github.com/pageza/recipeai/backend/internal/middleware"
	"github.com/pageza/recipeai/backend/internal/service"
	"github.com/pageza/recipeai/backend/internal/types"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	auth   service.IAuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth service.IAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// RegisterRoutes registers the authentication routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

// authFailure keeps the {success, message} shape login clients expect next to
// the standard error envelope
type authFailure struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   apperrors.ErrorDetails `json:"error"`
}

func (h *AuthHandler) fail(c *gin.Context, err *apperrors.AppError, message string) {
	if err.Cause != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(err.StatusCode(), authFailure{
		Success: false,
		Message: message,
		Error:   apperrors.ToErrorResponse(err, middleware.GetRequestID(c)).Error,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message := "Username and password are required"
		if req.Username == "" && req.Email != "" {
			message = "Username is required; email is not accepted"
		}
		h.fail(c, apperrors.NewValidationError(message), message)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Credential())
	if err != nil {
		appErr := apperrors.From(err)
		if appErr.Code == apperrors.CodeInvalidCredentials {
			h.fail(c, appErr, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		h.fail(c, apperrors.NewInternalError(err), "Internal server error during authentication")
		return
	}

	message := "Login successful"
	if session.Demo {
		message = "Login successful (demo mode)"
	}
	user := session.User
	c.JSON(http.StatusOK, types.AuthResponse{
		Success: true,
		Message: message,
		Token:   session.Token,
		User:    &user,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		h.fail(c, apperrors.NewInternalError(err), "Error during logout")
		return
	}
	c.JSON(http.StatusOK, types.AuthResponse{Success: true, Message: "Logout successful"})
}
