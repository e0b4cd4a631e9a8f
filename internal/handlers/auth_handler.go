package handlers

import (
	"net/http"
	"time"

	"homeserve_backend/internal/middleware"
	"homeserve_backend/internal/services"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	limiter     *middleware.RateLimiter
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		limiter:     limiter,
	}
}

// RegisterRoutes регистрирует все маршруты для аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.limiter.Middleware(), h.Register)
		auth.POST("/login", h.limiter.Middleware(), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.Bind(c, &req) {
		return
	}

	session, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.startSession(c, session)
	h.Success(c, http.StatusCreated, "Registration successful! Welcome to HomeServe.", session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.Bind(c, &req) {
		return
	}

	session, err := h.authService.Login(h.GetDB(c), &req, middleware.GetSessionToken(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.startSession(c, session)
	h.Success(c, http.StatusOK, "Login successful!", session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(h.GetDB(c), middleware.GetSessionToken(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearSessionCookie(c)
	h.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	caller := h.Caller(c)
	if !caller.IsAuthenticated() {
		h.HandleServiceError(c, apperrors.ErrNotAuthenticated)
		return
	}

	h.Success(c, http.StatusOK, "Authenticated", dto.IdentityResponse{
		Type:  caller.Kind,
		ID:    caller.ID,
		Name:  caller.Name,
		Email: caller.Email,
	})
}

func (h *AuthHandler) startSession(c *gin.Context, session *dto.SessionResponse) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	h.setSessionCookie(c, session.Token, maxAge)
}
