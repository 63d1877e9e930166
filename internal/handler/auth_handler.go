package handler

import (
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	common.Success(c, resp)
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	resp, err := h.authSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		respondError(c, err, "Token refresh failed")
		return
	}
	common.Success(c, resp)
}

// GetMe handles GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	id, err := strconv.ParseUint(middleware.GetUserID(c), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 401, "Invalid token subject", err)
		return
	}

	member, err := h.authSvc.GetCurrentMember(id)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	common.Success(c, member)
}
