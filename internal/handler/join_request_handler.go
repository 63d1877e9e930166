package handler

import (
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles admin review of membership applications
type JoinRequestHandler struct {
	joinSvc *service.JoinRequestService
}

// NewJoinRequestHandler creates a new JoinRequestHandler
func NewJoinRequestHandler(joinSvc *service.JoinRequestService) *JoinRequestHandler {
	return &JoinRequestHandler{joinSvc: joinSvc}
}

// ListJoinRequests handles GET /api/v1/admin/join-requests?status=pending
func (h *JoinRequestHandler) ListJoinRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	requests, meta, err := h.joinSvc.List(c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err, "Failed to load join requests")
		return
	}
	common.SuccessWithMeta(c, requests, meta)
}

type reviewRequest struct {
	Approve bool `json:"approve"`
}

// ReviewJoinRequest handles POST /api/v1/admin/join-requests/:id/review
func (h *JoinRequestHandler) ReviewJoinRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid join request ID", err)
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	reviewed, err := h.joinSvc.Review(middleware.GetUserID(c), id, req.Approve)
	if err != nil {
		respondError(c, err, "Failed to review join request")
		return
	}
	common.Success(c, reviewed)
}
