package handler

import (
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated site endpoints. Content blocks go
// out through the public projection only — draft bodies never appear here.
type PublicHandler struct {
	contentSvc *service.ContentService
	faqSvc     *service.FaqService
	eventSvc   *service.EventService
	joinSvc    *service.JoinRequestService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(
	contentSvc *service.ContentService,
	faqSvc *service.FaqService,
	eventSvc *service.EventService,
	joinSvc *service.JoinRequestService,
) *PublicHandler {
	return &PublicHandler{
		contentSvc: contentSvc,
		faqSvc:     faqSvc,
		eventSvc:   eventSvc,
		joinSvc:    joinSvc,
	}
}

// GetPageBlocks handles GET /api/v1/pages/:page/blocks
func (h *PublicHandler) GetPageBlocks(c *gin.Context) {
	blocks, err := h.contentSvc.GetPublishedBlocksByPage(c.Param("page"))
	if err != nil {
		respondError(c, err, "Failed to load page content")
		return
	}
	common.Success(c, blocks)
}

// ListFaqs handles GET /api/v1/faqs
func (h *PublicHandler) ListFaqs(c *gin.Context) {
	faqs, err := h.faqSvc.ListPublic()
	if err != nil {
		respondError(c, err, "Failed to load FAQ entries")
		return
	}
	common.Success(c, faqs)
}

// ListUpcomingEvents handles GET /api/v1/events
func (h *PublicHandler) ListUpcomingEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.eventSvc.ListUpcoming(limit)
	if err != nil {
		respondError(c, err, "Failed to load events")
		return
	}
	common.Success(c, events)
}

type joinRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message"`
}

// SubmitJoinRequest handles POST /api/v1/join-requests
func (h *PublicHandler) SubmitJoinRequest(c *gin.Context) {
	var req joinRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	created, err := h.joinSvc.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, err, "Failed to submit join request")
		return
	}
	common.Created(c, created)
}
