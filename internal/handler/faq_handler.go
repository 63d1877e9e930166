package handler

import (
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// FaqHandler handles admin FAQ endpoints
type FaqHandler struct {
	faqSvc *service.FaqService
}

// NewFaqHandler creates a new FaqHandler
func NewFaqHandler(faqSvc *service.FaqService) *FaqHandler {
	return &FaqHandler{faqSvc: faqSvc}
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	OrderNum uint   `json:"order_num"`
	IsActive *bool  `json:"is_active"`
}

// ListFaqs handles GET /api/v1/admin/faqs
func (h *FaqHandler) ListFaqs(c *gin.Context) {
	faqs, err := h.faqSvc.ListAll()
	if err != nil {
		respondError(c, err, "Failed to load FAQ entries")
		return
	}
	common.Success(c, faqs)
}

// CreateFaq handles POST /api/v1/admin/faqs
func (h *FaqHandler) CreateFaq(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	faq := &domain.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		OrderNum: req.OrderNum,
		IsActive: active,
	}
	if err := h.faqSvc.Create(faq); err != nil {
		respondError(c, err, "Failed to create FAQ entry")
		return
	}
	common.Created(c, faq)
}

// UpdateFaq handles PUT /api/v1/admin/faqs/:id
func (h *FaqHandler) UpdateFaq(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid FAQ ID", err)
		return
	}

	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	faq, err := h.faqSvc.Update(id, req.Question, req.Answer, req.OrderNum, active)
	if err != nil {
		respondError(c, err, "Failed to update FAQ entry")
		return
	}
	common.Success(c, faq)
}

// DeleteFaq handles DELETE /api/v1/admin/faqs/:id
func (h *FaqHandler) DeleteFaq(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid FAQ ID", err)
		return
	}

	if err := h.faqSvc.Delete(id); err != nil {
		respondError(c, err, "Failed to delete FAQ entry")
		return
	}
	common.Success(c, gin.H{"deleted": id})
}
