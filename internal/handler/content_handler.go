package handler

import (
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ContentHandler exposes the content versioning engine to the admin UI.
// All routes registered for it sit behind JWTAuth + RequireAdmin; the actor
// written to the revision log is always the verified user from the token,
// never a default.
type ContentHandler struct {
	contentSvc *service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentSvc *service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

type upsertDraftRequest struct {
	Page    string `json:"page"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Body    string `json:"body" binding:"required"`
}

type publishRequest struct {
	Body  *string `json:"body"`
	Title *string `json:"title"`
}

type rollbackRequest struct {
	Version uint `json:"version" binding:"required"`
}

// UpsertDraft handles PUT /api/v1/admin/content/blocks/:key
func (h *ContentHandler) UpsertDraft(c *gin.Context) {
	key := c.Param("key")

	var req upsertDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	actor := middleware.GetUserID(c)
	version, err := h.contentSvc.UpsertDraft(actor, key, service.UpsertDraftInput{
		Page:    req.Page,
		Section: req.Section,
		Title:   req.Title,
		Body:    req.Body,
	})
	middleware.CountContentMutation("upsert_draft", err)
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}

	common.Success(c, gin.H{"key": key, "version": version})
}

// Publish handles POST /api/v1/admin/content/blocks/:key/publish
func (h *ContentHandler) Publish(c *gin.Context) {
	key := c.Param("key")

	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	actor := middleware.GetUserID(c)
	version, err := h.contentSvc.Publish(actor, key, req.Body, req.Title)
	middleware.CountContentMutation("publish", err)
	if err != nil {
		respondError(c, err, "Failed to publish")
		return
	}

	common.Success(c, gin.H{"key": key, "version": version})
}

// Unpublish handles POST /api/v1/admin/content/blocks/:key/unpublish
func (h *ContentHandler) Unpublish(c *gin.Context) {
	key := c.Param("key")

	actor := middleware.GetUserID(c)
	err := h.contentSvc.Unpublish(actor, key)
	middleware.CountContentMutation("unpublish", err)
	if err != nil {
		respondError(c, err, "Failed to unpublish")
		return
	}

	common.Success(c, gin.H{"key": key})
}

// Rollback handles POST /api/v1/admin/content/blocks/:key/rollback
func (h *ContentHandler) Rollback(c *gin.Context) {
	key := c.Param("key")

	var req rollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	actor := middleware.GetUserID(c)
	version, err := h.contentSvc.Rollback(actor, key, req.Version)
	middleware.CountContentMutation("rollback", err)
	if err != nil {
		respondError(c, err, "Failed to roll back")
		return
	}

	common.Success(c, gin.H{"key": key, "version": version})
}

// GetBlock handles GET /api/v1/admin/content/blocks/:key
func (h *ContentHandler) GetBlock(c *gin.Context) {
	block, err := h.contentSvc.GetBlock(c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to load content block")
		return
	}
	common.Success(c, block)
}

// ListRevisions handles GET /api/v1/admin/content/blocks/:key/revisions
func (h *ContentHandler) ListRevisions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	revisions, err := h.contentSvc.ListRevisions(c.Param("key"), limit)
	if err != nil {
		respondError(c, err, "Failed to load revision history")
		return
	}
	common.Success(c, revisions)
}

// GetRevision handles GET /api/v1/admin/content/blocks/:key/revisions/:version
func (h *ContentHandler) GetRevision(c *gin.Context) {
	version, err := strconv.ParseUint(c.Param("version"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid revision version", err)
		return
	}

	revision, err := h.contentSvc.GetRevision(c.Param("key"), uint(version))
	if err != nil {
		respondError(c, err, "Failed to load revision")
		return
	}
	common.Success(c, revision)
}

// ListPages handles GET /api/v1/admin/content/pages
func (h *ContentHandler) ListPages(c *gin.Context) {
	pages, err := h.contentSvc.ListPages()
	if err != nil {
		respondError(c, err, "Failed to list pages")
		return
	}
	common.Success(c, pages)
}

// ListBlocksByPage handles GET /api/v1/admin/content/pages/:page/blocks
func (h *ContentHandler) ListBlocksByPage(c *gin.Context) {
	blocks, err := h.contentSvc.ListBlocksByPage(c.Param("page"))
	if err != nil {
		respondError(c, err, "Failed to list content blocks")
		return
	}
	common.Success(c, blocks)
}
