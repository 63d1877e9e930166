package handler

import (
	"strconv"
	"time"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// EventHandler handles admin event endpoints
type EventHandler struct {
	eventSvc *service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventSvc *service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type eventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      *time.Time `json:"ends_at"`
}

// ListEvents handles GET /api/v1/admin/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, meta, err := h.eventSvc.ListAll(page, limit)
	if err != nil {
		respondError(c, err, "Failed to load events")
		return
	}
	common.SuccessWithMeta(c, events, meta)
}

// CreateEvent handles POST /api/v1/admin/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := h.eventSvc.Create(middleware.GetUserID(c), event); err != nil {
		respondError(c, err, "Failed to create event")
		return
	}
	common.Created(c, event)
}

// UpdateEvent handles PUT /api/v1/admin/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid event ID", err)
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	event, err := h.eventSvc.Update(id, &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}
	common.Success(c, event)
}

// DeleteEvent handles DELETE /api/v1/admin/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid event ID", err)
		return
	}

	if err := h.eventSvc.Delete(id); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}
	common.Success(c, gin.H{"deleted": id})
}
