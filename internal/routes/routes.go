package routes

import (
	"github.com/clubhub/clubhub-backend/internal/handler"
	"github.com/clubhub/clubhub-backend/internal/middleware"
	"github.com/clubhub/clubhub-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth    *handler.AuthHandler
	Public  *handler.PublicHandler
	Content *handler.ContentHandler
	Faq     *handler.FaqHandler
	Event   *handler.EventHandler
	Join    *handler.JoinRequestHandler
}

// Setup configures all API routes.
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.RefreshToken)
	authGroup.GET("/me", auth, h.Auth.GetMe)

	// Public site
	api.GET("/pages/:page/blocks", h.Public.GetPageBlocks)
	api.GET("/faqs", h.Public.ListFaqs)
	api.GET("/events", h.Public.ListUpcomingEvents)
	api.POST("/join-requests", h.Public.SubmitJoinRequest)

	// Admin — every mutating content operation sits behind the admin gate
	admin := api.Group("/admin")
	admin.Use(auth, middleware.RequireAdmin())

	content := admin.Group("/content")
	content.GET("/pages", h.Content.ListPages)
	content.GET("/pages/:page/blocks", h.Content.ListBlocksByPage)
	content.GET("/blocks/:key", h.Content.GetBlock)
	content.GET("/blocks/:key/revisions", h.Content.ListRevisions)
	content.GET("/blocks/:key/revisions/:version", h.Content.GetRevision)
	content.PUT("/blocks/:key", h.Content.UpsertDraft)
	content.POST("/blocks/:key/publish", h.Content.Publish)
	content.POST("/blocks/:key/unpublish", h.Content.Unpublish)
	content.POST("/blocks/:key/rollback", h.Content.Rollback)

	faqs := admin.Group("/faqs")
	faqs.GET("", h.Faq.ListFaqs)
	faqs.POST("", h.Faq.CreateFaq)
	faqs.PUT("/:id", h.Faq.UpdateFaq)
	faqs.DELETE("/:id", h.Faq.DeleteFaq)

	events := admin.Group("/events")
	events.GET("", h.Event.ListEvents)
	events.POST("", h.Event.CreateEvent)
	events.PUT("/:id", h.Event.UpdateEvent)
	events.DELETE("/:id", h.Event.DeleteEvent)

	joins := admin.Group("/join-requests")
	joins.GET("", h.Join.ListJoinRequests)
	joins.POST("/:id/review", h.Join.ReviewJoinRequest)
}
