package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Articles      *ArticleHandler
	Editions      *EditionHandler
	Blogs         *BlogHandler
	Subscriptions *SubscriptionHandler
	Exports       *ExportHandler
	Feed          *FeedHandler
	Health        *HealthHandler
}

var (
	staffRoles  = []domain.Role{domain.RoleEditor, domain.RolePublisher, domain.RoleAdmin, domain.RoleSuperAdmin}
	authorRoles = []domain.Role{domain.RoleEditor, domain.RoleSuperAdmin}
	reviewRoles = []domain.Role{domain.RolePublisher, domain.RoleSuperAdmin}
	adminRoles  = []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}
)

// RegisterRoutes mounts the ops endpoints, the public feed and the /api/v1 API.
func RegisterRoutes(router *gin.Engine, h Handlers, verifier *middleware.TokenVerifier) {
	// Health and metrics endpoints
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/feed.xml", h.Feed.Feed)

	authenticated := middleware.Authenticate(verifier)
	staff := middleware.RequireRoles(staffRoles...)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/articles", h.Articles.ListPublished)
		v1.GET("/articles/:slug", h.Articles.GetPublished)
		v1.POST("/articles", authenticated, middleware.RequireRoles(authorRoles...), h.Articles.Create)

		blogs := v1.Group("/blogs")
		{
			optional := middleware.OptionalAuthenticate(verifier)
			blogs.GET("", optional, h.Blogs.List)
			blogs.GET("/:slug", optional, h.Blogs.Get)

			manage := blogs.Group("", authenticated, middleware.RequireRoles(authorRoles...))
			manage.POST("", h.Blogs.Create)
			manage.PUT("/:slug", h.Blogs.Update)
			manage.DELETE("/:slug", h.Blogs.Delete)
		}

		editorial := v1.Group("/editorial", authenticated, staff)
		{
			editorial.GET("/articles", h.Articles.ListEditorial)
			editorial.GET("/articles/:id", h.Articles.GetEditorial)
			editorial.PUT("/articles/:id", middleware.RequireRoles(authorRoles...), h.Articles.Update)
			editorial.PATCH("/articles/:id/status", h.Articles.UpdateStatus)
			editorial.PATCH("/articles/:id/archive", h.Articles.Archive)
			editorial.PATCH("/articles/:id/unarchive", h.Articles.Unarchive)
			editorial.DELETE("/articles/:id", middleware.RequireRoles(authorRoles...), h.Articles.Delete)
			editorial.GET("/articles/:id/reviews", h.Articles.Reviews)

			editorial.POST("/editions", h.Editions.Create)
			editorial.GET("/editions", h.Editions.List)
			editorial.GET("/editions/:id", h.Editions.Get)
		}

		publisher := v1.Group("/publisher", authenticated, middleware.RequireRoles(reviewRoles...))
		{
			publisher.GET("/articles", h.Articles.ReviewQueue)
			publisher.POST("/articles/:id/review", h.Articles.Review)
		}

		admin := v1.Group("/admin", authenticated, middleware.RequireRoles(adminRoles...))
		{
			admin.PATCH("/editions/:id/publish", h.Editions.Publish)
			admin.PATCH("/editions/:id/unpublish", h.Editions.Unpublish)
			admin.GET("/exports/articles", h.Exports.StreamArticles)
		}

		payments := v1.Group("/payments", authenticated)
		{
			payments.GET("/plans", h.Subscriptions.Plans)
			payments.POST("/create-subscription", h.Subscriptions.CreateSubscription)
			payments.GET("/verify-payment", h.Subscriptions.VerifyPayment)
		}

		v1.GET("/user/subscription", authenticated, h.Subscriptions.Current)
		v1.GET("/auth/session", authenticated, Session)
	}
}
