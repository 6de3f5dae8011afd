// Package router wires handlers to routes and stacks the guard chain:
// device allow-list, then JWT, then per-resource permissions. Public
// marketing endpoints skip the guards entirely and sit behind the rate
// limiter and response cache instead.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/languagebaba/site-api/internal/auth"
	"github.com/languagebaba/site-api/internal/config"
	"github.com/languagebaba/site-api/internal/handler"
	"github.com/languagebaba/site-api/internal/middleware"
	"github.com/languagebaba/site-api/internal/model"
)

// Routes registered here and exempted from the device guard. Everything
// else under the admin surface requires an allow-listed device.
const (
	loginPath = "/api/auth/login"
	mePath    = "/api/auth/me"
)

// RegisterRoutes registers unauthenticated infrastructure endpoints.
func RegisterRoutes(e *echo.Echo, db *sql.DB) {
	e.GET("/healthz", handler.Health(db))
}

// RegisterPublic registers the marketing endpoints consumed by the
// storefront. No guards apply; when a Redis client is available the
// GET responses are cached and all routes are rate limited.
func RegisterPublic(e *echo.Echo, rdb *redis.Client, blog *handler.BlogHandler, testimonials *handler.TestimonialHandler, analytics *handler.AnalyticsHandler) {
	g := e.Group("/api")
	if rdb != nil {
		g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		g.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}

	g.GET("/blog-posts", blog.PublicList)
	g.GET("/blog-posts/:slug", blog.PublicGet)
	g.GET("/public/testimonials", testimonials.PublicList)
	g.POST("/analytics/track", analytics.TrackVisitor)
	g.POST("/whatsapp/track", analytics.TrackWhatsApp)
	g.POST("/contact", analytics.SubmitContact)
}

// RegisterAuth registers login and the identity check. Both are exempt
// from the device guard so a not-yet-authorized browser can still reach
// the login screen; /me additionally requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// AdminHandlers bundles everything the admin surface needs so the
// registration call stays readable.
type AdminHandlers struct {
	Users        *handler.UserHandler
	Devices      *handler.DeviceHandler
	Content      *handler.ContentHandler
	Benefits     *handler.BenefitHandler
	Testimonials *handler.TestimonialHandler
	FAQs         *handler.FAQHandler
	Pricing      *handler.PricingHandler
	Blog         *handler.BlogHandler
	SEO          *handler.SEOHandler
	Settings     *handler.SettingHandler
	Analytics    *handler.AnalyticsHandler
	Dashboard    *handler.DashboardHandler
	Activity     *handler.ActivityHandler
}

// RegisterAdmin registers the protected surface. Every route passes the
// device guard and JWT auth; individual routes then demand the grant
// matching the resource they touch. Device management additionally
// requires the superuser role.
func RegisterAdmin(e *echo.Echo, jwtSecret string, devices middleware.DeviceStore, rec middleware.ActivityRecorder, perms middleware.PermissionStore, h AdminHandlers) {
	g := e.Group("/api",
		middleware.DeviceGuard(devices, rec, loginPath, mePath),
		middleware.JWTAuth(jwtSecret),
	)

	need := func(resource string, action model.Action) echo.MiddlewareFunc {
		return middleware.RequirePermission(perms, resource, action)
	}

	g.GET("/dashboard/stats", h.Dashboard.Stats)
	g.GET("/activity-logs", h.Activity.List, need(model.ResourceUsers, model.ActionRead))

	// User management.
	g.GET("/admin/users", h.Users.List, need(model.ResourceUsers, model.ActionRead))
	g.POST("/admin/users", h.Users.Create, need(model.ResourceUsers, model.ActionCreate))
	g.GET("/admin/users/:id", h.Users.Get, need(model.ResourceUsers, model.ActionRead))
	g.PUT("/admin/users/:id", h.Users.Update, need(model.ResourceUsers, model.ActionWrite))
	g.DELETE("/admin/users/:id", h.Users.Delete, need(model.ResourceUsers, model.ActionDelete))
	g.PATCH("/admin/users/:id/toggle", h.Users.Toggle, need(model.ResourceUsers, model.ActionWrite))
	g.GET("/admin/users/:id/permissions", h.Users.GetPermissions, need(model.ResourceUsers, model.ActionRead))
	g.PUT("/admin/users/:id/permissions", h.Users.PutPermissions, need(model.ResourceUsers, model.ActionWrite))

	// Device allow-list. Superuser only, on top of the users grant.
	superuser := middleware.RequireMinRole(auth.RoleSuperuser)
	g.GET("/admin/devices", h.Devices.List, need(model.ResourceUsers, model.ActionRead), superuser)
	g.POST("/admin/devices", h.Devices.Authorize, need(model.ResourceUsers, model.ActionCreate), superuser)
	g.DELETE("/admin/devices/:id", h.Devices.Revoke, need(model.ResourceUsers, model.ActionDelete), superuser)

	// Website content.
	g.GET("/content", h.Content.List, need(model.ResourceContent, model.ActionRead))
	g.PUT("/content/:type/:key", h.Content.Upsert, need(model.ResourceContent, model.ActionWrite))

	g.GET("/benefits", h.Benefits.List, need(model.ResourceContent, model.ActionRead))
	g.POST("/benefits", h.Benefits.Create, need(model.ResourceContent, model.ActionCreate))
	g.PUT("/benefits/:id", h.Benefits.Update, need(model.ResourceContent, model.ActionWrite))
	g.DELETE("/benefits/:id", h.Benefits.Delete, need(model.ResourceContent, model.ActionDelete))

	g.GET("/testimonials", h.Testimonials.List, need(model.ResourceContent, model.ActionRead))
	g.GET("/testimonials/:id", h.Testimonials.Get, need(model.ResourceContent, model.ActionRead))
	g.POST("/testimonials", h.Testimonials.Create, need(model.ResourceContent, model.ActionCreate))
	g.PUT("/testimonials/:id", h.Testimonials.Update, need(model.ResourceContent, model.ActionWrite))
	g.DELETE("/testimonials/:id", h.Testimonials.Delete, need(model.ResourceContent, model.ActionDelete))

	g.GET("/faqs", h.FAQs.List, need(model.ResourceContent, model.ActionRead))
	g.POST("/faqs", h.FAQs.Create, need(model.ResourceContent, model.ActionCreate))
	g.PUT("/faqs/:id", h.FAQs.Update, need(model.ResourceContent, model.ActionWrite))
	g.DELETE("/faqs/:id", h.FAQs.Delete, need(model.ResourceContent, model.ActionDelete))

	g.GET("/pricing-plans", h.Pricing.List, need(model.ResourcePricing, model.ActionRead))
	g.POST("/pricing-plans", h.Pricing.Create, need(model.ResourcePricing, model.ActionCreate))
	g.PUT("/pricing-plans/:id", h.Pricing.Update, need(model.ResourcePricing, model.ActionWrite))
	g.DELETE("/pricing-plans/:id", h.Pricing.Delete, need(model.ResourcePricing, model.ActionDelete))

	// Blog administration. The public read side lives in RegisterPublic.
	g.GET("/admin/blog-posts", h.Blog.AdminList, need(model.ResourceBlog, model.ActionRead))
	g.POST("/blog-posts", h.Blog.Create, need(model.ResourceBlog, model.ActionCreate))
	g.PUT("/blog-posts/:id", h.Blog.Update, need(model.ResourceBlog, model.ActionWrite))
	g.DELETE("/blog-posts/:id", h.Blog.Delete, need(model.ResourceBlog, model.ActionDelete))

	g.GET("/seo/:pageType", h.SEO.Get, need(model.ResourceSEO, model.ActionRead))
	g.PUT("/seo/:pageType", h.SEO.Put, need(model.ResourceSEO, model.ActionWrite))

	g.GET("/settings", h.Settings.List, need(model.ResourceSettings, model.ActionRead))
	g.PUT("/settings/:key", h.Settings.Put, need(model.ResourceSettings, model.ActionWrite))

	g.GET("/analytics", h.Analytics.Summary, need(model.ResourceSettings, model.ActionRead))
	g.GET("/contact-submissions", h.Analytics.ListContacts, need(model.ResourceSettings, model.ActionRead))
}
