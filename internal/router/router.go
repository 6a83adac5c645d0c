package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/inkwell/inkwell-blog/internal/config"
	"github.com/inkwell/inkwell-blog/internal/handler"
	"github.com/inkwell/inkwell-blog/internal/middleware"
)

// Register wires every route onto the Echo instance.  Blog reads are public
// (a blog response never exposes author data beyond username and id); every
// mutation and every profile operation sits behind the session gate.  The
// credential endpoints additionally run through the rate limiter, and the
// public listing/search GETs through the response cache.  rdb may be nil, in
// which case both Redis middlewares are pass-throughs.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, b *handler.BlogHandler, p *handler.ProfileHandler) {

	e.GET("/healthz", handler.Health)

	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	gate := middleware.SessionGate(cfg.JWTSecret)

	// Credential endpoints: public, rate limited.
	e.POST("/signup", a.Signup, limit)
	e.POST("/login", a.Login, limit)

	// Public blog reads.  The two GET listings are cacheable.
	e.GET("/blog/getAllBlogs", b.GetAll, cache)
	e.GET("/blog/getBlogByParam", b.GetByParam, cache)
	e.POST("/blog/getBlogById", b.GetByID)
	e.POST("/blog/fetchBlogByCategory", b.FetchByCategory)

	// Blog mutations: session required, ownership enforced in the repository.
	blog := e.Group("/blog", gate)
	blog.POST("/new", b.Create)
	blog.PUT("/updateBlogById", b.Update)
	blog.DELETE("/delete/:id", b.Delete)

	// Profile operations: the fetch exposes the email, so it is gated too.
	e.POST("/profile", p.Fetch, gate)
	e.PUT("/update-profile", p.Update, gate)
	e.PUT("/change-password", p.ChangePassword, gate)
}
