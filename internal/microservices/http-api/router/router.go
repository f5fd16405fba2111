// Package router assembles the gin engine of the API server.
package router

import (
	"log/slog"

	"fightcard/internal/metrics"
	"fightcard/internal/microservices/http-api/handler"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Fight   *handler.FightHandler
	Event   *handler.EventHandler
	Rating  *handler.RatingHandler
	Comment *handler.CommentHandler
	Health  *handler.HealthHandler
}

// Options carries the cross-cutting collaborators. Metrics may be nil.
type Options struct {
	Sessions          service.SessionService
	WriteLimiter      *rate.Limiter
	CredentialLimiter *rate.Limiter // register and login
	Metrics           *metrics.Metrics
	Logger            *slog.Logger
	CORSOrigins       []string
}

// New configures the middleware stack and all API routes.
//
// Every /api request resolves its viewer; mutations additionally require one
// and share the write rate limit. Register and login have their own limit.
func New(h *Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// Middleware stack (order matters)
	r.Use(gin.Recovery())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.NewCORS(opts.CORSOrigins))

	if opts.Metrics != nil {
		r.GET("/metrics", opts.Metrics.Handler())
	}

	api := r.Group("/api")

	// Health check, no session lookup
	api.GET("/health", h.Health.Health)

	public := api.Group("", middleware.Session(opts.Sessions))

	gatedChain := []gin.HandlerFunc{middleware.RequireViewer()}
	if opts.WriteLimiter != nil {
		gatedChain = append(gatedChain, middleware.RateLimit(opts.WriteLimiter))
	}
	gated := public.Group("", gatedChain...)

	if opts.CredentialLimiter != nil {
		h.Auth.LimitCredentials(opts.CredentialLimiter)
	}
	h.Auth.RegisterRoutes(public, gated)
	h.Fight.RegisterRoutes(public, gated)
	h.Event.RegisterRoutes(public, gated)
	h.Rating.RegisterRoutes(public, gated)
	h.Comment.RegisterRoutes(public, gated)

	return r
}
