// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"offerdesk_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router context.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine. The offer and negotiation pages are
	// served from the root path, matching the original form URLs.
	Engine *gin.Engine
	// SubmitRateLimiter is the stricter rate limiter for endpoints that
	// trigger outbound PDF and mail calls.
	SubmitRateLimiter *httpkit.SubmitRateLimiter
}
