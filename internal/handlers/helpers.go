package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrielcaixeta01/barber-agenda/internal/middleware"
)

// Cache key prefixes for the public views; mutations invalidate by
// prefix.
const (
	cacheKeyBarbers      = "public:barbers"
	cacheKeyServices     = "public:services"
	cachePrefixAvailable = "availability:"
)

func adminIDFrom(c *gin.Context) *string {
	v, ok := c.Get(middleware.ContextAdminID)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
