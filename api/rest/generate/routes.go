package generate

import "github.com/gin-gonic/gin"

// registers site generation routes behind the supplied rate limiter
func RegisterRoutes(rg *gin.RouterGroup, rateLimiter gin.HandlerFunc) {
	rg.POST("/generate", rateLimiter, Handler())
}
