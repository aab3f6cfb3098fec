package main

import (
	"codeberg.org/flamesblue/server/api/rest/diagnostics"
	"codeberg.org/flamesblue/server/api/rest/functions"
	"codeberg.org/flamesblue/server/api/rest/generate"
	"codeberg.org/flamesblue/server/api/rest/health"
	"codeberg.org/flamesblue/server/internal/logger"
	"codeberg.org/flamesblue/server/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client budget for the generation endpoint
const generateRate = "120-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(metrics.Middleware())

	router.GET("/", health.RootHandler)
	router.GET("/test", diagnostics.Handler(server.collectionLister()))
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	{
		api.GET("/hello", health.HelloHandler)
		functions.RegisterRoutes(api)
		generate.RegisterRoutes(api, generateRateLimiter())
	}
}

// permissive CORS: every origin is allowed (echoed back, since credentials
// are on), any method, any header
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	})
}

// in-memory rate limit for the generation endpoint
func generateRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(generateRate)
	if err != nil {
		logger.Fatal("invalid rate limit format", "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
