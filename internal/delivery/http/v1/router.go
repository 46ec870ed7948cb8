package v1

import (
	"net/http"
	"time"

	"go-vedascholars-backend/config"
	"go-vedascholars-backend/internal/delivery/http/middleware"
	"go-vedascholars-backend/internal/delivery/http/response"
	"go-vedascholars-backend/internal/domain"
	"go-vedascholars-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InquiryUC domain.InquiryUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Coarse per-IP limit over the whole surface; the contact form gets a
	// stricter limit below.
	globalRL := middleware.DefaultRateLimitConfig()
	globalRL.Limit = deps.Config.RateLimitGlobalThreshold
	globalRL.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(globalRL))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		rateLimitStore := "redis"
		if redis.HealthCheck(c.Request.Context()) != nil {
			rateLimitStore = "in-memory"
		}
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"rate_limit_store": rateLimitStore,
		})
	})

	// Public routes
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitContactLimit,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:contact:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}))
	NewInquiryHandler(public, deps.InquiryUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
