package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridebook/internal/handler"
	"ridebook/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	DriverHandler *handler.DriverHandler
	RideHandler   *handler.RideHandler
	FareHandler   *handler.FareHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/state", deps.AuthHandler.State)
		}

		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
			users.GET("/me", deps.UserHandler.Me)
			users.PATCH("/me/profile", deps.UserHandler.UpdateProfile)
			users.POST("/me/wallet", deps.UserHandler.UpdateWallet)
			users.GET("/:id", deps.UserHandler.GetByID)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.GET("/me", deps.DriverHandler.Me)
			drivers.PATCH("/me/profile", deps.DriverHandler.UpdateProfile)
			drivers.POST("/me/status", deps.DriverHandler.UpdateStatus)
			drivers.POST("/me/location", deps.DriverHandler.UpdateLocation)
			drivers.POST("/me/earnings", deps.DriverHandler.RecordEarnings)
			drivers.POST("/me/rating", deps.DriverHandler.UpdateRating)
			drivers.GET("/:id", deps.DriverHandler.GetByID)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.Request)
			rides.GET("", deps.RideHandler.GetAll)
			rides.GET("/available", deps.RideHandler.Available)
			rides.GET("/active", deps.RideHandler.Active)
			rides.GET("/user/:id", deps.RideHandler.UserHistory)
			rides.GET("/driver/:id", deps.RideHandler.DriverHistory)
			rides.GET("/:id", deps.RideHandler.GetByID)
			rides.POST("/:id/accept", deps.RideHandler.Accept)
			rides.POST("/:id/start", deps.RideHandler.Start)
			rides.POST("/:id/complete", deps.RideHandler.Complete)
			rides.POST("/:id/pay", deps.RideHandler.Pay)
			rides.POST("/:id/cancel", deps.RideHandler.Cancel)
			rides.POST("/:id/rate", deps.RideHandler.Rate)
			rides.POST("/:id/location", deps.RideHandler.UpdateLocation)
		}

		// Fare routes.
		fares := v1.Group("/fares")
		{
			fares.POST("/quote", deps.FareHandler.Quote)
		}
	}

	return router
}
