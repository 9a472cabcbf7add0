package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eventhub/internal/container"
	"eventhub/internal/handlers"
	"eventhub/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(appContainer *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appContainer.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(appContainer.Logger))
	r.Use(middleware.ErrorHandler(appContainer.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventhub-api",
			})
		})

		eventRoutes := v1.Group("/events")
		{
			eventRoutes.POST("/", handlers.CreateEvent(appContainer.EventService))
			eventRoutes.GET("/:slug", handlers.GetEventBySlug(appContainer.EventService))
			eventRoutes.GET("/:slug/similar", handlers.GetSimilarEvents(appContainer.EventService))
			eventRoutes.PATCH("/:slug", handlers.UpdateEvent(appContainer.EventService))
		}

		v1.POST("/bookings", handlers.CreateBooking(
			appContainer.BookingService,
			appContainer.Analytics,
			appContainer.Logger,
		))
	}

	return r
}
