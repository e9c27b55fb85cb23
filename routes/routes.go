package routes

import (
	"net/http"
	"time"

	"moveflow/handlers"
	"moveflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFunnelRoutes registers the booking wizard endpoints.
func RegisterFunnelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/funnel")
	{
		api.POST("/session", hb.StartSessionHandler)
		api.GET("/session/:sessionID", hb.GetSessionHandler)
		api.PATCH("/session/:sessionID/field", hb.UpdateFieldHandler)
		api.POST("/session/:sessionID/next", hb.NextStepHandler)
		api.POST("/session/:sessionID/prev", hb.PrevStepHandler)
		api.POST("/session/:sessionID/goto", hb.GotoStepHandler)
		api.POST("/session/:sessionID/validate", hb.ValidateStepHandler)
		api.POST("/session/:sessionID/slot-check", hb.CheckSlotHandler)
		api.DELETE("/session/:sessionID", hb.EndSessionHandler)
	}
}

// RegisterPricingRoutes registers quote endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.GET("/quote/:sessionID", hb.QuoteHandler)
		api.GET("/mover-counts", hb.MoverCountsHandler)
	}
}

// RegisterBookingRoutes registers submission and booking lookups.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/submit/:sessionID", hb.SubmitHandler)
		api.GET("/id/:bookingID", hb.GetBookingHandler)
		api.GET("/alternatives", hb.AlternativesHandler)
	}
}

// RegisterCatalogRoutes registers the service catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
	}
}

// RegisterLookupRoutes registers third-party lookup proxies.
func RegisterLookupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lookup")
	{
		api.GET("/address", hb.AutocompleteAddressHandler)
		api.GET("/reviews", hb.CompanyReviewsHandler)
		api.GET("/weather", hb.MoveDayWeatherHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm MoveFlow",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterFunnelRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterLookupRoutes(r, hb)
}
