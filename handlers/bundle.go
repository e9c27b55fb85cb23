package handlers

import (
	leadsRepoPkg "moveflow/database/repository/leads"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	LeadsRepo leadsRepoPkg.Repository

	// Funnel endpoints
	StartSessionHandler gin.HandlerFunc
	GetSessionHandler   gin.HandlerFunc
	UpdateFieldHandler  gin.HandlerFunc
	NextStepHandler     gin.HandlerFunc
	PrevStepHandler     gin.HandlerFunc
	GotoStepHandler     gin.HandlerFunc
	ValidateStepHandler gin.HandlerFunc
	CheckSlotHandler    gin.HandlerFunc
	EndSessionHandler   gin.HandlerFunc

	// Pricing endpoints
	QuoteHandler       gin.HandlerFunc
	MoverCountsHandler gin.HandlerFunc

	// Booking endpoints
	SubmitHandler       gin.HandlerFunc
	GetBookingHandler   gin.HandlerFunc
	AlternativesHandler gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc

	// Lookup endpoints
	AutocompleteAddressHandler gin.HandlerFunc
	CompanyReviewsHandler      gin.HandlerFunc
	MoveDayWeatherHandler      gin.HandlerFunc
}
