package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moveflow/config"
	"moveflow/cron"
	"moveflow/database"
	leadsRepoPkg "moveflow/database/repository/leads"
	"moveflow/handlers"
	"moveflow/httpServices/bookingcore"
	"moveflow/middleware"
	"moveflow/routes"
	"moveflow/services/booking"
	"moveflow/services/funnel"
	"moveflow/services/pricing"
	"moveflow/services/scheduling"
	"moveflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetFunnelCacheClient(),
		utils.GetRatesCacheClient(),
	}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	leadsRepo := leadsRepoPkg.NewMongoLeadRepo()

	// upstream client.
	coreClient := bookingcore.NewClient()

	// services.
	sessionStore := &funnel.RedisStore{
		Client: utils.GetFunnelCacheClient(),
		TTL:    time.Duration(config.AppConfig.FunnelSessionTTLMinutes) * time.Minute,
	}
	funnelController := &funnel.Controller{
		Store:  sessionStore,
		Logger: logger,
	}

	rateFetcher := &pricing.Fetcher{
		Source: coreClient,
		Cache:  utils.GetRatesCacheClient(),
		TTL:    time.Duration(config.AppConfig.RatesCacheTTLMinutes) * time.Minute,
	}

	slotValidator := &scheduling.Validator{
		API:      coreClient,
		Timezone: config.AppConfig.BusinessTimezone,
		Logger:   logger,
	}

	followupEnqueuer := cron.NewEnqueuer()

	orchestrator := &booking.DefaultOrchestrator{
		Funnel:    funnelController,
		Rates:     rateFetcher,
		Validator: slotValidator,
		API:       coreClient,
		Checkout:  &booking.StripeCheckoutProvider{ReturnURL: config.AppConfig.CheckoutReturnTo},
		Leads:     leadsRepo,
		Followup:  followupEnqueuer,
		Logger:    logger,
	}

	// handlers.
	funnelHandler := &handlers.FunnelHandler{Controller: funnelController, Validator: slotValidator}
	pricingHandler := &handlers.PricingHandler{Controller: funnelController, Rates: rateFetcher}
	bookingHandler := &handlers.BookingHandler{Orchestrator: orchestrator, API: coreClient}
	catalogHandler := &handlers.CatalogHandler{Catalog: coreClient}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		LeadsRepo: leadsRepo,

		StartSessionHandler: funnelHandler.StartSessionHandler,
		GetSessionHandler:   funnelHandler.GetSessionHandler,
		UpdateFieldHandler:  funnelHandler.UpdateFieldHandler,
		NextStepHandler:     funnelHandler.NextStepHandler,
		PrevStepHandler:     funnelHandler.PrevStepHandler,
		GotoStepHandler:     funnelHandler.GotoStepHandler,
		ValidateStepHandler: funnelHandler.ValidateStepHandler,
		CheckSlotHandler:    funnelHandler.CheckSlotHandler,
		EndSessionHandler:   funnelHandler.EndSessionHandler,

		QuoteHandler:       pricingHandler.QuoteHandler,
		MoverCountsHandler: pricingHandler.MoverCountsHandler,

		SubmitHandler:       bookingHandler.SubmitHandler,
		GetBookingHandler:   bookingHandler.GetBookingHandler,
		AlternativesHandler: bookingHandler.AlternativesHandler,

		ListServicesHandler: catalogHandler.ListServicesHandler,

		AutocompleteAddressHandler: handlers.AutocompleteAddress,
		CompanyReviewsHandler:      handlers.CompanyReviews,
		MoveDayWeatherHandler:      handlers.MoveDayWeather,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the follow-up worker.
	cron.InitFollowupWorker(coreClient, leadsRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
