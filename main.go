package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairway/config"
	"fairway/database"
	courseRepo "fairway/database/repository/course"
	"fairway/handlers"
	"fairway/middleware"
	"fairway/routes"
	"fairway/services/booking"
	"fairway/services/geocode"
	"fairway/services/search"
	"fairway/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// The geocode cache is in-process unless redis is configured.
	var cache geocode.Cache = geocode.NewMemoryCache()
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
		cache = geocode.NewRedisCache(utils.GetCacheClient(), 0)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := courseRepo.NewMongoCourseRepo()

	// services.
	geocoder := geocode.NewNominatimGeocoder(
		config.AppConfig.GeocoderURL,
		config.AppConfig.GeocoderUserAgent,
	)
	searchService := &search.DefaultSearchService{
		Repo:      repo,
		Locations: search.NewLocationResolver(geocoder, cache),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      repo,
		PortalURL: config.AppConfig.BookingPortalURL,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Search:  handlers.NewSearchHandler(searchService),
		Course:  handlers.NewCourseHandler(searchService),
		Booking: handlers.NewBookingHandler(bookingService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.CacheClient, database.MongoClient)

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
