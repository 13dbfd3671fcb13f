// File: main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/proyectosweblym/barberbook/config"
	"github.com/proyectosweblym/barberbook/cron"
	"github.com/proyectosweblym/barberbook/database"
	daybookRepo "github.com/proyectosweblym/barberbook/database/repository/daybook"
	localStore "github.com/proyectosweblym/barberbook/database/repository/localstore"
	settingsRepo "github.com/proyectosweblym/barberbook/database/repository/settings"
	"github.com/proyectosweblym/barberbook/handlers"
	"github.com/proyectosweblym/barberbook/middleware"
	"github.com/proyectosweblym/barberbook/routes"
	"github.com/proyectosweblym/barberbook/services/admin"
	"github.com/proyectosweblym/barberbook/services/availability"
	"github.com/proyectosweblym/barberbook/services/blockeddays"
	"github.com/proyectosweblym/barberbook/services/booking"
	"github.com/proyectosweblym/barberbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories. The day book prefers the remote store and falls back to
	// the local blob; without Firestore the service runs local-only.
	localDayBook := daybookRepo.NewRedisRepo(utils.GetCacheClient())
	var dayBook daybookRepo.Repository = localDayBook
	var watcher daybookRepo.Watcher
	remotePing := func(ctx context.Context) error { return errors.New("remote store not connected") }
	if database.RemoteAvailable() {
		remote := daybookRepo.NewFirestoreRepo(database.FirestoreClient)
		dayBook = daybookRepo.NewFailoverRepo(remote, localDayBook)
		watcher = remote
		remotePing = remote.Ping
	}
	blobStore := localStore.NewRedisStore(utils.GetCacheClient())

	// Services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:    dayBook,
		Watcher: watcher,
		Cache:   availability.NewCache(),
	}

	rootCtx, stopSync := context.WithCancel(context.Background())
	defer stopSync()

	availabilityService.ColdLoad(rootCtx)
	availabilityService.StartSync(rootCtx)

	blockedRegistry := blockeddays.NewRegistry(rootCtx, blobStore)
	adminService := admin.NewAdminService(rootCtx, blobStore, availabilityService, blockedRegistry)
	if database.RemoteAvailable() {
		adminService.Mirror = settingsRepo.NewFirestoreMirror(database.FirestoreClient)
	}
	bookingService := booking.NewSessionService(
		availabilityService,
		blockedRegistry,
		adminService,
		utils.GetSessionCacheClient(),
	)

	cron.InitPurgeWorker(availabilityService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		remotePing,
	)

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, blockedRegistry)
	adminHandler := handlers.NewAdminHandler(adminService, availabilityService, blockedRegistry)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OpenSession:    bookingHandler.OpenSession,
		RefreshSession: bookingHandler.RefreshSession,
		ConfirmBooking: bookingHandler.ConfirmBooking,
		CancelSession:  bookingHandler.CancelSession,
		GetServices:    bookingHandler.GetServices,

		GetDayAvailability: availabilityHandler.GetDayAvailability,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	stopSync()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
