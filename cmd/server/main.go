package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridebook/internal/app"
	"ridebook/internal/config"
	"ridebook/internal/handler"
	"ridebook/internal/pricing"
	"ridebook/internal/seed"
	"ridebook/internal/storage"
	"ridebook/internal/store"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Select the snapshot gateway backend.
	var gw storage.Gateway
	var redisClient *redis.Client
	switch cfg.Persistence.Backend {
	case "redis":
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
		gw = storage.NewRedisGateway(redisClient)

	case "postgres":
		db, dbErr := app.NewDatabase(ctx, cfg.Database, nrApp)
		if dbErr != nil {
			log.Fatalf("failed to connect to database: %v", dbErr)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")

		pg := storage.NewPostgresGateway(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to ensure snapshot schema: %v", err)
		}
		gw = pg

	case "memory":
		gw = storage.NewMemoryGateway()
		log.Println("Using in-memory persistence, state will not survive restarts")

	default:
		log.Fatalf("unknown persistence backend: %s", cfg.Persistence.Backend)
	}

	// The idempotency middleware piggybacks on the same Redis instance; with
	// another backend it is simply disabled.
	server := wireServer(ctx, gw, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(ctx context.Context, gw storage.Gateway, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize stores, falling back to seed data on first run.
	accounts := store.NewAccountStore(ctx, gw, seed.Users())
	fleet := store.NewFleetStore(ctx, gw, seed.Drivers())
	rides := store.NewRideStore(ctx, gw, seed.Rides())

	// Active-ride pointers are derived, not persisted. Rebuild them for
	// whichever identities survived the restart.
	userID, driverID := 0, 0
	if u := accounts.Current(); u != nil {
		userID = u.ID
	}
	if d := fleet.Current(); d != nil {
		driverID = d.ID
	}
	rides.RecomputeActivePointers(userID, driverID)

	session := store.NewSession(accounts, fleet, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.LoginDelay)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(session)
	userHandler := handler.NewUserHandler(accounts)
	driverHandler := handler.NewDriverHandler(fleet)
	rideHandler := handler.NewRideHandler(rides)
	fareHandler := handler.NewFareHandler(pricing.DefaultConfig())

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:   authHandler,
		UserHandler:   userHandler,
		DriverHandler: driverHandler,
		RideHandler:   rideHandler,
		FareHandler:   fareHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
