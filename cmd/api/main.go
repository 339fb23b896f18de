package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halaleats/backend/internal/adapters/database"
	"github.com/halaleats/backend/internal/api/handlers"
	"github.com/halaleats/backend/internal/api/routes"
	"github.com/halaleats/backend/internal/domain/providers"
	"github.com/halaleats/backend/internal/infrastructure/clients/firebase"
	"github.com/halaleats/backend/internal/infrastructure/clients/postgres"
	"github.com/halaleats/backend/internal/infrastructure/observability"
	"github.com/halaleats/backend/pkg/config"
)

// insecureVerifier accepts any bearer token and echoes it back as the
// subject. Local development only.
type insecureVerifier struct{}

func (insecureVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize the token verifier
	var verifier providers.TokenVerifier
	if cfg.Firebase.SkipTokenVerification {
		logger.Warn().Msg("FIREBASE_SKIP_TOKEN_VERIFICATION is set - tokens are NOT verified")
		verifier = insecureVerifier{}
	} else {
		fbClient, err := firebase.NewClient(ctx, &cfg.Firebase)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize Firebase client")
		}
		verifier = fbClient
		logger.Info().Str("project", cfg.Firebase.ProjectID).Msg("Firebase client initialized")
	}

	// Initialize adapters
	restaurantAdapter := database.NewRestaurantAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	friendAdapter := database.NewFriendAdapter(pgClient)
	activityAdapter := database.NewActivityAdapter(pgClient)

	// Initialize handlers
	restaurantHandler := handlers.NewRestaurantHandler(restaurantAdapter)
	userHandler := handlers.NewUserHandler(userAdapter)
	reviewHandler := handlers.NewReviewHandler(reviewAdapter)
	friendHandler := handlers.NewFriendHandler(friendAdapter)
	activityHandler := handlers.NewActivityHandler(activityAdapter)

	router := routes.NewRouter(
		restaurantHandler,
		userHandler,
		reviewHandler,
		friendHandler,
		activityHandler,
		verifier,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := cfg.Server.ServerAddr()
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
