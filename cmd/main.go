package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-usecase-explorer/docs"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/config"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/handlers"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/jwt"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/middlewares"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/migrations"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/repositories"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-usecase-explorer API
// @version 1.0.0
// @description Catalog of AI use cases with evaluations, favorites and an admin ranking
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka writer, gRPC health server and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka activity writer, optional
	var activityWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.Kafka.BatchTimeout(),
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		activityWriter = writer
		logger.Log.Infow("activity publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Info("activity publishing disabled: no Kafka brokers configured")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, db, rdb, activityWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var grpcSrv *grpc.Server
	var healthSrv *health.Server
	if cfg.GRPC.HealthPort != "" {
		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.App.Host, cfg.GRPC.HealthPort))
		if err != nil {
			return fmt.Errorf("failed to listen for gRPC health: %w", err)
		}
		grpcSrv, healthSrv = newHealthServer()
		go func() {
			logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		return serveErr
	}

	if grpcSrv != nil {
		healthSrv.Shutdown()
		grpcSrv.GracefulStop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newHealthServer returns a gRPC server exposing grpc.health.v1 reporting SERVING.
func newHealthServer() (*grpc.Server, *health.Server) {
	s := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthSrv)
	return s, healthSrv
}

// newRouter wires repositories, services and handlers into the HTTP router.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, activityWriter services.KafkaWriter) http.Handler {
	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration()),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	useCaseReadRepo := repositories.NewUseCaseReadRepository(db, txGetter)
	useCaseWriteRepo := repositories.NewUseCaseWriteRepository(db)
	evaluationReadRepo := repositories.NewEvaluationReadRepository(db, txGetter)
	evaluationWriteRepo := repositories.NewEvaluationWriteRepository(db, txGetter)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db, txGetter)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, txGetter)
	denylistRepo := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	activity := services.NewActivityPublisher(activityWriter, services.WithAfterCommit(middlewares.AfterCommit))
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, denylistRepo, cfg.App.AdminEmails)
	useCaseService := services.NewUseCaseService(useCaseReadRepo, useCaseWriteRepo, evaluationReadRepo, favoriteReadRepo)
	evaluationService := services.NewEvaluationService(evaluationReadRepo, evaluationWriteRepo, activity)
	favoriteService := services.NewFavoriteService(userReadRepo, favoriteReadRepo, favoriteWriteRepo, activity)

	identify := middlewares.IdentifyMiddleware(tokens, denylistRepo)
	tx := middlewares.TxMiddleware(db)
	snapshot := middlewares.SnapshotMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/usecases/stats", handlers.NewUseCaseStatsHandler(useCaseService))

		// Routes resolving an optional caller
		r.Group(func(r chi.Router) {
			r.Use(identify)

			r.With(snapshot).Get("/usecases", handlers.NewListUseCasesHandler(useCaseService))
			r.With(snapshot).Get("/usecases/top", handlers.NewTopUseCasesHandler(useCaseService))
			r.With(snapshot).Get("/usecases/{id}", handlers.NewGetUseCaseHandler(useCaseService))
			r.Post("/usecases", handlers.NewCreateUseCaseHandler(useCaseService))
			r.Patch("/usecases/{id}", handlers.NewUpdateUseCaseHandler(useCaseService))

			// Routes requiring a caller
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireAuthMiddleware)

				r.Post("/logout", handlers.NewLogoutHandler(authService))
				r.Put("/usecases/{id}/evaluation", handlers.NewSubmitEvaluationHandler(evaluationService))
				r.Get("/me/evaluations", handlers.NewMyEvaluationsHandler(evaluationService))
				r.With(tx).Post("/usecases/{id}/favorite", handlers.NewToggleFavoriteHandler(favoriteService))
				r.With(tx).Delete("/evaluations/{id}", handlers.NewDeleteEvaluationHandler(evaluationService))
			})
		})
	})

	return r
}
